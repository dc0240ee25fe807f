// hlrange resolves line highlighting directives
// inside the code blocks of Markdown documents.
//
// Directives are comments like "// highlight-next-line"
// placed on their own line inside a code block.
// hlrange removes them from the code
// and marks the lines they refer to as highlighted.
//
// Run hlrange -help for usage.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"go.abhg.dev/hlrange/internal/errdefer"
	"go.abhg.dev/hlrange/internal/fence"
	"go.abhg.dev/hlrange/internal/highlight"
	"go.abhg.dev/hlrange/internal/linerange"
)

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, errHelp) {
			return 0
		}
		// No need to print anything.
		// cliParser prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("hlrange: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("-debug: %w", err))
	}
	defer errdefer.Call(&err, closeDebug)
	debugLog := log.New(debugw, "", 0)

	registry := linerange.DefaultRegistry()
	for _, ld := range opts.Dialects {
		debugLog.Printf("Using %v comments for %v", ld.Dialect, ld.Lang)
		registry.Set(ld.Lang, ld.Dialect)
	}

	renderer, err := cmd.newRenderer(opts)
	if err != nil {
		return errtrace.Wrap(err)
	}

	var extractor Extractor = new(fence.Markdown)
	if opts.Raw {
		extractor = &fence.Raw{Lang: opts.Lang}
	}

	docs, err := cmd.readDocuments(opts.Inputs)
	if err != nil {
		return errtrace.Wrap(err)
	}

	out := cmd.Stdout
	if opts.OutputFile != "" {
		var f *os.File
		f, err = os.Create(opts.OutputFile)
		if err != nil {
			return errtrace.Wrap(fmt.Errorf("-out: %w", err))
		}
		defer errdefer.Close(&err, f)
		out = f
	}

	generator := Generator{
		Log:       debugLog,
		Extractor: extractor,
		Resolver: &linerange.Resolver{
			Registry: registry,
			Log:      cmd.log,
		},
		Renderer: renderer,
	}
	return errtrace.Wrap(generator.Generate(out, docs))
}

func (cmd *mainCmd) newRenderer(opts *params) (_ Renderer, err error) {
	switch opts.Format {
	case textFormat:
		return new(textRenderer), nil
	case yamlFormat:
		return new(yamlRenderer), nil
	}

	style, ok := highlight.StyleNamed(opts.Style)
	if !ok {
		return nil, errtrace.Wrap(fmt.Errorf("unknown style %q", opts.Style))
	}

	hl := highlight.Highlighter{
		Style:      style,
		UseClasses: opts.Classes,
	}

	if opts.CSS.Bool() {
		var (
			cssw     io.Writer
			closeCSS func() error
		)
		cssw, closeCSS, err = opts.CSS.Create(cmd.Stderr)
		if err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("-css: %w", err))
		}
		defer errdefer.Call(&err, closeCSS)

		if err := hl.WriteCSS(cssw); err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("write CSS: %w", err))
		}
	}

	return &htmlRenderer{
		Log:         cmd.log,
		Highlighter: &hl,
	}, nil
}

// readDocuments reads the named files.
// Standard input is read if no files are given,
// or in place of files named "-".
func (cmd *mainCmd) readDocuments(names []string) ([]Document, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}

	docs := make([]Document, 0, len(names))
	for _, name := range names {
		var (
			body []byte
			err  error
		)
		if name == "-" {
			name = "<stdin>"
			body, err = io.ReadAll(cmd.Stdin)
		} else {
			body, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, errtrace.Wrap(err)
		}

		docs = append(docs, Document{Name: name, Body: body})
	}
	return docs, nil
}
