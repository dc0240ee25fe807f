package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/hlrange/internal/flagvalue"
	"go.abhg.dev/hlrange/internal/linerange"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for hlrange.
type params struct {
	version bool
	help    Help
	config  string

	Debug flagvalue.FileSwitch

	// Input:
	Raw      bool
	Lang     string
	Dialects []langDialect

	// Output:
	OutputFile string
	Format     outputFormat
	Style      string
	Classes    bool
	CSS        flagvalue.FileSwitch

	Inputs []string
}

// cliParser parses the command line arguments for hlrange.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("hlrange", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	p := params{Format: htmlFormat}

	// Input:
	flag.BoolVar(&p.Raw, "raw", false, "")
	flag.StringVar(&p.Lang, "lang", "", "")
	flag.Var(flagvalue.ListOf(&p.Dialects), "dialect", "")

	// Output:
	flag.StringVar(&p.OutputFile, "out", "", "")
	flag.Var(&p.Format, "format", "")
	flag.StringVar(&p.Style, "style", "plain", "")
	flag.BoolVar(&p.Classes, "classes", false, "")
	flag.Var(&p.CSS, "css", "")

	// Program-level:
	flag.StringVar(&p.config, "config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()

	// The flag package reports its own errors.
	if err := flag.Parse(args); err != nil {
		return nil, errtrace.Wrap(err)
	}
	args = flag.Args()

	// Flags that weren't set on the command line
	// may be set with HLRANGE_* environment variables
	// or in the file passed to -config.
	err := ff.Parse(flag, nil,
		ff.WithEnvVarPrefix("HLRANGE"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		fmt.Fprintln(cmd.Stderr, err)
		return nil, errInvalidArguments
	}

	if p.version {
		fmt.Fprintln(cmd.Stdout, "hlrange", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	if p.Lang != "" {
		p.Raw = true
	}
	if p.CSS.Bool() && !p.Classes {
		fmt.Fprintln(cmd.Stderr, "-css requires -classes.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	p.Inputs = args
	return p, nil
}

// langDialect associates a language tag with a comment dialect.
// It's specified as "lang=dialect" on the command line.
type langDialect struct {
	Lang    string
	Dialect linerange.Dialect
}

var _ flag.Getter = (*langDialect)(nil)

func (ld *langDialect) Get() any { return ld }

func (ld langDialect) String() string {
	return fmt.Sprintf("%s=%s", ld.Lang, ld.Dialect)
}

func (ld *langDialect) Set(s string) error {
	lang, name, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(lang) == "" {
		return errtrace.New("expected form 'lang=dialect'")
	}

	d, err := linerange.ParseDialect(name)
	if err != nil {
		return errtrace.Wrap(err)
	}

	ld.Lang = strings.TrimSpace(lang)
	ld.Dialect = d
	return nil
}

// outputFormat specifies how resolved code blocks are written.
type outputFormat string

const (
	htmlFormat outputFormat = "html"
	textFormat outputFormat = "text"
	yamlFormat outputFormat = "yaml"
)

var _ flag.Getter = (*outputFormat)(nil)

func (f *outputFormat) Get() any { return *f }

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(s)); v {
	case htmlFormat, textFormat, yamlFormat:
		*f = v
		return nil
	default:
		return errtrace.Wrap(fmt.Errorf("unknown format %q: expected html, text, or yaml", s))
	}
}
