package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/hlrange/internal/fence"
	"go.abhg.dev/hlrange/internal/highlight"
	"go.abhg.dev/hlrange/internal/linerange"
	"go.abhg.dev/hlrange/internal/sliceutil"
	"gopkg.in/yaml.v3"
)

// htmlRenderer renders each block as a syntax highlighted <pre> element.
type htmlRenderer struct {
	Log         *log.Logger
	Highlighter *highlight.Highlighter

	// LexerFor picks the lexer for a block's language.
	// Defaults to highlight.LexerFor.
	LexerFor func(lang string) highlight.Lexer
}

func (r *htmlRenderer) Render(w io.Writer, b *fence.Block, lines []linerange.Line) error {
	lexerFor := r.LexerFor
	if lexerFor == nil {
		lexerFor = highlight.LexerFor
	}

	code, err := highlight.Build(lexerFor(b.Lang), lines)
	if err != nil {
		// Build still returns the unstyled code.
		r.Log.Printf("%v:%d: unable to highlight %v code: %v", b.Source, b.Line, b.Lang, err)
	}

	_, err = io.WriteString(w, r.Highlighter.Highlight(code)+"\n")
	return errtrace.Wrap(err)
}

// textRenderer renders blocks as plain text.
// Highlighted lines are prefixed with "> ".
type textRenderer struct {
	started bool
}

func (r *textRenderer) Render(w io.Writer, _ *fence.Block, lines []linerange.Line) error {
	var sb strings.Builder
	if r.started {
		sb.WriteString("\n")
	}
	r.started = true

	for _, line := range lines {
		if line.Highlighted {
			sb.WriteString("> ")
		} else {
			sb.WriteString("  ")
		}
		sb.WriteString(line.Code)
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return errtrace.Wrap(err)
}

// yamlRenderer renders each block as a YAML document.
type yamlRenderer struct{}

type yamlBlock struct {
	File  string     `yaml:"file"`
	Line  int        `yaml:"line"`
	Lang  string     `yaml:"lang,omitempty"`
	Lines []yamlLine `yaml:"lines"`
}

type yamlLine struct {
	Index       int    `yaml:"index"`
	Code        string `yaml:"code"`
	Highlighted bool   `yaml:"highlighted"`
}

func (*yamlRenderer) Render(w io.Writer, b *fence.Block, lines []linerange.Line) error {
	doc := yamlBlock{
		File: b.Source,
		Line: b.Line,
		Lang: b.Lang,
		Lines: sliceutil.Transform(lines, func(l linerange.Line) yamlLine {
			return yamlLine{
				Index:       l.Index,
				Code:        l.Code,
				Highlighted: l.Highlighted,
			}
		}),
	}

	if _, err := io.WriteString(w, "---\n"); err != nil {
		return errtrace.Wrap(err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return errtrace.Wrap(fmt.Errorf("encode: %w", err))
	}
	return errtrace.Wrap(enc.Close())
}
