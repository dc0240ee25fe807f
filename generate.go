package main

import (
	"fmt"
	"io"
	"log"

	"braces.dev/errtrace"
	"go.abhg.dev/hlrange/internal/fence"
	"go.abhg.dev/hlrange/internal/linerange"
)

// Extractor finds code blocks inside a document.
type Extractor interface {
	Extract(name string, src []byte) ([]*fence.Block, error)
}

var (
	_ Extractor = (*fence.Markdown)(nil)
	_ Extractor = (*fence.Raw)(nil)
)

// Resolver strips directives from a code block
// and reports which of the remaining lines are highlighted.
type Resolver interface {
	Resolve(lang, src string) []linerange.Line
}

var _ Resolver = (*linerange.Resolver)(nil)

// Renderer writes a resolved code block.
type Renderer interface {
	Render(w io.Writer, b *fence.Block, lines []linerange.Line) error
}

var (
	_ Renderer = (*htmlRenderer)(nil)
	_ Renderer = (*textRenderer)(nil)
	_ Renderer = (*yamlRenderer)(nil)
)

// Document is a single input to the generator.
type Document struct {
	// Name identifies the document in logs and output.
	Name string

	Body []byte
}

// Generator resolves highlight directives
// in all code blocks of the given documents.
//
// In terms of code organization,
// Generator's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Generator struct {
	Log       *log.Logger
	Extractor Extractor
	Resolver  Resolver
	Renderer  Renderer
}

// Generate processes the documents in order
// and writes every code block found in them to w.
// It stops at the first error.
func (g *Generator) Generate(w io.Writer, docs []Document) error {
	for _, doc := range docs {
		if err := g.generateDocument(w, doc); err != nil {
			return errtrace.Wrap(fmt.Errorf("%v: %w", doc.Name, err))
		}
	}
	return nil
}

func (g *Generator) generateDocument(w io.Writer, doc Document) error {
	blocks, err := g.Extractor.Extract(doc.Name, doc.Body)
	if err != nil {
		return errtrace.Wrap(fmt.Errorf("extract: %w", err))
	}

	for _, b := range blocks {
		g.Log.Printf("Processing %v:%d (%v)", b.Source, b.Line, b.Lang)

		lines := g.Resolver.Resolve(b.Lang, b.Code)
		if err := g.Renderer.Render(w, b, lines); err != nil {
			return errtrace.Wrap(fmt.Errorf("render line %d: %w", b.Line, err))
		}
	}
	return nil
}
