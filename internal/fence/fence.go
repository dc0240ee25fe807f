// Package fence finds code blocks inside documents.
//
// [Markdown] extracts fenced code blocks from Markdown,
// and [Raw] treats an entire file as a single block.
package fence

import (
	"bytes"
	"path/filepath"
	"strings"
	"sync"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Block is a code block found in a document.
type Block struct {
	// Source is the name of the document holding this block.
	Source string

	// Line is the 1-based line in Source where the code begins,
	// or 0 if the block is empty.
	Line int

	// Lang is the language tag of the block, if any.
	Lang string

	// Code is the contents of the block
	// without a trailing newline.
	Code string
}

// Markdown extracts fenced code blocks from Markdown documents.
//
// The zero value is ready to use.
type Markdown struct {
	once sync.Once
	md   goldmark.Markdown
}

// Extract returns the fenced code blocks in src in document order.
// Indented code blocks are ignored.
func (m *Markdown) Extract(name string, src []byte) ([]*Block, error) {
	m.once.Do(func() {
		m.md = goldmark.New()
	})

	doc := m.md.Parser().Parse(text.NewReader(src))

	var blocks []*Block
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		b := Block{
			Source: name,
			Lang:   string(fcb.Language(src)),
		}

		var code bytes.Buffer
		segs := fcb.Lines()
		for i := 0; i < segs.Len(); i++ {
			seg := segs.At(i)
			if i == 0 {
				b.Line = bytes.Count(src[:seg.Start], []byte{'\n'}) + 1
			}
			code.Write(seg.Value(src))
		}
		b.Code = strings.TrimSuffix(code.String(), "\n")

		blocks = append(blocks, &b)
		return ast.WalkSkipChildren, nil
	})
	return blocks, errtrace.Wrap(err)
}

// Raw treats an entire document as one code block.
type Raw struct {
	// Lang is the language of the document.
	//
	// If unset, the language is guessed from the document name.
	Lang string
}

// Extract returns a single block holding all of src.
func (r *Raw) Extract(name string, src []byte) ([]*Block, error) {
	lang := r.Lang
	if lang == "" {
		lang = guessLang(name)
	}

	b := Block{
		Source: name,
		Lang:   lang,
		Code:   strings.TrimSuffix(string(src), "\n"),
	}
	if len(src) > 0 {
		b.Line = 1
	}
	return []*Block{&b}, nil
}

func guessLang(name string) string {
	if l := lexers.Match(filepath.Base(name)); l != nil {
		return strings.ToLower(l.Config().Name)
	}
	return ""
}
