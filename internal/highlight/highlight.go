package highlight

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"sync"

	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
)

// Highlighter turns [Code] into HTML.
type Highlighter struct {
	// Style used for syntax highlighting of code.
	// Defaults to PlainStyle.
	Style *chroma.Style

	// UseClasses specifies whether the highlighter
	// uses inline 'style' attributes for highlighting,
	// or classes, assuming use of an appropriate style sheet.
	UseClasses bool

	once      sync.Once
	formatter *chromahtml.Formatter
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		if h.Style == nil {
			h.Style = PlainStyle
		}
		h.formatter = chromahtml.New(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithClasses(h.UseClasses),
		)
	})
}

// WriteCSS writes the style classes for this highlighter to writer.
// If this highlighter is not using classes, WriteCSS is a no-op.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	h.init()

	if !h.UseClasses {
		return nil
	}

	return h.formatter.WriteCSS(w, h.Style)
}

// Highlight renders the given code block into HTML.
//
// Each line is terminated by a newline.
// Highlighted lines, including their newline,
// are wrapped in a span with the "hl" class
// or the line highlight style.
func (h *Highlighter) Highlight(code *Code) string {
	h.init()

	if code == nil {
		return ""
	}

	r := codeRenderer{fmt: h.formatter, sty: h.Style}
	if h.UseClasses {
		fmt.Fprintf(&r, "<pre class=%q>", chroma.StandardTypes[chroma.PreWrapper])
		r.hlAttr = fmt.Sprintf(" class=%q", chroma.StandardTypes[chroma.LineHighlight])
	} else {
		style := chromahtml.StyleEntryToCSS(h.Style.Get(chroma.PreWrapper))
		fmt.Fprintf(&r, "<pre style=%q>", style)
		hlStyle := chromahtml.StyleEntryToCSS(h.Style.Get(chroma.LineHighlight))
		r.hlAttr = fmt.Sprintf(" style=%q", hlStyle)
	}
	for _, line := range code.Lines {
		r.RenderLine(line)
	}
	fmt.Fprint(&r, "</pre>")
	return r.String()
}

type codeRenderer struct {
	bytes.Buffer

	fmt    chroma.Formatter
	sty    *chroma.Style
	hlAttr string // attributes for highlighted lines
}

func (r *codeRenderer) RenderLine(line *CodeLine) {
	if line.Highlighted {
		fmt.Fprintf(r, "<span%s>", r.hlAttr)
	}
	r.RenderSpans(line.Spans)
	r.WriteByte('\n')
	if line.Highlighted {
		r.WriteString("</span>")
	}
}

func (r *codeRenderer) RenderSpans(spans []Span) {
	for _, span := range spans {
		r.RenderSpan(span)
	}
}

func (r *codeRenderer) RenderSpan(span Span) {
	switch b := span.(type) {
	case *TokenSpan:
		r.fmt.Format(r, r.sty, chroma.Literator(b.Tokens...))
	case *TextSpan:
		template.HTMLEscape(r, b.Text)
	default:
		panic(fmt.Sprintf("unrecognized node type %T", b))
	}
}
