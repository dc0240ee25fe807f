package highlight

import chroma "github.com/alecthomas/chroma/v2"

// Code is a code block comprised of multiple lines.
type Code struct {
	Lines []*CodeLine
}

// CodeLine is a single line of a code block
// without its trailing newline.
type CodeLine struct {
	Spans []Span

	// Highlighted lines are rendered with a distinct background.
	Highlighted bool
}

type (
	// Span is a part of a line of code.
	Span interface{ span() }

	// TextSpan is a span rendered as-is.
	TextSpan struct {
		Text []byte
	}

	// TokenSpan is a span of code
	// that is highlighted with chroma.
	TokenSpan struct {
		Tokens []chroma.Token
	}
)

var (
	_ Span = (*TextSpan)(nil)
	_ Span = (*TokenSpan)(nil)
)

func (*TextSpan) span()  {}
func (*TokenSpan) span() {}
