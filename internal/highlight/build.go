package highlight

import (
	"bytes"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"go.abhg.dev/hlrange/internal/linerange"
)

// Build builds a [Code] from resolved lines of a code block.
//
// The lines are lexed together as one source file
// so that constructs spanning lines (e.g. block comments)
// are recognized, and the tokens are split back into lines.
//
// If lexing fails, Build returns plain, unhighlighted code
// alongside the error.
func Build(lexer Lexer, lines []linerange.Line) (*Code, error) {
	var src bytes.Buffer
	bounds := make([][2]int, len(lines))
	for i, l := range lines {
		start := src.Len()
		src.WriteString(l.Code)
		bounds[i] = [2]int{start, src.Len()}
		src.WriteByte('\n')
	}

	code := &Code{Lines: make([]*CodeLine, len(lines))}
	tokens, err := lexer.Lex(src.Bytes())
	if err != nil {
		for i, l := range lines {
			code.Lines[i] = &CodeLine{
				Spans:       []Span{&TextSpan{Text: []byte(l.Code)}},
				Highlighted: l.Highlighted,
			}
		}
		return code, errtrace.Wrap(err)
	}

	tidx := NewTokenIndex(src.Bytes(), tokens)
	for i, l := range lines {
		line := &CodeLine{Highlighted: l.Highlighted}

		start, end := bounds[i][0], bounds[i][1]
		toks, lead, trail := tidx.Interval(start, end)
		if len(lead) > 0 {
			line.Spans = append(line.Spans, partialSpan(tidx, start, lead))
		}
		if len(toks) > 0 {
			line.Spans = append(line.Spans, &TokenSpan{Tokens: toks})
		}
		if len(trail) > 0 {
			line.Spans = append(line.Spans, partialSpan(tidx, end-len(trail), trail))
		}

		code.Lines[i] = line
	}
	return code, nil
}

// partialSpan holds text cut out of the token at offset off,
// retaining that token's type.
// This keeps multi-line tokens like block comments highlighted.
func partialSpan(tidx *TokenIndex, off int, text []byte) Span {
	tok, ok := tidx.TokenAt(off)
	if !ok {
		return &TextSpan{Text: text}
	}
	return &TokenSpan{
		Tokens: []chroma.Token{{Type: tok.Type, Value: string(text)}},
	}
}
