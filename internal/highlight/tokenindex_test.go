package highlight

import (
	"testing"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIndex(t *testing.T) {
	t.Parallel()

	src := []byte("func foo() (int, error) {\n\treturn 42, nil\n}\n")
	tokens, err := LexerFor("go").Lex(src)
	require.NoError(t, err)

	tidx := NewTokenIndex(src, tokens)

	tests := []struct {
		desc        string
		start, end  int
		tokens      []chroma.Token
		lead, trail string
	}{
		{
			desc: "exact boundaries",
			// func foo()
			start: 0,
			end:   10,
			tokens: []chroma.Token{
				{Type: chroma.KeywordDeclaration, Value: "func"},
				{Type: chroma.TextWhitespace, Value: " "},
				{Type: chroma.NameFunction, Value: "foo"},
				{Type: chroma.Punctuation, Value: "()"},
			},
		},
		{
			desc: "leading text",
			// unc foo()
			start: 1,
			end:   10,
			lead:  "unc",
			tokens: []chroma.Token{
				{Type: chroma.TextWhitespace, Value: " "},
				{Type: chroma.NameFunction, Value: "foo"},
				{Type: chroma.Punctuation, Value: "()"},
			},
		},
		{
			desc: "trailing text",
			// func fo
			start: 0,
			end:   7,
			tokens: []chroma.Token{
				{Type: chroma.KeywordDeclaration, Value: "func"},
				{Type: chroma.TextWhitespace, Value: " "},
			},
			trail: "fo",
		},
		{
			desc: "inside a single token",
			// un
			start: 1,
			end:   3,
			lead:  "un",
		},
		{
			desc:  "empty",
			start: 5,
			end:   5,
		},
		{
			desc:  "start out of range",
			start: 75,
			end:   100,
		},
		{
			desc: "hit end of src",
			// , nil\n}\n
			start: 38,
			end:   len(src),
			tokens: []chroma.Token{
				{Type: chroma.KeywordConstant, Value: "nil"},
				{Type: chroma.TextWhitespace, Value: "\n"},
				{Type: chroma.Punctuation, Value: "}"},
				{Type: chroma.TextWhitespace, Value: "\n"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			tokens, lead, trail := tidx.Interval(tt.start, tt.end)
			assert.Equal(t, tt.tokens, tokens)
			assert.Equal(t, tt.lead, string(lead))
			assert.Equal(t, tt.trail, string(trail))
		})
	}
}

func TestTokenIndex_TokenAt(t *testing.T) {
	t.Parallel()

	src := []byte("func foo() {}\n")
	tokens, err := LexerFor("go").Lex(src)
	require.NoError(t, err)

	tidx := NewTokenIndex(src, tokens)

	tests := []struct {
		desc   string
		off    int
		want   chroma.Token
		wantOK bool
	}{
		{
			desc:   "token start",
			off:    0,
			want:   chroma.Token{Type: chroma.KeywordDeclaration, Value: "func"},
			wantOK: true,
		},
		{
			desc:   "token middle",
			off:    3,
			want:   chroma.Token{Type: chroma.KeywordDeclaration, Value: "func"},
			wantOK: true,
		},
		{
			desc:   "next token",
			off:    4,
			want:   chroma.Token{Type: chroma.TextWhitespace, Value: " "},
			wantOK: true,
		},
		{desc: "negative", off: -1},
		{desc: "past the end", off: len(src)},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, ok := tidx.TokenAt(tt.off)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
