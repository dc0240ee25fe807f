package highlight

import (
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Lexer analyzes source code and generates a stream of tokens.
type Lexer interface {
	Lex(src []byte) ([]chroma.Token, error)
}

// LexerFor returns a [Lexer] for the language with the given name or alias.
// Unknown languages are treated as plain text.
func LexerFor(lang string) Lexer {
	l := lexers.Get(lang)
	if l == nil {
		l = lexers.Fallback
	}
	return &chromaLexer{l: chroma.Coalesce(l)}
}

// chromaLexer builds a [Lexer] from a Chroma lexer.
type chromaLexer struct{ l chroma.Lexer }

// Lex lexically analyzes the given source code using Chroma.
//
// Line endings are left as-is so that token offsets match src.
func (cl *chromaLexer) Lex(src []byte) ([]chroma.Token, error) {
	return chroma.Tokenise(cl.l, &chroma.TokeniseOptions{State: "root"}, string(src))
}
