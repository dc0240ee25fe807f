package linerange

import (
	"fmt"
	"maps"
	"strings"

	"braces.dev/errtrace"
)

// CommentSyntax describes how a comment is wrapped in a language.
type CommentSyntax struct {
	Prefix string
	Suffix string // may be empty
}

// Built-in comment syntaxes.
var (
	LineComment  = CommentSyntax{Prefix: "// "}
	BlockComment = CommentSyntax{Prefix: "{/* ", Suffix: " */}"}
	HashComment  = CommentSyntax{Prefix: "# "}
)

// unwrap reports the trimmed body of s
// if s is exactly one comment in this syntax.
//
// Whitespace just inside the delimiters is optional.
func (cs CommentSyntax) unwrap(s string) (body string, ok bool) {
	body, ok = strings.CutPrefix(s, strings.TrimRight(cs.Prefix, " "))
	if !ok {
		return "", false
	}
	body, ok = strings.CutSuffix(body, strings.TrimLeft(cs.Suffix, " "))
	if !ok {
		return "", false
	}
	return strings.TrimSpace(body), true
}

// Dialect is a family of comment syntaxes shared by several languages.
type Dialect int

const (
	// LineDialect uses only "// " comments.
	LineDialect Dialect = iota

	// MarkupDialect adds JSX-style "{/* */}" comments.
	MarkupDialect

	// HashDialect adds "# " comments.
	HashDialect
)

// ParseDialect parses the name of a dialect:
// one of "line", "markup", or "hash".
func ParseDialect(s string) (Dialect, error) {
	switch name := strings.ToLower(strings.TrimSpace(s)); name {
	case "line":
		return LineDialect, nil
	case "markup":
		return MarkupDialect, nil
	case "hash":
		return HashDialect, nil
	default:
		return 0, errtrace.Wrap(fmt.Errorf("unknown comment dialect %q: expected line, markup, or hash", name))
	}
}

func (d Dialect) String() string {
	switch d {
	case LineDialect:
		return "line"
	case MarkupDialect:
		return "markup"
	case HashDialect:
		return "hash"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// Syntaxes returns the comment syntaxes accepted by this dialect
// in the order they should be tried.
func (d Dialect) Syntaxes() []CommentSyntax {
	switch d {
	case MarkupDialect:
		return []CommentSyntax{LineComment, BlockComment}
	case HashDialect:
		return []CommentSyntax{LineComment, HashComment}
	default:
		return []CommentSyntax{LineComment}
	}
}

// Registry maps language tags to their comment dialect.
// Keys are lowercase.
//
// Languages that are absent from the registry use [LineDialect].
type Registry map[string]Dialect

var _defaultRegistry = Registry{
	"js":         MarkupDialect,
	"javascript": MarkupDialect,
	"jsx":        MarkupDialect,
	"mdx":        MarkupDialect,
	"ts":         MarkupDialect,
	"tsx":        MarkupDialect,
	"typescript": MarkupDialect,

	"bash":       HashDialect,
	"coffee":     HashDialect,
	"conf":       HashDialect,
	"dockerfile": HashDialect,
	"elixir":     HashDialect,
	"ex":         HashDialect,
	"fish":       HashDialect,
	"gql":        HashDialect,
	"graphql":    HashDialect,
	"hcl":        HashDialect,
	"julia":      HashDialect,
	"make":       HashDialect,
	"makefile":   HashDialect,
	"nix":        HashDialect,
	"perl":       HashDialect,
	"powershell": HashDialect,
	"ps1":        HashDialect,
	"py":         HashDialect,
	"python":     HashDialect,
	"r":          HashDialect,
	"rb":         HashDialect,
	"ruby":       HashDialect,
	"sh":         HashDialect,
	"shell":      HashDialect,
	"tcl":        HashDialect,
	"terraform":  HashDialect,
	"tf":         HashDialect,
	"toml":       HashDialect,
	"yaml":       HashDialect,
	"yml":        HashDialect,
	"zsh":        HashDialect,
}

// DefaultRegistry returns a copy of the built-in registry.
// Callers may modify the returned map.
func DefaultRegistry() Registry {
	return maps.Clone(_defaultRegistry)
}

// SyntaxesFor returns the comment syntaxes valid for the given language.
// The result always begins with [LineComment].
func (r Registry) SyntaxesFor(lang string) []CommentSyntax {
	return r[normalizeLang(lang)].Syntaxes()
}

// Set associates a language tag with a dialect,
// overriding any previous association.
func (r Registry) Set(lang string, d Dialect) {
	r[normalizeLang(lang)] = d
}

func normalizeLang(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
