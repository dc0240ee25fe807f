package linerange

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DirectiveKind identifies a highlighting directive.
type DirectiveKind int

// Supported directives.
const (
	// HighlightLine highlights the line that follows it.
	// The directive is on its own line,
	// so the line it marks is the next one in the output.
	HighlightLine DirectiveKind = iota + 1

	// HighlightNextLine highlights the line that follows it.
	HighlightNextLine

	// HighlightStart opens a highlighted block.
	HighlightStart

	// HighlightEnd closes a highlighted block.
	HighlightEnd

	// HighlightRange highlights lines relative to the line after it
	// as specified by a [RangeSpec].
	HighlightRange
)

var _keywords = map[string]DirectiveKind{
	"highlight-line":      HighlightLine,
	"highlight-next-line": HighlightNextLine,
	"highlight-start":     HighlightStart,
	"highlight-end":       HighlightEnd,
}

const _rangeKeyword = "highlight-range"

func (k DirectiveKind) String() string {
	if k == HighlightRange {
		return _rangeKeyword
	}
	for kw, kind := range _keywords {
		if kind == k {
			return kw
		}
	}
	return "unknown"
}

// Directive is a recognized directive comment.
type Directive struct {
	Kind DirectiveKind

	// Spec is the text inside the braces of highlight-range{...}.
	// HasSpec is false if the braces were missing or malformed.
	Spec    string
	HasSpec bool

	// Text is the full comment as written, without surrounding whitespace.
	Text string
}

// Recognize reports whether line consists of exactly one directive comment
// in one of the given syntaxes.
//
// If it does, stripped is empty since the whole line is the directive.
// Otherwise, stripped is the line unchanged.
// Comments that share the line with code are never directives.
func Recognize(line string, syntaxes []CommentSyntax) (d Directive, stripped string, ok bool) {
	text := strings.TrimSpace(line)
	for _, cs := range syntaxes {
		body, wrapped := cs.unwrap(text)
		if !wrapped {
			continue
		}

		// Only the first syntax that wraps the line is considered.
		if d, ok = parseDirective(body); ok {
			d.Text = text
			return d, "", true
		}
		break
	}
	return Directive{}, line, false
}

func parseDirective(body string) (Directive, bool) {
	if kind, ok := _keywords[body]; ok {
		return Directive{Kind: kind}, true
	}

	rest, ok := strings.CutPrefix(body, _rangeKeyword)
	if !ok {
		return Directive{}, false
	}

	d := Directive{Kind: HighlightRange}
	switch {
	case rest == "":
		// Missing modifier. Still a directive so it's stripped.
	case strings.HasPrefix(rest, "{") && strings.HasSuffix(rest, "}"):
		d.Spec = rest[1 : len(rest)-1]
		d.HasSpec = true
	case strings.HasPrefix(rest, "{"):
		// Unterminated modifier.
	default:
		// "highlight-range {1}" is a malformed range directive,
		// but "highlight-ranges" is not a directive at all.
		r, _ := utf8.DecodeRuneInString(rest)
		if !unicode.IsSpace(r) {
			return Directive{}, false
		}
	}
	return d, true
}
