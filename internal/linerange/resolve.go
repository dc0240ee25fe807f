package linerange

import (
	"io"
	"log"
	"slices"
	"strings"
)

// Line is a line of code in the output of [Resolver.Resolve].
type Line struct {
	// Index is the 0-based position of this line
	// in the original code block.
	Index int

	// Code is the text of the line without a trailing newline.
	Code string

	// Highlighted reports whether this line should be highlighted.
	Highlighted bool
}

// Resolver strips directive comments from code blocks
// and determines which of the remaining lines are highlighted.
//
// The zero value is ready to use.
type Resolver struct {
	// Registry determines which comment syntaxes are valid
	// for each language.
	//
	// Defaults to DefaultRegistry() if unset.
	Registry Registry

	// Log receives a warning for each invalid highlight-range directive.
	// Warnings are discarded if this is unset.
	Log *log.Logger
}

// Resolve processes the given code block written in lang.
//
// Directive lines are omitted from the result.
// Problems with directives are reported to the logger;
// they never cause a failure.
func (r *Resolver) Resolve(lang, src string) []Line {
	reg := r.Registry
	if reg == nil {
		reg = _defaultRegistry
	}
	logger := r.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	syntaxes := reg.SyntaxesFor(lang)
	rawLines := strings.Split(src, "\n")
	lines := make([]Line, 0, len(rawLines))

	var st scanState
	for idx, raw := range rawLines {
		if d, _, ok := Recognize(raw, syntaxes); ok {
			st = st.apply(d, logger)
			continue
		}

		var highlighted bool
		st, highlighted = st.emit()
		lines = append(lines, Line{
			Index:       idx,
			Code:        raw,
			Highlighted: highlighted,
		})
	}
	return lines
}

// scanState is the state carried from line to line
// while resolving a code block.
type scanState struct {
	// pos is the output position of the next emitted line.
	pos int

	// pendingNextLine is set by highlight-line and highlight-next-line
	// and consumed by the next emitted line.
	pendingNextLine bool

	// inRangeBlock is true between highlight-start and highlight-end.
	inRangeBlock bool

	// explicit holds the highlight-range specs seen so far.
	explicit []anchoredRange
}

// anchoredRange is a highlight-range spec
// whose offset 1 is the output position base.
type anchoredRange struct {
	base int
	spec RangeSpec
}

func (st scanState) apply(d Directive, logger *log.Logger) scanState {
	switch d.Kind {
	case HighlightLine, HighlightNextLine:
		st.pendingNextLine = true
	case HighlightStart:
		st.inRangeBlock = true
	case HighlightEnd:
		st.inRangeBlock = false
	case HighlightRange:
		var (
			spec RangeSpec
			err  error
		)
		if d.HasSpec {
			spec, err = ParseRangeSpec(d.Spec)
		}
		if !d.HasSpec || err != nil {
			logger.Print(`Invalid match specified: "` + d.Text + `"`)
			break
		}
		st.explicit = append(slices.Clip(st.explicit), anchoredRange{base: st.pos, spec: spec})
	}
	return st
}

// emit reports whether the line at the current position is highlighted
// and returns the state for the line after it.
func (st scanState) emit() (scanState, bool) {
	highlighted := st.pendingNextLine || st.inRangeBlock || st.inExplicit()
	st.pendingNextLine = false
	st.pos++
	return st, highlighted
}

func (st scanState) inExplicit() bool {
	for _, r := range st.explicit {
		if r.spec.Contains(st.pos - r.base + 1) {
			return true
		}
	}
	return false
}
