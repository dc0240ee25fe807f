package linerange

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// Code lines can't spell out a directive:
// they have no '/', '#', or '-'.
var _codeLine = rapid.StringMatching(`[ \ta-z0-9(){};=<>.]{0,20}`)

var _directiveLine = rapid.SampledFrom([]string{
	"// highlight-line",
	"  // highlight-next-line",
	"// highlight-start",
	"\t// highlight-end",
	"// highlight-range{1,3-4}",
	"// highlight-range{2}",
	"// highlight-range{100}",
	"// highlight-range{bad}",
	"// highlight-range",
	"{/* highlight-line */}",
	"  {/* highlight-start */}",
	"{/* highlight-end */}",
})

func TestResolve_properties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		var (
			src        []string
			directives int
		)
		n := rapid.IntRange(0, 30).Draw(t, "numLines")
		for i := 0; i < n; i++ {
			if rapid.Bool().Draw(t, "isDirective") {
				src = append(src, _directiveLine.Draw(t, "directive"))
				directives++
			} else {
				src = append(src, _codeLine.Draw(t, "code"))
			}
		}

		got := new(Resolver).Resolve("jsx", strings.Join(src, "\n"))

		wantLen := len(src) - directives
		if len(src) == 0 {
			wantLen = 1 // the empty block is one empty line
		}
		if len(got) != wantLen {
			t.Fatalf("got %d lines, want %d", len(got), wantLen)
		}

		prev := -1
		for _, l := range got {
			if l.Index <= prev {
				t.Fatalf("index %d does not follow %d", l.Index, prev)
			}
			prev = l.Index

			for _, kw := range _directiveKeywords {
				if strings.Contains(l.Code, kw) {
					t.Fatalf("directive %q leaked into line %q", kw, l.Code)
				}
			}

			if len(src) > 0 && src[l.Index] != l.Code {
				t.Fatalf("line %d changed: got %q, want %q", l.Index, l.Code, src[l.Index])
			}
		}
	})
}

func TestResolve_idempotent(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		src := strings.Join(rapid.SliceOf(_codeLine).Draw(t, "lines"), "\n")
		lang := rapid.SampledFrom([]string{"go", "jsx", "yaml"}).Draw(t, "lang")

		got := new(Resolver).Resolve(lang, src)
		if out := output(got); out != src {
			t.Fatalf("content changed:\ngot  %q\nwant %q", out, src)
		}
		if hl := highlightedCode(got); len(hl) > 0 {
			t.Fatalf("unexpected highlights: %q", hl)
		}
	})
}
