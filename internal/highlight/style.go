package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// PlainStyle is a minimal syntax highlighting style for Chroma.
// It leaves most text as-is, fades comments ever so slightly,
// and darkens the background of highlighted lines.
var PlainStyle = chroma.MustNewStyle("plain", map[chroma.TokenType]string{
	chroma.Comment:       "#666666",
	chroma.PreWrapper:    "bg:#eeeeee",
	chroma.Background:    "bg:#eeeeee",
	chroma.LineHighlight: "bg:#dddddd",
})

func init() {
	styles.Register(PlainStyle)
}

// StyleNamed returns the Chroma style with the given name,
// and reports whether it exists.
func StyleNamed(name string) (*chroma.Style, bool) {
	s, ok := styles.Registry[name]
	return s, ok
}
