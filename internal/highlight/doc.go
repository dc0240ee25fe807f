// Package highlight renders code blocks to HTML.
// It uses the Chroma library for syntax highlighting.
//
// Code blocks are represented as [Code] values,
// made up of one [CodeLine] for each line of source.
// Each line is comprised of multiple [Span]s,
// and may be marked as highlighted,
// in which case it is rendered with a distinct background.
package highlight
