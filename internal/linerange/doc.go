// Package linerange decides which lines of a code block are highlighted
// based on directive comments written inside the code.
//
// The following directives are recognized
// when they occupy a line by themselves:
//
//	// highlight-line          highlight the next line
//	// highlight-next-line     highlight the next line
//	// highlight-start         highlight until highlight-end
//	// highlight-end
//	// highlight-range{1,3-4}  highlight lines relative to the next line
//
// Directives may use any comment syntax valid for the block's language
// (see [Registry]). Directive lines are removed from the output.
//
// Use [Resolver] to process a block.
package linerange
