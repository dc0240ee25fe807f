// Package flagvalue provides flag.Value implementations
// for hlrange's command line.
package flagvalue

import "flag"

// Getter is a constraint satisfied by pointers to types
// which implement flag.Getter.
//
// [List] uses it to create and set new elements.
type Getter[T any] interface {
	*T
	flag.Getter
}
