package flagvalue

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// List is a generic flag.Getter
// that accepts zero or more instances of the same flag
// and combines them into a list.
//
// Each instance may hold several comma-separated values,
// so "-x a,b" is the same as "-x a -x b".
// This lets a single environment variable
// or configuration file line specify many values.
type List[T any, PT Getter[T]] []T

// ListOf wraps a slice of flag.Getter objects
// to accept zero or more instances of that flag.
//
//	flag.Var(flagvalue.ListOf(&dialects), "dialect", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the values recorded so far
// as a slice of the underlying type.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String returns a comma separated list of the values in this list.
// The result may be passed back to Set.
func (lv *List[T, PT]) String() string {
	var sb strings.Builder
	for i, v := range *lv {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}

// Set receives a single flag argument into this list.
//
// Empty items are ignored.
// If any item is invalid, none of the items are added.
func (lv *List[T, PT]) Set(s string) error {
	var items []T
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		var v T
		if err := PT(&v).Set(item); err != nil {
			return errtrace.Wrap(err)
		}
		items = append(items, v)
	}
	*lv = append(*lv, items...)
	return nil
}
