// Package sliceutil holds generic slice helpers
// shared by hlrange's renderers.
package sliceutil

// Transform maps each element of from through f
// and returns the results in the same order.
//
// An empty or nil input yields a nil slice,
// so renderers can omit empty fields.
func Transform[From, To any](from []From, f func(From) To) []To {
	if len(from) == 0 {
		return nil
	}
	to := make([]To, 0, len(from))
	for _, v := range from {
		to = append(to, f(v))
	}
	return to
}
