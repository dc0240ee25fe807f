package linerange

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
)

// Interval is an inclusive range of 1-based line offsets.
type Interval struct {
	Start, End int
}

// RangeSpec is a set of positive 1-based line offsets
// parsed from the payload of a highlight-range directive.
//
// It is stored as sorted, non-overlapping intervals.
type RangeSpec []Interval

// ParseRangeSpec parses a comma-separated list of offsets and ranges,
// for example "1,3-4".
//
// Either the whole specification parses or an error is returned.
func ParseRangeSpec(s string) (RangeSpec, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errtrace.New("empty range specification")
	}

	var spec RangeSpec
	for _, tok := range strings.Split(s, ",") {
		iv, err := parseInterval(strings.TrimSpace(tok))
		if err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("bad range specification %q: %w", s, err))
		}
		spec = append(spec, iv)
	}
	return spec.normalize(), nil
}

func parseInterval(tok string) (Interval, error) {
	if tok == "" {
		return Interval{}, errtrace.New("empty entry")
	}

	lo, hi, isRange := strings.Cut(tok, "-")
	start, err := parseOffset(lo)
	if err != nil {
		return Interval{}, errtrace.Wrap(err)
	}
	if !isRange {
		return Interval{Start: start, End: start}, nil
	}

	end, err := parseOffset(hi)
	if err != nil {
		return Interval{}, errtrace.Wrap(err)
	}
	if end < start {
		return Interval{}, errtrace.Wrap(fmt.Errorf("range %q is reversed", tok))
	}
	return Interval{Start: start, End: end}, nil
}

// parseOffset parses a plain decimal offset.
// Signs are not allowed.
// Offsets too large for an int saturate at math.MaxInt.
func parseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, errtrace.Wrap(fmt.Errorf("offset %q is not a number", s))
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		// All digits so this can only be an overflow.
		n = math.MaxInt
	}
	if n < 1 {
		return 0, errtrace.Wrap(fmt.Errorf("offset %d must be positive", n))
	}
	return n, nil
}

// normalize sorts the intervals and merges overlapping
// or adjacent ones.
func (rs RangeSpec) normalize() RangeSpec {
	slices.SortFunc(rs, func(a, b Interval) int {
		return a.Start - b.Start
	})

	merged := rs[:0]
	for _, iv := range rs {
		if n := len(merged); n > 0 && iv.Start-1 <= merged[n-1].End {
			merged[n-1].End = max(merged[n-1].End, iv.End)
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// Contains reports whether the given offset is part of this spec.
func (rs RangeSpec) Contains(n int) bool {
	_, found := slices.BinarySearchFunc(rs, n, func(iv Interval, n int) int {
		switch {
		case iv.End < n:
			return -1
		case iv.Start > n:
			return 1
		default:
			return 0
		}
	})
	return found
}
