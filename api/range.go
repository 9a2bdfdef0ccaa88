// File: api/range.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Range and Bound describe a source interval within a slice for in-place
// copy operations. A Range resolves to a concrete half-open [start, end)
// pair via Normalize; until then either end may be inclusive, exclusive,
// or unbounded, mirroring the usual interval notations:
//
//	Span(a, b)          a..b   half-open
//	SpanInclusive(a, b) a..=b  closed
//	From(a)             a..    open end
//	UpTo(b)             ..b    open start
//	UpToInclusive(b)    ..=b
//	Full()              ..     whole slice
//
// Converting an inclusive bound to its exclusive form increments it; that
// increment is checked and reports ErrBoundOverflow at the top of the int
// range rather than wrapping.

package api

import "math"

type boundKind uint8

// boundUnbounded is deliberately the zero kind, so the zero Bound (and the
// zero Range) mean "whole slice".
const (
	boundUnbounded boundKind = iota
	boundIncluded
	boundExcluded
)

// Bound is one end of a Range.
type Bound struct {
	kind  boundKind
	index int
}

// Included returns a bound that contains index i.
func Included(i int) Bound { return Bound{kind: boundIncluded, index: i} }

// Excluded returns a bound that stops just before (or starts just after) i.
func Excluded(i int) Bound { return Bound{kind: boundExcluded, index: i} }

// Unbounded returns a bound clamped to the slice edge at normalization time.
func Unbounded() Bound { return Bound{kind: boundUnbounded} }

// Range is a source interval described by two bounds.
// The zero value is Full(): both bounds unbounded.
type Range struct {
	Start Bound
	End   Bound
}

// Span returns the half-open interval [start, end).
func Span(start, end int) Range {
	return Range{Start: Included(start), End: Excluded(end)}
}

// SpanInclusive returns the closed interval [start, end].
func SpanInclusive(start, end int) Range {
	return Range{Start: Included(start), End: Included(end)}
}

// From returns the interval [start, len).
func From(start int) Range {
	return Range{Start: Included(start), End: Unbounded()}
}

// UpTo returns the interval [0, end).
func UpTo(end int) Range {
	return Range{Start: Unbounded(), End: Excluded(end)}
}

// UpToInclusive returns the interval [0, end].
func UpToInclusive(end int) Range {
	return Range{Start: Unbounded(), End: Included(end)}
}

// Full returns the interval covering the whole slice.
func Full() Range {
	return Range{Start: Unbounded(), End: Unbounded()}
}

// Normalize resolves the range against a slice of length n into a concrete
// (start, end) pair with exclusive end. It performs only the bound-form
// conversion; interval validity (start <= end <= n) is the copy operation's
// concern. The sole failure here is ErrCodeBoundOverflow, when an inclusive
// end (or excluded start) sits at math.MaxInt and cannot be incremented.
func (r Range) Normalize(n int) (start, end int, err error) {
	switch r.Start.kind {
	case boundIncluded:
		start = r.Start.index
	case boundExcluded:
		if r.Start.index == math.MaxInt {
			return 0, 0, NewError(ErrCodeBoundOverflow, ErrBoundOverflow.Error()).
				WithContext("start", r.Start.index)
		}
		start = r.Start.index + 1
	case boundUnbounded:
		start = 0
	}
	switch r.End.kind {
	case boundIncluded:
		if r.End.index == math.MaxInt {
			return 0, 0, NewError(ErrCodeBoundOverflow, ErrBoundOverflow.Error()).
				WithContext("end", r.End.index)
		}
		end = r.End.index + 1
	case boundExcluded:
		end = r.End.index
	case boundUnbounded:
		end = n
	}
	return start, end, nil
}
