// File: core/memops/copy.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Overlap-safe in-place copy within a single slice.
//
// The operations here are the library's core: a range-checked memmove.
// Validation runs in full before the first write, so a failing call leaves
// the slice byte-for-byte unchanged. The copy itself is Go's builtin copy,
// which is defined for overlapping source and destination (it lowers to
// runtime.memmove), so no direction-aware element loop is needed: the result
// always matches reading all count source elements first, then writing them.
//
// Each bounds check is phrased so its arithmetic cannot overflow int: fit is
// verified as `dest <= len(s) - count` (count already proven <= len(s)),
// never as `dest + count <= len(s)`.
//
// Callers must hold exclusive access to the slice for the duration of a
// call. Nothing here locks; concurrent invocations on one slice are a data
// race even with disjoint windows.

package memops

import "github.com/momentics/hioload-mem/api"

// TryCopyWithin relocates count elements from offset src to offset dest
// within s. Source and destination windows may overlap in either direction.
// On any precondition violation it returns a *api.Error and writes nothing:
//
//	ErrCodeInvertedRange     count < 0
//	ErrCodeSourceOutOfBounds src < 0 or src+count exceeds len(s)
//	ErrCodeDestOutOfBounds   dest < 0 or dest+count exceeds len(s)
func TryCopyWithin[T any](s []T, src, dest, count int) error {
	n := len(s)
	if count < 0 {
		return api.NewError(api.ErrCodeInvertedRange, api.ErrInvertedRange.Error()).
			WithContext("count", count)
	}
	if src < 0 || src > n || count > n-src {
		return api.NewError(api.ErrCodeSourceOutOfBounds, api.ErrSourceOutOfBounds.Error()).
			WithContext("src", src).
			WithContext("count", count).
			WithContext("len", n)
	}
	if dest < 0 || dest > n-count {
		return api.NewError(api.ErrCodeDestOutOfBounds, api.ErrDestOutOfBounds.Error()).
			WithContext("dest", dest).
			WithContext("count", count).
			WithContext("len", n)
	}
	copy(s[dest:dest+count], s[src:src+count])
	return nil
}

// CopyWithin is TryCopyWithin with the abort contract: it panics with the
// same *api.Error a checked call would return. Intended for callers that
// treat invalid indices as programmer error.
func CopyWithin[T any](s []T, src, dest, count int) {
	if err := TryCopyWithin(s, src, dest, count); err != nil {
		panic(err)
	}
}

// TryCopyInPlace copies the elements selected by r to the window starting
// at dest, within the same slice. r is normalized against len(s) first
// (unbounded ends clamp to the slice edges, inclusive ends are incremented
// with an overflow check), then validated: start must not exceed end, the
// source window must lie within s, and the destination window must fit.
// The windows may overlap. On failure nothing is written.
func TryCopyInPlace[T any](s []T, r api.Range, dest int) error {
	start, end, err := r.Normalize(len(s))
	if err != nil {
		return err
	}
	if start > end {
		return api.NewError(api.ErrCodeInvertedRange, api.ErrInvertedRange.Error()).
			WithContext("start", start).
			WithContext("end", end)
	}
	if start < 0 || end > len(s) {
		return api.NewError(api.ErrCodeSourceOutOfBounds, api.ErrSourceOutOfBounds.Error()).
			WithContext("start", start).
			WithContext("end", end).
			WithContext("len", len(s))
	}
	return TryCopyWithin(s, start, dest, end-start)
}

// CopyInPlace is TryCopyInPlace with the abort contract.
//
//	bytes := []byte("Hello, World!")
//	memops.CopyInPlace(bytes, api.Span(1, 5), 8)
//	// bytes is now "Hello, Wello!"
func CopyInPlace[T any](s []T, r api.Range, dest int) {
	if err := TryCopyInPlace(s, r, dest); err != nil {
		panic(err)
	}
}
