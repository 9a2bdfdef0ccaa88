// File: hioloadmem.go
// Unified facade for the hioload-mem library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file re-exports the overlap-safe in-place copy primitives and the
// slab buffer pool behind a single import path, so typical callers need
// only this package. The underlying packages remain importable directly
// for code that wants the narrower surface.

package hioloadmem

import (
	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/core/memops"
	"github.com/momentics/hioload-mem/pool"
)

// Range construction, re-exported from api.

// Span returns the half-open source interval [start, end).
func Span(start, end int) api.Range { return api.Span(start, end) }

// SpanInclusive returns the closed source interval [start, end].
func SpanInclusive(start, end int) api.Range { return api.SpanInclusive(start, end) }

// From returns the source interval [start, len).
func From(start int) api.Range { return api.From(start) }

// UpTo returns the source interval [0, end).
func UpTo(end int) api.Range { return api.UpTo(end) }

// UpToInclusive returns the source interval [0, end].
func UpToInclusive(end int) api.Range { return api.UpToInclusive(end) }

// Full returns the source interval covering the whole slice.
func Full() api.Range { return api.Full() }

// CopyInPlace copies the elements of s selected by r to the window starting
// at dest, memmove-style: the two windows may overlap in either direction.
// It panics with a *api.Error on inverted or out-of-bounds ranges; see
// TryCopyInPlace for the checked form.
//
//	bytes := []byte("Hello, World!")
//	hioloadmem.CopyInPlace(bytes, hioloadmem.Span(1, 5), 8)
//	// bytes is now "Hello, Wello!"
func CopyInPlace[T any](s []T, r api.Range, dest int) {
	memops.CopyInPlace(s, r, dest)
}

// TryCopyInPlace is CopyInPlace returning the precondition violation instead
// of panicking. No write occurs on any failure path.
func TryCopyInPlace[T any](s []T, r api.Range, dest int) error {
	return memops.TryCopyInPlace(s, r, dest)
}

// CopyWithin relocates count elements from offset src to offset dest within
// s, overlap-safe. Panics with a *api.Error on invalid indices.
func CopyWithin[T any](s []T, src, dest, count int) {
	memops.CopyWithin(s, src, dest, count)
}

// TryCopyWithin is the checked form of CopyWithin.
func TryCopyWithin[T any](s []T, src, dest, count int) error {
	return memops.TryCopyWithin(s, src, dest, count)
}

// NewBufferPoolManager returns a size-classed slab pool manager whose
// buffers support the same in-place copy operations with exclusive
// checkout semantics.
func NewBufferPoolManager() *pool.BufferPoolManager {
	return pool.NewBufferPoolManager()
}
