// File: pool/bufferpool_other.go
//go:build !linux

//
// Package pool: portable slab allocation on the Go heap for platforms
// without the Linux mmap path.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

// slabAlloc allocates a slab of exactly `sz` bytes on the heap.
func slabAlloc(sz int) *slab {
	return &slab{data: make([]byte, sz)}
}

// slabRelease is a no-op; heap slabs are reclaimed by the GC.
func slabRelease(sl *slab) {}
