// File: api/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Exclusively-owned memory buffers with safe in-place range copy.
//
// A Buffer checked out of a pool is owned by exactly one caller until
// Release. The in-place copy operations assume that exclusivity: two
// goroutines mutating one checked-out buffer is a data race regardless of
// whether their windows overlap. Callers needing shared access must
// serialize externally.

package api

// Buffer describes a pooled, exclusively-held memory region supporting
// overlap-safe in-place copies.
type Buffer interface {
	// Bytes returns the mutable backing slice. Nil after Release.
	Bytes() []byte

	// Len reports the buffer length in bytes.
	Len() int

	// CopyWithin relocates count bytes from offset src to offset dest,
	// memmove-style: the windows may overlap in either direction.
	// Fails without writing on any bounds violation or after Release.
	CopyWithin(src, dest, count int) error

	// CopyInPlace is CopyWithin with the source given as a Range.
	CopyInPlace(r Range, dest int) error

	// Release returns the buffer to its pool. After Release the buffer
	// must not be used; further operations report ErrBufferReleased.
	Release()
}

// BufferPool abstracts slab-backed buffer management.
type BufferPool interface {
	// Get returns an exclusively-owned buffer of exactly `size` bytes.
	Get(size int) Buffer

	// Put returns buffer to pool; equivalent to buffer.Release().
	Put(b Buffer)

	// Stats exposes allocation accounting for observability.
	Stats() BufferPoolStats
}

// BufferPoolStats aggregates buffer allocation/reuse stats.
type BufferPoolStats struct {
	TotalAlloc int64
	TotalFree  int64
	InUse      int64
}
