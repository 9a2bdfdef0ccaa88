// File: pool/bufferpool.go
// Package pool implements size-classed slab pooling of exclusively-owned
// buffers with overlap-safe in-place copy.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/core/memops"
)

// Predefined (power-of-two) buffer size classes (bytes)
// This table can be tuned for deployment needs.
var sizeClasses = [...]int{
	2 * 1024,        // 2K
	4 * 1024,        // 4K
	8 * 1024,        // 8K
	16 * 1024,       // 16K
	32 * 1024,       // 32K
	64 * 1024,       // 64K
	128 * 1024,      // 128K
	256 * 1024,      // 256K
	512 * 1024,      // 512K
	1 * 1024 * 1024, // 1M
}

// sizeClassUpperBound returns the smallest class >= requested size.
func sizeClassUpperBound(size int) int {
	for _, c := range sizeClasses {
		if size <= c {
			return c
		}
	}
	return sizeClasses[len(sizeClasses)-1] // fallback: biggest class
}

// slab is one class-sized backing region. mapped distinguishes mmap-backed
// regions, which must be munmapped on drain, from heap fallbacks.
type slab struct {
	data   []byte
	mapped bool
}

// BufferPoolManager manages all size-classed pools.
type BufferPoolManager struct {
	mu    sync.RWMutex
	class map[int]*slabPool // maps size class -> slab pool
}

// NewBufferPoolManager initializes the manager with empty class pools.
func NewBufferPoolManager() *BufferPoolManager {
	return &BufferPoolManager{class: make(map[int]*slabPool)}
}

// GetPool returns the BufferPool for the requested buffer size, routing all
// requests for sizes within a given class to the corresponding pool.
func (m *BufferPoolManager) GetPool(size int) api.BufferPool {
	clz := sizeClassUpperBound(size)
	m.mu.RLock()
	pool, ok := m.class[clz]
	m.mu.RUnlock()
	if ok {
		return pool
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if pool, ok = m.class[clz]; ok {
		return pool
	}
	npool := newSlabPool(clz)
	m.class[clz] = npool
	return npool
}

// Close drains every class pool's free list and returns mapped slabs to the
// OS. Buffers still checked out keep their memory; releasing them afterwards
// re-queues into the drained pools, which stay usable.
func (m *BufferPoolManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.class {
		p.drain()
	}
}

// slabPool recycles slabs of one size class through a FIFO free list.
type slabPool struct {
	size  int
	mu    sync.Mutex
	free  *queue.Queue // of *slab
	stats *statsCollector
}

func newSlabPool(size int) *slabPool {
	return &slabPool{
		size:  size,
		free:  queue.New(),
		stats: newStatsCollector(),
	}
}

// Get returns an exclusively-owned buffer of exactly `size` bytes, reusing a
// free slab when one is queued and allocating otherwise. Requests larger
// than the class get a dedicated exact-size slab that bypasses the free
// list, so the caller always receives the full requested length.
func (p *slabPool) Get(size int) api.Buffer {
	if size < 0 {
		size = 0
	}
	if size > p.size {
		sl := slabAlloc(size)
		p.stats.onGet()
		return &Buffer{data: sl.data[:size], slab: sl, pool: p, used: true}
	}
	p.mu.Lock()
	var sl *slab
	if p.free.Length() > 0 {
		sl = p.free.Remove().(*slab)
	} else {
		sl = slabAlloc(p.size)
	}
	p.mu.Unlock()
	p.stats.onGet()
	return &Buffer{data: sl.data[:size], slab: sl, pool: p, used: true}
}

// Put returns buffer to pool; buffer must not be used afterwards.
func (p *slabPool) Put(b api.Buffer) {
	b.Release()
}

// Stats exposes allocation accounting for this class pool.
func (p *slabPool) Stats() api.BufferPoolStats {
	return p.stats.Snapshot()
}

// put re-queues a slab after its buffer was released. Oversize slabs never
// match the class size and go back to the OS instead of the free list.
func (p *slabPool) put(sl *slab) {
	if len(sl.data) != p.size {
		slabRelease(sl)
		p.stats.onPut()
		return
	}
	p.mu.Lock()
	p.free.Add(sl)
	p.mu.Unlock()
	p.stats.onPut()
}

// drain empties the free list, returning mapped slabs to the OS.
func (p *slabPool) drain() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.free.Length() > 0 {
		slabRelease(p.free.Remove().(*slab))
	}
}

// Buffer implements api.Buffer over one checked-out slab.
//
// The used flag realizes the exclusive-ownership contract at runtime: after
// Release every method is disabled, with operations reporting
// ErrBufferReleased and Bytes returning nil. A slice obtained from Bytes
// before Release still aliases the slab, so such slices must not outlive
// the checkout.
type Buffer struct {
	mu   sync.Mutex
	data []byte
	slab *slab
	pool *slabPool
	used bool
}

// Bytes returns the mutable backing slice, nil after Release.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.used {
		return nil
	}
	return b.data
}

// Len reports the buffer length in bytes, 0 after Release.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.used {
		return 0
	}
	return len(b.data)
}

// CopyWithin relocates count bytes from offset src to offset dest within
// the buffer, overlap-safe. No write occurs on any failure.
func (b *Buffer) CopyWithin(src, dest, count int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.used {
		return api.NewError(api.ErrCodeBufferReleased, api.ErrBufferReleased.Error())
	}
	return memops.TryCopyWithin(b.data, src, dest, count)
}

// CopyInPlace is CopyWithin with the source given as a Range.
func (b *Buffer) CopyInPlace(r api.Range, dest int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.used {
		return api.NewError(api.ErrCodeBufferReleased, api.ErrBufferReleased.Error())
	}
	return memops.TryCopyInPlace(b.data, r, dest)
}

// Release returns the slab to the pool. Double release is a no-op.
func (b *Buffer) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.used {
		return
	}
	b.used = false
	b.data = nil
	b.pool.put(b.slab)
	b.slab = nil
}
