// File: pool/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Thread-safe allocation accounting for slab pools.
// Counters live behind an RWMutex; Snapshot returns a consistent copy.

package pool

import (
	"sync"
	"time"

	"github.com/momentics/hioload-mem/api"
)

// statsCollector tracks checkout/release counters for one class pool.
type statsCollector struct {
	mu      sync.RWMutex
	alloc   int64
	free    int64
	inUse   int64
	updated time.Time
}

func newStatsCollector() *statsCollector {
	return &statsCollector{}
}

// onGet records a buffer checkout.
func (c *statsCollector) onGet() {
	c.mu.Lock()
	c.alloc++
	c.inUse++
	c.updated = time.Now()
	c.mu.Unlock()
}

// onPut records a buffer release.
func (c *statsCollector) onPut() {
	c.mu.Lock()
	c.free++
	c.inUse--
	c.updated = time.Now()
	c.mu.Unlock()
}

// Snapshot returns the latest counters.
func (c *statsCollector) Snapshot() api.BufferPoolStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return api.BufferPoolStats{
		TotalAlloc: c.alloc,
		TotalFree:  c.free,
		InUse:      c.inUse,
	}
}
