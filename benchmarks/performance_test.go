// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for hioload-mem components.

package benchmarks

import (
	"testing"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/core/memops"
	"github.com/momentics/hioload-mem/pool"
)

// BenchmarkCopyWithinDisjoint measures the non-overlapping fast case.
func BenchmarkCopyWithinDisjoint(b *testing.B) {
	buf := make([]byte, 64*1024)
	b.SetBytes(16 * 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		memops.CopyWithin(buf, 0, 32*1024, 16*1024)
	}
}

// BenchmarkCopyWithinOverlapForward overlaps with dest above src.
func BenchmarkCopyWithinOverlapForward(b *testing.B) {
	buf := make([]byte, 64*1024)
	b.SetBytes(32 * 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		memops.CopyWithin(buf, 0, 8*1024, 32*1024)
	}
}

// BenchmarkCopyWithinOverlapBackward overlaps with dest below src.
func BenchmarkCopyWithinOverlapBackward(b *testing.B) {
	buf := make([]byte, 64*1024)
	b.SetBytes(32 * 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		memops.CopyWithin(buf, 8*1024, 0, 32*1024)
	}
}

// BenchmarkCopyInPlaceRangeSugar measures the range normalization overhead.
func BenchmarkCopyInPlaceRangeSugar(b *testing.B) {
	buf := make([]byte, 64*1024)
	r := api.Span(0, 32*1024)
	b.SetBytes(32 * 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		memops.CopyInPlace(buf, r, 8*1024)
	}
}

// BenchmarkBufferPoolAllocation tests buffer pool checkout performance.
func BenchmarkBufferPoolAllocation(b *testing.B) {
	manager := pool.NewBufferPoolManager()
	defer manager.Close()
	bufferPool := manager.GetPool(4096)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buffer := bufferPool.Get(4096)
			buffer.Release()
		}
	})
}

// BenchmarkPooledBufferCopy tests copy throughput through a pooled buffer.
func BenchmarkPooledBufferCopy(b *testing.B) {
	manager := pool.NewBufferPoolManager()
	defer manager.Close()
	buffer := manager.GetPool(64 * 1024).Get(64 * 1024)
	defer buffer.Release()

	b.SetBytes(16 * 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := buffer.CopyWithin(0, 32*1024, 16*1024); err != nil {
			b.Fatal(err)
		}
	}
}
