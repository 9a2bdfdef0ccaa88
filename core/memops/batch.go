// File: core/memops/batch.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Batch accumulates in-place copy operations for atomic validation.
// Designed for single-goroutine use; no locks for minimal overhead.

package memops

import "github.com/momentics/hioload-mem/api"

// CopyOp is one pending in-place copy: the source range and the offset the
// selected elements will be written to.
type CopyOp struct {
	Src  api.Range
	Dest int
}

// Batch holds a sequence of copy operations to apply to one slice.
type Batch struct {
	ops []CopyOp
}

// NewBatch creates a batch with initial capacity `cap`.
func NewBatch(cap int) *Batch {
	return &Batch{ops: make([]CopyOp, 0, cap)}
}

// Append adds `op` to the batch.
func (b *Batch) Append(op CopyOp) {
	b.ops = append(b.ops, op)
}

// Len reports current batch size.
func (b *Batch) Len() int {
	return len(b.ops)
}

// Ops returns the raw op slice.
func (b *Batch) Ops() []CopyOp {
	return b.ops
}

// Reset clears the batch but retains capacity.
func (b *Batch) Reset() {
	b.ops = b.ops[:0]
}

// resolvedOp is a CopyOp normalized and bounds-checked against one length.
type resolvedOp struct {
	src, dest, count int
}

// TryApplyBatch validates every operation in b against s, then applies them
// in append order. If any operation is invalid the whole batch is rejected
// and s is untouched. Operations apply sequentially: each sees the writes of
// the ones before it.
func TryApplyBatch[T any](b *Batch, s []T) error {
	resolved := make([]resolvedOp, 0, len(b.ops))
	n := len(s)
	for _, op := range b.ops {
		start, end, err := op.Src.Normalize(n)
		if err != nil {
			return err
		}
		if start > end {
			return api.NewError(api.ErrCodeInvertedRange, api.ErrInvertedRange.Error()).
				WithContext("start", start).
				WithContext("end", end)
		}
		if start < 0 || end > n {
			return api.NewError(api.ErrCodeSourceOutOfBounds, api.ErrSourceOutOfBounds.Error()).
				WithContext("start", start).
				WithContext("end", end).
				WithContext("len", n)
		}
		count := end - start
		if op.Dest < 0 || op.Dest > n-count {
			return api.NewError(api.ErrCodeDestOutOfBounds, api.ErrDestOutOfBounds.Error()).
				WithContext("dest", op.Dest).
				WithContext("count", count).
				WithContext("len", n)
		}
		resolved = append(resolved, resolvedOp{src: start, dest: op.Dest, count: count})
	}
	for _, r := range resolved {
		copy(s[r.dest:r.dest+r.count], s[r.src:r.src+r.count])
	}
	return nil
}

// ApplyBatch is TryApplyBatch with the abort contract.
func ApplyBatch[T any](b *Batch, s []T) {
	if err := TryApplyBatch(b, s); err != nil {
		panic(err)
	}
}
