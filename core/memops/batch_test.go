// File: core/memops/batch_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package memops_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/core/memops"
)

func TestBatchAppliesInOrder(t *testing.T) {
	array := []byte("Hello, World!")
	b := memops.NewBatch(2)
	b.Append(memops.CopyOp{Src: api.Span(1, 5), Dest: 8})
	b.Append(memops.CopyOp{Src: api.Span(8, 12), Dest: 2})
	if b.Len() != 2 {
		t.Fatalf("len = %d", b.Len())
	}
	if err := memops.TryApplyBatch(b, array); err != nil {
		t.Fatal(err)
	}
	// Second op reads the first op's writes.
	if !bytes.Equal(array, []byte("Heello Wello!")) {
		t.Fatalf("got %q", array)
	}
}

func TestBatchRejectsWholeBatchUntouched(t *testing.T) {
	array := []byte("Hello, World!")
	snapshot := append([]byte(nil), array...)
	b := memops.NewBatch(2)
	b.Append(memops.CopyOp{Src: api.Span(1, 5), Dest: 8})
	b.Append(memops.CopyOp{Src: api.Span(1, 5), Dest: 10}) // invalid
	err := memops.TryApplyBatch(b, array)
	if !errors.Is(err, api.ErrDestOutOfBounds) {
		t.Fatalf("got %v, want dest out of bounds", err)
	}
	if !bytes.Equal(array, snapshot) {
		t.Errorf("buffer mutated on rejected batch: %q", array)
	}
}

func TestBatchReset(t *testing.T) {
	b := memops.NewBatch(4)
	b.Append(memops.CopyOp{Src: api.Full(), Dest: 0})
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("len after reset = %d", b.Len())
	}
	array := []byte("abc")
	if err := memops.TryApplyBatch(b, array); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(array, []byte("abc")) {
		t.Fatalf("empty batch mutated buffer: %q", array)
	}
}

func TestApplyBatchPanicsOnInvalidOp(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	b := memops.NewBatch(1)
	b.Append(memops.CopyOp{Src: api.Span(5, 1), Dest: 0})
	memops.ApplyBatch(b, []byte("Hello, World!"))
}
