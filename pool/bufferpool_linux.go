// File: pool/bufferpool_linux.go
//go:build linux

//
// Package pool: Linux-specific slab allocation using hugepages.
//
// Slabs are allocated via mmap, preferring MAP_HUGETLB and falling back to
// regular anonymous pages, then to the Go heap if mmap fails entirely.
// Heap slabs are never munmapped.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "golang.org/x/sys/unix"

// slabAlloc maps or allocates a slab of exactly `sz` bytes.
func slabAlloc(sz int) *slab {
	flags := unix.MAP_ANONYMOUS | unix.MAP_PRIVATE
	data, err := unix.Mmap(-1, 0, sz, unix.PROT_READ|unix.PROT_WRITE, flags|unix.MAP_HUGETLB)
	if err != nil {
		data, err = unix.Mmap(-1, 0, sz, unix.PROT_READ|unix.PROT_WRITE, flags)
	}
	if err != nil {
		return &slab{data: make([]byte, sz)}
	}
	return &slab{data: data, mapped: true}
}

// slabRelease returns mapped memory to the OS.
func slabRelease(sl *slab) {
	if sl.mapped {
		_ = unix.Munmap(sl.data)
	}
}
