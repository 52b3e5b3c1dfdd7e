//go:build !linux && !darwin
// +build !linux,!darwin

// File: internal/arena/arena_stub.go
// Author: momentics <momentics@gmail.com>
//
// Heap-backed fallback for platforms without mmap support.

package arena

func alloc(size int) (*Region, error) {
	return &Region{data: make([]byte, size)}, nil
}

func (r *Region) free() error { return nil }
