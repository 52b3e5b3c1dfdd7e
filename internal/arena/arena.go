// File: internal/arena/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Page-backed memory regions for bulk sample and slab storage.
// On platforms with mmap support the region lives outside the Go heap;
// elsewhere a plain slice is used with identical semantics.

package arena

import "github.com/momentics/hioload-mem/api"

// Region is a contiguous byte region with explicit lifetime.
type Region struct {
	data   []byte
	mapped bool
}

// New allocates a region of exactly size bytes.
func New(size int) (*Region, error) {
	if size <= 0 {
		return nil, api.ErrInvalidArgument
	}
	return alloc(size)
}

// Bytes returns the backing storage. Valid until Close.
func (r *Region) Bytes() []byte { return r.data }

// Size returns the region length in bytes.
func (r *Region) Size() int { return len(r.data) }

// Close releases the region. The storage must not be used afterwards.
func (r *Region) Close() error {
	if r.data == nil {
		return api.ErrClosed
	}
	err := r.free()
	r.data = nil
	return err
}
