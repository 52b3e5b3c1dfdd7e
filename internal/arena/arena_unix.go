//go:build linux || darwin
// +build linux darwin

// File: internal/arena/arena_unix.go
// Author: momentics <momentics@gmail.com>
//
// Anonymous private mappings keep bulk frame storage off the GC heap.

package arena

import "golang.org/x/sys/unix"

func alloc(size int) (*Region, error) {
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return &Region{data: data, mapped: true}, nil
}

func (r *Region) free() error {
	if !r.mapped {
		return nil
	}
	return unix.Munmap(r.data)
}
