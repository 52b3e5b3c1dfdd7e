// File: buffer/doublebuffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package buffer implements role-swapping bulk buffers for phase-alternating
// producer/consumer pipelines. Two equally sized planes hold the data; a
// commit exchanges their roles in O(1) without touching contents.
package buffer

import "github.com/momentics/hioload-mem/api"

// DoubleBuffer holds two planes of n elements. One plane carries the write
// role, the other the read role; Commit exchanges the roles.
//
// The buffer provides no synchronization. Commit must happen at a phase
// barrier: producer done writing, consumer done reading. A view retained
// across Commit refers to the other role's plane.
type DoubleBuffer[T any] struct {
	planes [2][]T
	write  uint32 // read role is write ^ 1
}

// NewDoubleBuffer allocates both planes once; they are never resized.
// Initial roles: plane 0 writes, plane 1 reads.
func NewDoubleBuffer[T any](n int) *DoubleBuffer[T] {
	if n <= 0 {
		panic("double buffer size must be positive")
	}
	return &DoubleBuffer[T]{
		planes: [2][]T{make([]T, n), make([]T, n)},
	}
}

// WriteView returns the write-role plane. The caller may read and write it
// freely until the next Commit.
func (b *DoubleBuffer[T]) WriteView() []T { return b.planes[b.write] }

// ReadView returns the read-role plane: the data committed most recently.
// Contents are undefined before the first Commit.
func (b *DoubleBuffer[T]) ReadView() []T { return b.planes[b.write^1] }

// Commit exchanges the two roles. A single index store; both views flip
// together and no element is moved or copied.
func (b *DoubleBuffer[T]) Commit() { b.write ^= 1 }

// Size returns the fixed element count of each plane.
func (b *DoubleBuffer[T]) Size() int { return len(b.planes[0]) }

var _ api.SwapBuffer[any] = (*DoubleBuffer[any])(nil)
