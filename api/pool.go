// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Abstract pooling contracts: fixed-capacity allocators for object and
// byte-block reuse. All implementations are bounded at construction and
// perform no allocation on the acquire/release path.

package api

// SlotPool is the discrete-object pool contract. H is the handle type an
// implementation hands out; a handle stays valid from Acquire until the
// matching Release.
type SlotPool[T any, H any] interface {
	// Acquire returns a handle to a fresh slot, or ErrPoolExhausted when
	// no free slot remains.
	Acquire() (H, error)

	// Release returns a live slot to the pool. Double release or a handle
	// from another pool is reported as an error.
	Release(handle H) error

	// Len returns the number of live slots.
	Len() int

	// Cap returns the fixed capacity.
	Cap() int

	// Stats exposes acquire/release accounting.
	Stats() PoolStats
}

// BytePool hands out fixed-size byte blocks carved from a preallocated
// region. Exhaustion is a recoverable, return-level condition.
type BytePool interface {
	// Acquire returns a free block, or ErrPoolExhausted when none remain.
	Acquire() ([]byte, error)

	// Release returns a block to the pool. The block must have been
	// obtained from this pool and must not be used afterwards.
	Release(block []byte) error

	// Stats exposes allocation accounting for observability.
	Stats() PoolStats
}

// PoolStats aggregates acquire/release accounting for a fixed pool.
type PoolStats struct {
	Capacity  int64
	Live      int64
	Acquired  int64
	Released  int64
	Exhausted int64
}
