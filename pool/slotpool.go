// File: pool/slotpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"math"

	"github.com/momentics/hioload-mem/api"
)

// SlotPool manages up to N discrete objects of type T with O(1) acquire and
// release and no allocation after construction. Free slots are chained
// through a separate index array, never through live object storage, so the
// free-list linkage cannot alias object bytes regardless of T's layout.
//
// The pool is single-flow: acquire/release are not safe for concurrent use
// from multiple goroutines without an external lock.
type SlotPool[T any] struct {
	slots []T
	next  []int32
	live  []bool
	head  int32 // first free slot; len(slots) means exhausted

	liveCount int64
	acquired  int64
	released  int64
	exhausted int64
}

// Handle is a caller-held reference to a live slot, valid from Acquire
// until the matching Release. The zero Handle belongs to no pool.
type Handle[T any] struct {
	pool *SlotPool[T]
	idx  int32
}

// Value returns the slot object. Valid only while the handle is live.
func (h Handle[T]) Value() *T {
	if h.pool == nil {
		return nil
	}
	return &h.pool.slots[h.idx]
}

// Index returns the slot index within the pool.
func (h Handle[T]) Index() int { return int(h.idx) }

// NewSlotPool creates a pool of exactly capacity slots. All storage is
// allocated here; acquire and release never allocate.
func NewSlotPool[T any](capacity int) *SlotPool[T] {
	if capacity <= 0 || capacity > math.MaxInt32 {
		panic("slot pool capacity must be in [1, MaxInt32]")
	}
	p := &SlotPool[T]{
		slots: make([]T, capacity),
		next:  make([]int32, capacity),
		live:  make([]bool, capacity),
	}
	for i := 0; i < capacity-1; i++ {
		p.next[i] = int32(i + 1)
	}
	p.next[capacity-1] = int32(capacity) // sentinel
	return p
}

// Acquire pops the free-list head and returns a handle to a zeroed slot.
// Returns api.ErrPoolExhausted when no free slot remains; never blocks.
func (p *SlotPool[T]) Acquire() (Handle[T], error) {
	if p.head == int32(len(p.slots)) {
		p.exhausted++
		return Handle[T]{}, api.ErrPoolExhausted
	}
	idx := p.head
	p.head = p.next[idx]

	var zero T
	p.slots[idx] = zero
	p.live[idx] = true
	p.liveCount++
	p.acquired++
	return Handle[T]{pool: p, idx: idx}, nil
}

// Release returns a live slot to the free list. Releasing a handle from
// another pool or a slot that is not live is a contract violation; it is
// reported as an error and leaves the free list untouched.
func (p *SlotPool[T]) Release(h Handle[T]) error {
	if h.pool != p {
		return api.NewError(api.ErrCodeForeign, "handle does not belong to this pool").
			WithContext("slot", h.Index())
	}
	if !p.live[h.idx] {
		return api.NewError(api.ErrCodeNotLive, "slot already released").
			WithContext("slot", h.Index())
	}

	var zero T
	p.slots[h.idx] = zero // drop any references held by the object
	p.live[h.idx] = false
	p.next[h.idx] = p.head
	p.head = h.idx
	p.liveCount--
	p.released++
	return nil
}

// Len returns the number of live slots.
func (p *SlotPool[T]) Len() int { return int(p.liveCount) }

// Cap returns the fixed pool capacity.
func (p *SlotPool[T]) Cap() int { return len(p.slots) }

// Stats exposes acquire/release accounting.
func (p *SlotPool[T]) Stats() api.PoolStats {
	return api.PoolStats{
		Capacity:  int64(len(p.slots)),
		Live:      p.liveCount,
		Acquired:  p.acquired,
		Released:  p.released,
		Exhausted: p.exhausted,
	}
}

var _ api.SlotPool[int, Handle[int]] = (*SlotPool[int])(nil)
