// File: pool/freering.go
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity FIFO of free block indices. Single-flow, like the pools
// it serves; no atomics, no allocation after construction.

package pool

type indexRing struct {
	slots []int32
	head  int
	tail  int
	count int
}

func newIndexRing(capacity int) *indexRing {
	return &indexRing{slots: make([]int32, capacity)}
}

// push adds an index; returns false if full.
func (r *indexRing) push(idx int32) bool {
	if r.count == len(r.slots) {
		return false
	}
	r.slots[r.tail] = idx
	r.tail++
	if r.tail == len(r.slots) {
		r.tail = 0
	}
	r.count++
	return true
}

// pop removes the oldest index; ok is false if empty.
func (r *indexRing) pop() (idx int32, ok bool) {
	if r.count == 0 {
		return 0, false
	}
	idx = r.slots[r.head]
	r.head++
	if r.head == len(r.slots) {
		r.head = 0
	}
	r.count--
	return idx, true
}

func (r *indexRing) len() int { return r.count }
