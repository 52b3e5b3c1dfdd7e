// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity memory pooling for real-time pipelines.
// Implements a slot pool for discrete short-lived objects (free-list over a
// separate index array, O(1) acquire/release, no allocation after
// construction) and a byte slab pool carving fixed blocks from a single
// arena region. Exhaustion is always a return-level signal, never a block.
// See slotpool.go and bytepool.go for implementation details.
package pool
