// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"unsafe"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/internal/arena"
)

// FixedBytePool carves a single arena region into blocks of blockSize
// bytes each and hands them out in O(1). It never grows: when all
// blocks are live, Acquire reports exhaustion.
//
// Single-flow, like SlotPool. Wrap externally for concurrent use.
type FixedBytePool struct {
	region    *arena.Region
	base      uintptr
	blockSize int
	free      *indexRing
	live      []bool

	acquired  int64
	released  int64
	exhausted int64
}

// NewFixedBytePool allocates blocks*blockSize bytes up front.
func NewFixedBytePool(blocks, blockSize int) (*FixedBytePool, error) {
	if blocks <= 0 || blockSize <= 0 {
		return nil, api.ErrInvalidArgument
	}
	region, err := arena.New(blocks * blockSize)
	if err != nil {
		return nil, err
	}
	p := &FixedBytePool{
		region:    region,
		base:      uintptr(unsafe.Pointer(&region.Bytes()[0])),
		blockSize: blockSize,
		free:      newIndexRing(blocks),
		live:      make([]bool, blocks),
	}
	for i := 0; i < blocks; i++ {
		p.free.push(int32(i))
	}
	return p, nil
}

// Acquire returns a zeroed block, or api.ErrPoolExhausted when all blocks
// are live. Never blocks, never allocates.
func (p *FixedBytePool) Acquire() ([]byte, error) {
	if p.region == nil {
		return nil, api.ErrClosed
	}
	idx, ok := p.free.pop()
	if !ok {
		p.exhausted++
		return nil, api.ErrPoolExhausted
	}
	off := int(idx) * p.blockSize
	block := p.region.Bytes()[off : off+p.blockSize : off+p.blockSize]
	for i := range block {
		block[i] = 0
	}
	p.live[idx] = true
	p.acquired++
	return block, nil
}

// Release returns a block to the pool. The block must be exactly as
// returned by Acquire on this pool; anything else is reported as an error
// and the free ring stays untouched.
func (p *FixedBytePool) Release(block []byte) error {
	if p.region == nil {
		return api.ErrClosed
	}
	idx, err := p.blockIndex(block)
	if err != nil {
		return err
	}
	if !p.live[idx] {
		return api.NewError(api.ErrCodeNotLive, "block already released").
			WithContext("block", int(idx))
	}
	p.live[idx] = false
	p.free.push(idx)
	p.released++
	return nil
}

func (p *FixedBytePool) blockIndex(block []byte) (int32, error) {
	if len(block) != p.blockSize {
		return 0, api.NewError(api.ErrCodeForeign, "block length mismatch").
			WithContext("len", len(block))
	}
	off := uintptr(unsafe.Pointer(&block[0])) - p.base
	if off >= uintptr(p.region.Size()) || int(off)%p.blockSize != 0 {
		return 0, api.NewError(api.ErrCodeForeign, "block not carved from this pool")
	}
	return int32(int(off) / p.blockSize), nil
}

// Len returns the number of live blocks.
func (p *FixedBytePool) Len() int { return len(p.live) - p.free.len() }

// Cap returns the fixed block count.
func (p *FixedBytePool) Cap() int { return len(p.live) }

// BlockSize returns the size of every block in bytes.
func (p *FixedBytePool) BlockSize() int { return p.blockSize }

// Stats exposes allocation accounting.
func (p *FixedBytePool) Stats() api.PoolStats {
	return api.PoolStats{
		Capacity:  int64(len(p.live)),
		Live:      int64(p.Len()),
		Acquired:  p.acquired,
		Released:  p.released,
		Exhausted: p.exhausted,
	}
}

// Close releases the backing region. All blocks become invalid.
func (p *FixedBytePool) Close() error {
	if p.region == nil {
		return api.ErrClosed
	}
	err := p.region.Close()
	p.region = nil
	return err
}

var _ api.BytePool = (*FixedBytePool)(nil)
