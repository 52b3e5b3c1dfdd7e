// File: buffer/mapped.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buffer

import (
	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/internal/arena"
)

// MappedByteBuffer is a byte double buffer whose two planes are carved from
// one page-backed arena region, keeping bulk sample frames off the Go heap
// on platforms with mmap support. Same role contract as DoubleBuffer.
type MappedByteBuffer struct {
	region *arena.Region
	planes [2][]byte
	write  uint32
}

// NewMappedByteBuffer maps a region of 2*n bytes and splits it into two
// planes of n bytes each.
func NewMappedByteBuffer(n int) (*MappedByteBuffer, error) {
	if n <= 0 {
		return nil, api.ErrInvalidArgument
	}
	region, err := arena.New(2 * n)
	if err != nil {
		return nil, err
	}
	raw := region.Bytes()
	return &MappedByteBuffer{
		region: region,
		planes: [2][]byte{raw[:n:n], raw[n : 2*n : 2*n]},
	}, nil
}

// WriteView returns the write-role plane.
func (b *MappedByteBuffer) WriteView() []byte { return b.planes[b.write] }

// ReadView returns the read-role plane.
func (b *MappedByteBuffer) ReadView() []byte { return b.planes[b.write^1] }

// Commit exchanges the two roles in O(1).
func (b *MappedByteBuffer) Commit() { b.write ^= 1 }

// Size returns the fixed plane length in bytes.
func (b *MappedByteBuffer) Size() int { return len(b.planes[0]) }

// Close unmaps the backing region. Both views become invalid.
func (b *MappedByteBuffer) Close() error {
	if b.region == nil {
		return api.ErrClosed
	}
	err := b.region.Close()
	b.region = nil
	b.planes[0], b.planes[1] = nil, nil
	return err
}

var _ api.SwapBuffer[byte] = (*MappedByteBuffer)(nil)
