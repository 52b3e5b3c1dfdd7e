// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// bytepool_test.go — Block carving, exhaustion and release validation for
// the fixed byte slab pool.
package pool_test

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/pool"
)

func TestFixedBytePool_CarveAndExhaust(t *testing.T) {
	p, err := pool.NewFixedBytePool(4, 256)
	if err != nil {
		t.Fatalf("NewFixedBytePool: %v", err)
	}
	defer p.Close()

	blocks := make([][]byte, 0, 4)
	for i := 0; i < 4; i++ {
		b, err := p.Acquire()
		if err != nil {
			t.Fatalf("Acquire %d: %v", i, err)
		}
		if len(b) != 256 {
			t.Fatalf("Block %d has length %d, expected 256", i, len(b))
		}
		blocks = append(blocks, b)
	}
	if _, err := p.Acquire(); !errors.Is(err, api.ErrPoolExhausted) {
		t.Fatalf("Expected exhaustion, got %v", err)
	}

	if err := p.Release(blocks[2]); err != nil {
		t.Fatalf("Release: %v", err)
	}
	b, err := p.Acquire()
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	if &b[0] != &blocks[2][0] {
		t.Error("Expected freed block storage to be reused")
	}
}

func TestFixedBytePool_RecycledBlocksZeroed(t *testing.T) {
	p, err := pool.NewFixedBytePool(2, 64)
	if err != nil {
		t.Fatalf("NewFixedBytePool: %v", err)
	}
	defer p.Close()

	b, _ := p.Acquire()
	b[0], b[63] = 0xFF, 0xFF
	if err := p.Release(b); err != nil {
		t.Fatalf("Release: %v", err)
	}
	b2, _ := p.Acquire()
	for i, v := range b2 {
		if v != 0 {
			t.Fatalf("Recycled block dirty at %d: %#x", i, v)
		}
	}
}

func TestFixedBytePool_ReleaseValidation(t *testing.T) {
	p, err := pool.NewFixedBytePool(2, 128)
	if err != nil {
		t.Fatalf("NewFixedBytePool: %v", err)
	}
	defer p.Close()

	b, _ := p.Acquire()
	if err := p.Release(b); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := p.Release(b); !errors.Is(err, api.ErrHandleNotLive) {
		t.Errorf("Expected ErrHandleNotLive on double release, got %v", err)
	}
	foreign := make([]byte, 128)
	if err := p.Release(foreign); !errors.Is(err, api.ErrForeignHandle) {
		t.Errorf("Expected ErrForeignHandle, got %v", err)
	}
	b2, _ := p.Acquire()
	if err := p.Release(b2[:64]); !errors.Is(err, api.ErrForeignHandle) {
		t.Errorf("Expected ErrForeignHandle for truncated block, got %v", err)
	}
}

// TestFixedBytePool_StructuredErrors checks release violations report a
// code and context and still match the sentinels.
func TestFixedBytePool_StructuredErrors(t *testing.T) {
	p, err := pool.NewFixedBytePool(2, 128)
	if err != nil {
		t.Fatalf("NewFixedBytePool: %v", err)
	}
	defer p.Close()

	b, _ := p.Acquire()
	var apiErr *api.Error
	err = p.Release(b[:64])
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *api.Error, got %T", err)
	}
	if apiErr.Code != api.ErrCodeForeign || apiErr.Context["len"] != 64 {
		t.Errorf("Unexpected foreign error: code=%v context=%+v", apiErr.Code, apiErr.Context)
	}

	if err := p.Release(b); err != nil {
		t.Fatalf("Release: %v", err)
	}
	err = p.Release(b)
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *api.Error, got %T", err)
	}
	if apiErr.Code != api.ErrCodeNotLive || apiErr.Context["block"] != 0 {
		t.Errorf("Unexpected double-release error: code=%v context=%+v", apiErr.Code, apiErr.Context)
	}
	if !errors.Is(err, api.ErrHandleNotLive) {
		t.Error("Structured error must unwrap to its sentinel")
	}
}

func TestFixedBytePool_Close(t *testing.T) {
	p, err := pool.NewFixedBytePool(2, 32)
	if err != nil {
		t.Fatalf("NewFixedBytePool: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := p.Close(); !errors.Is(err, api.ErrClosed) {
		t.Errorf("Expected ErrClosed on second close, got %v", err)
	}
	if _, err := p.Acquire(); !errors.Is(err, api.ErrClosed) {
		t.Errorf("Expected ErrClosed on acquire after close, got %v", err)
	}
}

func TestFixedBytePool_InvalidArguments(t *testing.T) {
	if _, err := pool.NewFixedBytePool(0, 32); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for zero blocks, got %v", err)
	}
	if _, err := pool.NewFixedBytePool(4, 0); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for zero block size, got %v", err)
	}
}
