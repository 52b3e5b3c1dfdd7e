// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

package arena_test

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-mem/api"
	"github.com/momentics/hioload-mem/internal/arena"
)

func TestRegion_AllocWriteFree(t *testing.T) {
	r, err := arena.New(8192)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b := r.Bytes()
	if len(b) != 8192 || r.Size() != 8192 {
		t.Fatalf("Region size %d, expected 8192", len(b))
	}
	b[0], b[8191] = 0xDE, 0xAD
	if b[0] != 0xDE || b[8191] != 0xAD {
		t.Error("Region not writable across its full extent")
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := r.Close(); !errors.Is(err, api.ErrClosed) {
		t.Errorf("Expected ErrClosed on double close, got %v", err)
	}
}

func TestRegion_InvalidSize(t *testing.T) {
	if _, err := arena.New(0); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
	if _, err := arena.New(-4); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
}
