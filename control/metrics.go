// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for pipeline-level monitoring.
// Pools and buffers register snapshot probes; consumers pull a coherent
// view on demand. Thread-safe with dynamic registration.

package control

import (
	"sync"
	"time"
)

// MetricsRegistry holds named probes evaluated at snapshot time.
type MetricsRegistry struct {
	mu      sync.RWMutex
	probes  map[string]func() any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe sets or replaces a probe under key.
func (mr *MetricsRegistry) RegisterProbe(key string, fn func() any) {
	mr.mu.Lock()
	mr.probes[key] = fn
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Unregister removes a probe.
func (mr *MetricsRegistry) Unregister(key string) {
	mr.mu.Lock()
	delete(mr.probes, key)
	mr.mu.Unlock()
}

// GetSnapshot evaluates every probe and returns the results.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.probes))
	for k, fn := range mr.probes {
		out[k] = fn()
	}
	return out
}
