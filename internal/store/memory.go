// internal/store/memory.go
//
// In-memory implementation of the Blob interface.
// Used in tests and when the server runs without a database path.
// State is lost when the process restarts.

package store

import (
	"context"
	"sync"
)

// memory is a map-based Blob implementation.
type memory struct {
	mu    sync.RWMutex      // guards blobs map
	blobs map[string]string // keyed by blob key
}

// NewMemory constructs a new in-memory Blob store.
func NewMemory() Blob {
	return &memory{blobs: make(map[string]string)}
}

// Get looks up the value under key.
func (m *memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.blobs[key]
	return v, ok, nil
}

// Set adds or replaces the value under key.
func (m *memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = value
	return nil
}
