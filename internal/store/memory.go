// internal/store/memory.go
//
// In-memory implementation of Store.
// Used when no database path is configured, and in tests.
//
// Characteristics:
//   - Records are copied on the way in and out; callers never share them.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"
)

type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Record
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Record)}
}

func (m *memory) Save(ctx context.Context, r *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[r.ID] = clone(r)
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.sessions[id]; ok {
		return clone(r), nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Close() error { return nil }
