package session

import (
	"context"
	"sync"

	"pos-console/internal/domain"
)

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemory returns an in-process Store. Sessions do not survive a
// restart; meant for tests and for running without Redis.
func NewMemory() Store {
	return &memoryStore{sessions: make(map[string]Session)}
}

func (m *memoryStore) Put(_ context.Context, id string, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = s
	return nil
}

func (m *memoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memoryStore) Ping(_ context.Context) error {
	return nil
}
