package state

import (
	"context"
	"sync"
)

// MemoryBackend keeps sessions in process memory. Used by tests and by
// DSN-less runs; production deployments use the postgres backend so
// restarts do not erase in-flight bookings.
type MemoryBackend struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

var _ Backend = (*MemoryBackend)(nil)

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		sessions: make(map[int64]*Session),
	}
}

func (m *MemoryBackend) Get(ctx context.Context, userID int64) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return session.Clone(), nil
}

func (m *MemoryBackend) Put(ctx context.Context, session *Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.UserID] = session.Clone()
	return nil
}
