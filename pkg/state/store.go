package state

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// Store wraps a Backend with per-user mutual exclusion. Handlers hold
// the user's lock across the whole load-transition-save sequence so
// overlapping webhook deliveries for one user cannot lose updates.
type Store struct {
	backend Backend

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewStore(backend Backend) *Store {
	return &Store{
		backend: backend,
		locks:   make(map[int64]*sync.Mutex),
	}
}

// Lock acquires the per-user mutex and returns its release func.
func (s *Store) Lock(userID int64) func() {
	s.mu.Lock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Load returns the user's session, or a fresh initial one when none is
// stored yet. The fresh session is not persisted until Save.
func (s *Store) Load(ctx context.Context, userID int64) (*Session, error) {
	session, err := s.backend.Get(ctx, userID)
	if err == nil {
		return session, nil
	}
	if err == ErrNotFound {
		log.Printf("Creating new session for user %d", userID)
		return NewSession(userID), nil
	}
	return nil, fmt.Errorf("failed to load session for user %d: %w", userID, err)
}

// Save persists the full session record, overwriting prior state.
func (s *Store) Save(ctx context.Context, session *Session) error {
	if session == nil {
		return fmt.Errorf("cannot save nil session")
	}
	session.UpdatedAt = time.Now().UTC()
	if err := s.backend.Put(ctx, session); err != nil {
		return fmt.Errorf("failed to save session for user %d: %w", session.UserID, err)
	}
	return nil
}
