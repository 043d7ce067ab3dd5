package state

import (
	"context"
	"errors"
)

// ErrNotFound is returned by backends when no session exists for a user.
var ErrNotFound = errors.New("session not found")

// Backend is the persistence contract behind the Store. Implementations
// must survive concurrent calls; per-user serialization is the Store's job.
type Backend interface {
	Get(ctx context.Context, userID int64) (*Session, error)
	Put(ctx context.Context, session *Session) error
}
