package session

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Registry maps active session tokens to user ids. Entries are created by
// login and removed by logout only; there is no expiry.
type Registry interface {
	// Put records token as an active session for the given user.
	Put(ctx context.Context, token string, userID int64) error

	// Remove deletes the token from the registry. Returns false when the
	// token was not present.
	Remove(ctx context.Context, token string) (bool, error)

	// Contains reports whether the token is currently active.
	Contains(ctx context.Context, token string) (bool, error)
}

// MemoryRegistry implements Registry with a process-local map. This is the
// default backend; sessions vanish on restart along with the user store.
type MemoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]int64
	log      *zap.Logger
}

// NewMemoryRegistry creates a new in-memory session registry.
func NewMemoryRegistry(log *zap.Logger) *MemoryRegistry {
	return &MemoryRegistry{
		sessions: make(map[string]int64),
		log:      log,
	}
}

// Put records an active session.
func (r *MemoryRegistry) Put(_ context.Context, token string, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[token] = userID
	r.log.Debug("session recorded", zap.Int64("user_id", userID))
	return nil
}

// Remove deletes a session token.
func (r *MemoryRegistry) Remove(_ context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[token]; !ok {
		return false, nil
	}
	delete(r.sessions, token)
	r.log.Debug("session removed")
	return true, nil
}

// Contains reports whether the token is active.
func (r *MemoryRegistry) Contains(_ context.Context, token string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.sessions[token]
	return ok, nil
}
