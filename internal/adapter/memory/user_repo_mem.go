package memory

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"user-directory-service/internal/domain/user"
)

// UserRepoMem implements the Repository interface with a process-local slice.
// Records live for the lifetime of the process; there is no persistence.
//
// A single RWMutex guards all access. The operations themselves are written
// for single-threaded semantics; the lock only keeps concurrent HTTP
// dispatch from corrupting the slice, it does not change observable
// behavior.
type UserRepoMem struct {
	mu    sync.RWMutex
	users []user.User
	log   *zap.Logger
}

// NewUserRepoMem creates a new in-memory user repository. Any seed records
// are stored as given, ids included.
func NewUserRepoMem(log *zap.Logger, seed ...user.User) *UserRepoMem {
	r := &UserRepoMem{log: log}
	r.users = append(r.users, seed...)
	return r
}

// nextID computes the id for a new record: one past the current maximum, or
// 1 for an empty store. The value is recomputed from current contents on
// every insert, so deleting the record holding the maximum id frees that id
// for reuse. Callers must hold the write lock.
func (r *UserRepoMem) nextID() int64 {
	var maxID int64
	for i := range r.users {
		if r.users[i].ID > maxID {
			maxID = r.users[i].ID
		}
	}
	return maxID + 1
}

// Create assigns an id to the user and appends it to the store.
// Any id already set on u is discarded.
func (r *UserRepoMem) Create(_ context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *u
	stored.ID = r.nextID()
	r.users = append(r.users, stored)

	r.log.Info("user created in store", zap.Int64("id", stored.ID))
	return &stored, nil
}

// GetByID retrieves a user by id. Returns (nil, nil) when no record matches.
func (r *UserRepoMem) GetByID(_ context.Context, id int64) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// Update overwrites the name and email of the record with the given id and
// returns the updated record. Id and password are never altered here.
// Returns (nil, nil) when no record matches.
func (r *UserRepoMem) Update(_ context.Context, id int64, name, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Name = name
			r.users[i].Email = email
			u := r.users[i]
			r.log.Info("user updated in store", zap.Int64("id", id))
			return &u, nil
		}
	}
	return nil, nil
}

// Delete removes the record with the given id. Returns false when no record
// matches.
func (r *UserRepoMem) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			r.log.Info("user deleted from store", zap.Int64("id", id))
			return true, nil
		}
	}
	return false, nil
}

// List returns all users in insertion order.
func (r *UserRepoMem) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, len(r.users))
	copy(out, r.users)
	return out, nil
}
