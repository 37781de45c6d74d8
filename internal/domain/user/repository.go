// internal/domain/user/repository.go
package user

import (
	"errors"
	"sync"
)

// ErrUserNotFound is the repository-level miss; the service translates
// it into the caller-facing failures.
var ErrUserNotFound = errors.New("user not found")

// Repository abstracts user storage so the auth logic stays
// storage-agnostic: in-memory for tests and single-node development,
// postgres in production. Email matching is case-sensitive and exact.
type Repository interface {
	FindByEmail(email string) (*User, error)
	FindByID(id string) (*User, error)
	Insert(u *User) error
}

// MemoryRepository is a process-local Repository guarded by a mutex
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User // keyed by id
}

// NewMemoryRepository creates an empty in-memory user repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users: make(map[string]*User),
	}
}

// FindByEmail returns the user with the exact email, or ErrUserNotFound
func (r *MemoryRepository) FindByEmail(email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

// FindByID returns the user with the given id, or ErrUserNotFound
func (r *MemoryRepository) FindByID(id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

// Insert stores a new user record
func (r *MemoryRepository) Insert(u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *u
	r.users[u.ID] = &copied
	return nil
}
