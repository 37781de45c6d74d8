// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// SessionStore persists one cart snapshot per client session token.
// Load never fails on a missing or corrupt snapshot: both come back as
// a fresh empty cart, so a damaged snapshot silently heals on the next
// write. Save overwrites the snapshot wholesale; Delete discards it.
type SessionStore interface {
	Load(ctx context.Context, token string) (*Cart, error)
	Save(ctx context.Context, token string, c *Cart) error
	Delete(ctx context.Context, token string) error
}

// MemoryStore is a mutex-guarded in-process SessionStore used in tests
// and in single-instance deployments without Redis.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory session store. Snapshots expire
// ttl after their last write; ttl <= 0 disables expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

// Load returns the snapshot for token, or an empty cart if absent,
// expired, or unreadable
func (s *MemoryStore) Load(_ context.Context, token string) (*Cart, error) {
	s.mu.RLock()
	entry, ok := s.entries[token]
	s.mu.RUnlock()

	if !ok || (!entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)) {
		return NewCart(), nil
	}
	return decodeSnapshot(entry.data), nil
}

// Save overwrites the snapshot for token
func (s *MemoryStore) Save(_ context.Context, token string, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[token] = memoryEntry{data: data, expiresAt: expiresAt}
	s.mu.Unlock()
	return nil
}

// Delete discards the snapshot for token
func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.entries, token)
	s.mu.Unlock()
	return nil
}

// put injects a raw snapshot, used by tests to simulate corruption
func (s *MemoryStore) put(token string, data []byte) {
	s.mu.Lock()
	s.entries[token] = memoryEntry{data: data}
	s.mu.Unlock()
}

// decodeSnapshot parses a persisted snapshot, substituting an empty
// cart when the payload does not parse
func decodeSnapshot(data []byte) *Cart {
	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return NewCart()
	}
	if c.Items == nil {
		c.Items = []Item{}
	}
	return &c
}
