// internal/domain/cart/redis_store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is the production SessionStore: one JSON snapshot per
// session key with a rolling TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a redis-backed session store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) key(token string) string {
	return fmt.Sprintf("cart:session:%s", token)
}

// Load returns the snapshot for token, or an empty cart if the key is
// missing or its payload does not parse
func (s *RedisStore) Load(ctx context.Context, token string) (*Cart, error) {
	data, err := s.client.Get(ctx, s.key(token)).Result()
	if err == redis.Nil {
		return NewCart(), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart session: %w", err)
	}
	return decodeSnapshot([]byte(data)), nil
}

// Save overwrites the snapshot for token and resets its TTL
func (s *RedisStore) Save(ctx context.Context, token string, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(token), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart session: %w", err)
	}
	return nil
}

// Delete discards the snapshot for token
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart session: %w", err)
	}
	return nil
}
