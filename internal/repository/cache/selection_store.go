package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultOpTimeout = 2 * time.Second

// SelectionStore persists selections in Redis, one string key per visitor.
type SelectionStore struct {
	rdb       redis.UniversalClient
	ttl       time.Duration
	opTimeout time.Duration
}

func NewSelectionStore(rdb redis.UniversalClient, ttl, opTimeout time.Duration) *SelectionStore {
	if opTimeout <= 0 {
		opTimeout = defaultOpTimeout
	}
	return &SelectionStore{
		rdb:       rdb,
		ttl:       ttl,
		opTimeout: opTimeout,
	}
}

func (s *SelectionStore) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.opTimeout)
	defer cancel()

	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set writes value and refreshes the expiry. A zero ttl keeps the key forever.
func (s *SelectionStore) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.opTimeout)
	defer cancel()

	return s.rdb.Set(ctx, key, value, s.ttl).Err()
}
