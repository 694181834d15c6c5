package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// SelectionStore keeps persisted selections in process memory. Values survive
// as long as the process and expire after ttl of inactivity.
type SelectionStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewSelectionStore(ttl time.Duration) *SelectionStore {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	// purge expired entries every 10 minutes
	c := cache.New(ttl, 10*time.Minute)
	return &SelectionStore{
		cache: c,
		ttl:   ttl,
	}
}

func (s *SelectionStore) Get(key string) (string, bool, error) {
	if x, found := s.cache.Get(key); found {
		if v, ok := x.(string); ok {
			return v, true, nil
		}
	}
	return "", false, nil
}

func (s *SelectionStore) Set(key, value string) error {
	s.cache.Set(key, value, cache.DefaultExpiration)
	return nil
}

func (s *SelectionStore) Delete(key string) {
	s.cache.Delete(key)
}

func (s *SelectionStore) Len() int {
	return s.cache.ItemCount()
}
