package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"buildchem-be/internal/entity"
	"buildchem-be/pkg/selection"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRedis connects to REDIS_URL and returns a key prefix unique to the test.
func newTestRedis(t *testing.T) (redis.UniversalClient, string) {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("Skipping redis test: REDIS_URL not set")
	}

	opt, err := redis.ParseURL(url)
	require.NoError(t, err, "Failed to parse REDIS_URL")

	rdb := redis.NewClient(opt)
	require.NoError(t, rdb.Ping(context.Background()).Err(), "Failed to connect to Redis")

	prefix := "test-solutions-cart:" + uuid.NewString()
	t.Cleanup(func() {
		ctx := context.Background()
		keys, _ := rdb.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			rdb.Del(ctx, keys...)
		}
		_ = rdb.Close()
	})
	return rdb, prefix
}

func TestSelectionStore_GetSet(t *testing.T) {
	rdb, prefix := newTestRedis(t)
	store := NewSelectionStore(rdb, time.Hour, 0)
	key := prefix + ":a"

	_, found, err := store.Get(key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(key, `{"version":1,"items":[]}`))
	v, found, err := store.Get(key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"version":1,"items":[]}`, v)
}

func TestSelectionStore_SetAppliesTTL(t *testing.T) {
	rdb, prefix := newTestRedis(t)
	ctx := context.Background()

	store := NewSelectionStore(rdb, time.Minute, time.Second)
	require.NoError(t, store.Set(prefix+":ttl", "v"))

	ttl, err := rdb.TTL(ctx, prefix+":ttl").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	forever := NewSelectionStore(rdb, 0, time.Second)
	require.NoError(t, forever.Set(prefix+":forever", "v"))

	ttl, err = rdb.TTL(ctx, prefix+":forever").Result()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl, "zero ttl keeps the key without expiry")
}

func TestSelectionStore_BacksASession(t *testing.T) {
	rdb, prefix := newTestRedis(t)
	store := NewSelectionStore(rdb, time.Hour, 0)
	adapter := selection.NewStoreAdapter(store, prefix+":visitor-1", nil)

	s := selection.NewSession(adapter)
	require.True(t, s.Add(entity.SelectionItem{ProductId: "A", ProductName: "HP 515"}))

	other := selection.NewSession(selection.NewStoreAdapter(store, prefix+":visitor-2", nil))
	assert.Equal(t, 0, other.Count(), "visitors must not share a selection")

	again := selection.NewSession(adapter)
	assert.Equal(t, 1, again.Count())
	assert.True(t, again.Contains("A"))
}
