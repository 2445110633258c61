package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

type cachedValue struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func setupTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return NewStore(client), mr
}

func TestSetAndGet(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	err := store.Set(ctx, "key", cachedValue{Name: "a", Count: 3}, 15)
	assert.NoError(t, err)

	got, err := Get[cachedValue](ctx, store, "key")
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, cachedValue{Name: "a", Count: 3}, *got)

	ttl := mr.TTL("key")
	assert.Equal(t, 15*time.Minute, ttl)
}

func TestGetMissingKey(t *testing.T) {
	store, _ := setupTestStore(t)

	got, err := Get[cachedValue](context.Background(), store, "absent")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetExpiredKey(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	err := store.Set(ctx, "key", cachedValue{Name: "a"}, 5)
	assert.NoError(t, err)

	mr.FastForward(5*time.Minute + time.Second)

	got, err := Get[cachedValue](ctx, store, "key")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetUndecodableValue(t *testing.T) {
	store, mr := setupTestStore(t)

	// Not JSON at all.
	mr.Set("corrupt", "not-json")
	got, err := Get[cachedValue](context.Background(), store, "corrupt")
	assert.Error(t, err)
	assert.Nil(t, got)

	// Valid JSON of an incompatible shape.
	mr.Set("mismatch", `"just a string"`)
	count, err := Get[int64](context.Background(), store, "mismatch")
	assert.Error(t, err)
	assert.Nil(t, count)
}

func TestSetOverwrites(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, "key", cachedValue{Name: "old"}, 5))
	assert.NoError(t, store.Set(ctx, "key", cachedValue{Name: "new"}, 5))

	got, err := Get[cachedValue](ctx, store, "key")
	assert.NoError(t, err)
	assert.Equal(t, "new", got.Name)
}

func TestDelete(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, "key", cachedValue{}, 5))

	assert.True(t, store.Delete(ctx, "key"))
	assert.False(t, store.Delete(ctx, "key"))
}

func TestDeletePattern(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, "trx_list:1:10", cachedValue{}, 5))
	assert.NoError(t, store.Set(ctx, "trx_list:2:10", cachedValue{}, 5))
	assert.NoError(t, store.Set(ctx, "trx:abc", cachedValue{}, 5))

	removed := store.DeletePattern(ctx, "trx_list:*")
	assert.Equal(t, int64(2), removed)

	kept, err := Get[cachedValue](ctx, store, "trx:abc")
	assert.NoError(t, err)
	assert.NotNil(t, kept)

	assert.Equal(t, int64(0), store.DeletePattern(ctx, "trx_list:*"))
}

func TestStoreUnreachable(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, "key", cachedValue{}, 5))
	mr.Close()

	// Reads and writes propagate failures.
	_, err := Get[cachedValue](ctx, store, "key")
	assert.Error(t, err)
	assert.Error(t, store.Set(ctx, "key", cachedValue{}, 5))

	// Removal is best-effort and degrades to a no-op.
	assert.False(t, store.Delete(ctx, "key"))
	assert.Equal(t, int64(0), store.DeletePattern(ctx, "*"))
}
