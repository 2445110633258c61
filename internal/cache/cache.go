// Package cache implements the cache-aside store over Redis. Reads and writes
// are correctness-relevant and propagate failures; key removal is advisory and
// degrades to a no-op so cleanup never breaks a read that can fall through to
// storage anyway.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/cisnux-seed/transaction-service/internal/apierrors"
)

type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get fetches key and decodes the stored JSON into T. A missing key yields
// (nil, nil). An unreachable store or a value that does not decode into T is
// an internal error, not a miss: a corrupted entry must be visible.
func Get[T any](ctx context.Context, s *Store, key string) (*T, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("error getting cache key", zap.String("key", key), zap.Error(err))
		return nil, apierrors.NewInternalServer("internal server error")
	}

	var out T
	if err := json.Unmarshal([]byte(val), &out); err != nil {
		zap.L().Error("error decoding cache key", zap.String("key", key), zap.Error(err))
		return nil, apierrors.NewInternalServer("internal server error")
	}
	return &out, nil
}

// Set stores value under key as JSON with a TTL given in minutes, overwriting
// any existing entry.
func (s *Store) Set(ctx context.Context, key string, value interface{}, ttlMinutes int) error {
	payload, err := json.Marshal(value)
	if err != nil {
		zap.L().Error("error encoding cache value", zap.String("key", key), zap.Error(err))
		return apierrors.NewInternalServer("internal server error")
	}

	ttl := time.Duration(ttlMinutes) * time.Minute
	if err := s.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		zap.L().Error("error setting cache key", zap.String("key", key), zap.Error(err))
		return apierrors.NewInternalServer("internal server error")
	}
	return nil
}

// Delete removes one key and reports whether a key was actually removed.
// Failures are swallowed and reported as false.
func (s *Store) Delete(ctx context.Context, key string) bool {
	removed, err := s.client.Del(ctx, key).Result()
	if err != nil {
		zap.L().Error("error deleting cache key", zap.String("key", key), zap.Error(err))
		return false
	}
	return removed > 0
}

// DeletePattern removes every key matching the glob pattern and returns how
// many were removed. Failures are swallowed and reported as 0.
func (s *Store) DeletePattern(ctx context.Context, pattern string) int64 {
	keys, err := s.client.Keys(ctx, pattern).Result()
	if err != nil {
		zap.L().Error("error listing cache pattern", zap.String("pattern", pattern), zap.Error(err))
		return 0
	}
	if len(keys) == 0 {
		return 0
	}

	removed, err := s.client.Del(ctx, keys...).Result()
	if err != nil {
		zap.L().Error("error deleting cache pattern", zap.String("pattern", pattern), zap.Error(err))
		return 0
	}
	return removed
}
