// Package cache provides the Redis-backed response cache.
package cache

import (
	"context"
	"errors"
	"time"

	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/vuelasur/booking/pkg/provider"
)

// RedisCache implements provider.Cache on a Redis client. Values are
// opaque bytes; serialization is the caller's concern.
type RedisCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisCacheWithOptions creates a RedisCache from redis.Options.
func NewRedisCacheWithOptions(
	opt *redis.Options,
	prefix string,
	logger *slog.Logger,
) *RedisCache {
	client := redis.NewClient(opt)
	return &RedisCache{client: client, prefix: prefix, logger: logger}
}

var _ provider.Cache = (*RedisCache)(nil)

func (r *RedisCache) key(key string) string {
	return r.prefix + key
}

// Get implements provider.Cache. A miss is (nil, nil).
func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Redis cache get error", "key", key, "error", err)
		return nil, err
	}
	r.logger.Debug("Redis cache hit", "key", key)
	return val, nil
}

// Set implements provider.Cache.
func (r *RedisCache) Set(
	ctx context.Context,
	key string,
	value []byte,
	ttl time.Duration,
) error {
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		r.logger.Error("Redis cache set error", "key", key, "error", err)
		return err
	}
	r.logger.Debug("Redis cache set", "key", key, "ttl", ttl)
	return nil
}
