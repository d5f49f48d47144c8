package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is the Redis-backed Cache. Exported (unlike the in-process
// variant's internals) so main can register its Ping with the readiness probe.
type RedisCache struct {
	client      *redis.Client
	serviceName string
}

var _ Cache = (*RedisCache)(nil)

// NewRedisCache returns a Cache backed by the Redis instance at addr. Keys
// are prefixed with the service name so several services can share one Redis.
func NewRedisCache(addr, serviceName string) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: addr}),
		serviceName: serviceName,
	}
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.prefixed(key)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("cache: get %q: %w", key, err)
	}
	return value, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.prefixed(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %q: %w", key, err)
	}
	return nil
}

// EvictAll walks the keyspace with SCAN, never KEYS, and deletes every key
// under the prefix.
func (r *RedisCache) EvictAll(ctx context.Context, prefix string) error {
	iter := r.client.Scan(ctx, 0, r.prefixed(prefix)+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache: evict %q: %w", prefix, err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache: evict %q: %w", prefix, err)
	}
	return nil
}

// Ping verifies the Redis connection. Used by the readiness probe.
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) prefixed(key string) string {
	return r.serviceName + ":" + key
}
