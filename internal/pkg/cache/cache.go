// Package cache provides the read-model cache used by the store services.
//
// Values are JSON-serialised projections keyed by a deterministic composition
// of the read parameters, so an identical read is answered from the cache
// without touching the database. Invalidation is wholesale: any write to an
// entity kind evicts that kind's entire namespace. Correctness over hit-rate.
package cache

import (
	"context"
	"time"
)

// Cache is the port the services depend on. Implementations must be safe for
// concurrent use; readers observe either an old or a new value, never a torn
// one.
type Cache interface {
	// Get returns the cached value for key, or "" on a miss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key. A zero ttl means no expiry; entries live
	// until evicted.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// EvictAll removes every entry whose key starts with prefix.
	EvictAll(ctx context.Context, prefix string) error
}

// Key composes a namespaced cache key: "customer:name=|p=0|s=50|sort=id,desc".
// The namespace doubles as the eviction prefix for its entity kind.
func Key(namespace, key string) string {
	return namespace + ":" + key
}
