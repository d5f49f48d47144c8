package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// memoryCache is a process-wide map cache. It is the default backend: the
// dataset is small, entries are evicted wholesale on every write to their
// kind, and no size bound or TTL is applied.
//
// Two concurrent identical-key reads may both miss and both recompute; the
// second Set simply wins. No single-flight coordination is attempted.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

var _ Cache = (*memoryCache)(nil)

// NewMemoryCache returns an empty in-process Cache.
func NewMemoryCache() Cache {
	return &memoryCache{entries: make(map[string]string)}
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[key], nil
}

// Set stores value under key. The ttl parameter is part of the Cache port for
// the Redis backend; the in-process backend ignores it.
func (m *memoryCache) Set(ctx context.Context, key string, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *memoryCache) EvictAll(ctx context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
	return nil
}
