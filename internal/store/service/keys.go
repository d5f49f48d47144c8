package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/jcmexdev/store-service/internal/pkg/cache"
	"github.com/jcmexdev/store-service/internal/pkg/metrics"
	"github.com/jcmexdev/store-service/internal/store/domain"
)

// Cache keys are a deterministic composition of the read parameters.
// Identical key means identical cached page; any write to a kind evicts the
// kind's whole namespace.

// customerPageKey composes the customer listing key, including the trimmed
// name filter: "name=ada|p=0|s=50|sort=id,desc".
func customerPageKey(name string, req domain.PageRequest) string {
	return fmt.Sprintf("name=%s|%s", strings.TrimSpace(name), pageKey(req))
}

// pageKey composes the filter-less listing key used for products and orders.
func pageKey(req domain.PageRequest) string {
	return fmt.Sprintf("p=%d|s=%d|sort=%s", req.Page, req.Size, req.Sort)
}

// idKey is the single-entity lookup key: just the id.
func idKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

// readThrough answers a read from the cache when possible, otherwise computes
// the value, stores its JSON form, and returns it. A failing cache never fails
// the read: the error is logged and the store is consulted directly.
func readThrough[T any](ctx context.Context, c cache.Cache, m *metrics.StoreMetrics, kind, key string, compute func() (T, error)) (T, error) {
	fullKey := cache.Key(kind, key)

	cached, err := c.Get(ctx, fullKey)
	if err != nil {
		slog.WarnContext(ctx, "cache read failed", "key", fullKey, "error", err)
	}
	if cached != "" {
		var value T
		if err := json.Unmarshal([]byte(cached), &value); err == nil {
			m.CacheHit(kind)
			return value, nil
		}
		slog.WarnContext(ctx, "discarding undecodable cache entry", "key", fullKey)
	}
	m.CacheMiss(kind)

	value, err := compute()
	if err != nil {
		return value, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		slog.WarnContext(ctx, "cache encode failed", "key", fullKey, "error", err)
		return value, nil
	}
	if err := c.Set(ctx, fullKey, string(encoded), 0); err != nil {
		slog.WarnContext(ctx, "cache write failed", "key", fullKey, "error", err)
	}
	return value, nil
}

// evict drops every cached read of the given kind. Called after each write;
// wholesale invalidation keeps the next read coherent without dependency
// tracking. An eviction failure is logged, not returned: the write already
// happened and must be reported as a success.
func evict(ctx context.Context, c cache.Cache, kind string) {
	if err := c.EvictAll(ctx, cache.Key(kind, "")); err != nil {
		slog.ErrorContext(ctx, "cache eviction failed, stale reads possible", "kind", kind, "error", err)
	}
}
