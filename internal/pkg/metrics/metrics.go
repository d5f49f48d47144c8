// Package metrics exposes Prometheus counters for the store's hot paths:
// cache effectiveness and entity creation volume.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics groups the service-level counters. A nil *StoreMetrics is
// valid: every method is a no-op, so tests can pass nil without wiring a
// registry.
type StoreMetrics struct {
	cacheHits       *prometheus.CounterVec
	cacheMisses     *prometheus.CounterVec
	entitiesCreated *prometheus.CounterVec
}

// NewStoreMetrics registers the counters with the default registerer.
func NewStoreMetrics() *StoreMetrics {
	return newStoreMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newStoreMetricsWithRegisterer(registerer prometheus.Registerer) *StoreMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &StoreMetrics{
		cacheHits: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "store_cache_hits_total",
			Help: "Read-model cache hits, partitioned by entity kind",
		}, []string{"kind"}),
		cacheMisses: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "store_cache_misses_total",
			Help: "Read-model cache misses, partitioned by entity kind",
		}, []string{"kind"}),
		entitiesCreated: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "store_entities_created_total",
			Help: "Entities persisted, partitioned by kind",
		}, []string{"kind"}),
	}
}

// CacheHit records a cache hit for the given entity kind.
func (m *StoreMetrics) CacheHit(kind string) {
	if m == nil {
		return
	}
	m.cacheHits.WithLabelValues(kind).Inc()
}

// CacheMiss records a cache miss for the given entity kind.
func (m *StoreMetrics) CacheMiss(kind string) {
	if m == nil {
		return
	}
	m.cacheMisses.WithLabelValues(kind).Inc()
}

// EntityCreated records a successful insert of the given entity kind.
func (m *StoreMetrics) EntityCreated(kind string) {
	if m == nil {
		return
	}
	m.entitiesCreated.WithLabelValues(kind).Inc()
}

// registerCounterVec registers the vec, reusing an existing collector if the
// same metric was already registered (tests re-create StoreMetrics freely).
func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(vec); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			return already.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return vec
}
