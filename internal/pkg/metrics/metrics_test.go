package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestStoreMetrics_Counters(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := newStoreMetricsWithRegisterer(registry)

	m.CacheHit("customer")
	m.CacheHit("customer")
	m.CacheMiss("order")
	m.EntityCreated("product")

	require.Equal(t, 2.0, testutil.ToFloat64(m.cacheHits.WithLabelValues("customer")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.cacheMisses.WithLabelValues("order")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.entitiesCreated.WithLabelValues("product")))
}

func TestStoreMetrics_NilReceiverIsNoOp(t *testing.T) {
	var m *StoreMetrics

	require.NotPanics(t, func() {
		m.CacheHit("customer")
		m.CacheMiss("customer")
		m.EntityCreated("customer")
	})
}

func TestStoreMetrics_ReRegistrationReusesCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()

	first := newStoreMetricsWithRegisterer(registry)
	second := newStoreMetricsWithRegisterer(registry)

	first.CacheHit("customer")
	second.CacheHit("customer")

	require.Equal(t, 2.0, testutil.ToFloat64(second.cacheHits.WithLabelValues("customer")))
}
