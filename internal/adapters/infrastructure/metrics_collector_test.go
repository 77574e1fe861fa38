package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherforecast.app/internal/mocks"
	"weatherforecast.app/internal/ports"
)

type stubStats map[string]interface{}

func (s stubStats) GetStats() map[string]interface{} {
	return s
}

func TestMetricsCollectorAdapter_GetMetrics(t *testing.T) {
	ctx := context.Background()
	updated := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	cacheMetrics := mocks.NewCacheMetrics(t)
	providers := mocks.NewForecastProviderManager(t)
	controller := mocks.NewRefreshController(t)

	cacheMetrics.EXPECT().GetStats().Return(ports.CacheStats{
		Hits: 3, Misses: 1, TotalOps: 4, HitRatio: 0.75, LastUpdated: updated,
	}).Once()
	providers.EXPECT().GetProviderInfo().Return(map[string]interface{}{"total_providers": 2}).Once()
	controller.EXPECT().State().Return(ports.RefreshState{AttemptCount: 2, MaxAttempts: 3}).Once()

	collector := NewMetricsCollectorAdapter(MetricsCollectorConfig{
		CacheMetrics:   cacheMetrics,
		RefreshMetrics: stubStats{"cycles": map[string]int64{"caller": 5}},
		Providers:      providers,
		Controller:     controller,
	})

	metrics, err := collector.GetMetrics(ctx)
	require.NoError(t, err)

	store, ok := metrics["store"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, int64(3), store["hits"])
	assert.Equal(t, 0.75, store["hit_ratio"])

	refresh, ok := metrics["refresh"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, map[string]int64{"caller": 5}, refresh["cycles"])

	assert.Equal(t, ports.RefreshState{AttemptCount: 2, MaxAttempts: 3}, metrics["retry_state"])
	assert.Equal(t, map[string]interface{}{"total_providers": 2}, metrics["providers"])
}

func TestMetricsCollectorAdapter_Empty(t *testing.T) {
	metrics, err := NewMetricsCollectorAdapter(MetricsCollectorConfig{}).GetMetrics(context.Background())

	require.NoError(t, err)
	assert.Empty(t, metrics)
}
