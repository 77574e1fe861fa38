package infrastructure

import (
	"context"

	"weatherforecast.app/internal/ports"
)

// StatsReporter is implemented by metric sinks that keep local totals
type StatsReporter interface {
	GetStats() map[string]interface{}
}

// MetricsCollectorAdapter aggregates store, refresh and provider metrics for the HTTP layer
type MetricsCollectorAdapter struct {
	cacheMetrics   ports.CacheMetrics
	refreshMetrics StatsReporter
	providers      ports.ForecastProviderManager
	controller     ports.RefreshController
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	CacheMetrics   ports.CacheMetrics
	RefreshMetrics StatsReporter
	Providers      ports.ForecastProviderManager
	Controller     ports.RefreshController
}

func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		cacheMetrics:   config.CacheMetrics,
		refreshMetrics: config.RefreshMetrics,
		providers:      config.Providers,
		controller:     config.Controller,
	}
}

// GetMetrics returns aggregated metrics from all monitored components
func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	metrics := make(map[string]interface{})

	if m.cacheMetrics != nil {
		stats := m.cacheMetrics.GetStats()
		metrics["store"] = map[string]interface{}{
			"hits":      stats.Hits,
			"misses":    stats.Misses,
			"total_ops": stats.TotalOps,
			"hit_ratio": stats.HitRatio,
			"updated":   stats.LastUpdated,
		}
	}

	if m.refreshMetrics != nil {
		metrics["refresh"] = m.refreshMetrics.GetStats()
	}

	if m.controller != nil {
		metrics["retry_state"] = m.controller.State()
	}

	if m.providers != nil {
		metrics["providers"] = m.providers.GetProviderInfo()
	}

	return metrics, nil
}

var _ ports.MetricsCollector = (*MetricsCollectorAdapter)(nil)
