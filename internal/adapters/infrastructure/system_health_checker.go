package infrastructure

import (
	"context"

	"weatherforecast.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers       map[string]ports.HealthChecker
	configProvider ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker ports.HealthChecker
	StoreChecker    ports.HealthChecker
	ProviderChecker ports.HealthChecker
	RefreshChecker  ports.HealthChecker
	ConfigProvider  ports.ConfigProvider
}

func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	if config.DatabaseChecker != nil {
		checkers["database"] = config.DatabaseChecker
	}
	if config.StoreChecker != nil {
		checkers["store"] = config.StoreChecker
	}
	if config.ProviderChecker != nil {
		checkers["providers"] = config.ProviderChecker
	}
	if config.RefreshChecker != nil {
		checkers["refresh"] = config.RefreshChecker
	}

	return &SystemHealthChecker{
		checkers:       checkers,
		configProvider: config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	for name, checker := range s.checkers {
		results[name] = checker.Check(ctx)
	}

	if s.configProvider != nil {
		forecast := s.configProvider.GetForecastConfig()
		refresh := s.configProvider.GetRefreshConfig()
		scheduler := s.configProvider.GetSchedulerConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details: map[string]interface{}{
				"city":               forecast.Query.City,
				"provider_order":     forecast.ProviderOrder,
				"cache_expiration":   refresh.CacheExpiration.String(),
				"max_retry_attempts": refresh.MaxRetryAttempts,
				"scheduler_enabled":  scheduler.Enabled,
			},
		}
	}

	return results
}

var _ ports.SystemHealthChecker = (*SystemHealthChecker)(nil)
