package infrastructure

import (
	"weatherforecast.app/internal/config"
	"weatherforecast.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetForecastConfig returns the tracked location and provider settings
func (c *ConfigProviderAdapter) GetForecastConfig() ports.ForecastConfig {
	forecast := c.config.Forecast
	order := make([]string, len(forecast.ProviderOrder))
	copy(order, forecast.ProviderOrder)

	return ports.ForecastConfig{
		Query: ports.ForecastQuery{
			City:      forecast.City,
			Latitude:  forecast.Latitude,
			Longitude: forecast.Longitude,
			Days:      forecast.Days,
		},
		ProviderOrder:      order,
		RequestTimeout:     forecast.RequestTimeout,
		BreakerThreshold:   forecast.BreakerFailureThreshold,
		BreakerOpenTimeout: forecast.BreakerOpenTimeout,
		EnableLogging:      forecast.EnableLogging,
		LogFilePath:        forecast.LogFilePath,
	}
}

func (c *ConfigProviderAdapter) GetRefreshConfig() ports.RefreshConfig {
	return ports.RefreshConfig{
		CacheExpiration:  c.config.Refresh.CacheExpiration,
		MaxRetryAttempts: c.config.Refresh.MaxRetryAttempts,
		RetryDelayUnit:   c.config.Refresh.RetryDelayUnit,
	}
}

// GetStoreConfig returns snapshot store configuration
func (c *ConfigProviderAdapter) GetStoreConfig() ports.StoreConfig {
	return ports.StoreConfig{
		Type:      c.config.Store.Type.String(),
		Retention: c.config.Store.Retention,
		Redis: ports.RedisConfig{
			Addr:         c.config.Store.Redis.Addr,
			Password:     c.config.Store.Redis.Password,
			DB:           c.config.Store.Redis.DB,
			DialTimeout:  c.config.Store.Redis.DialTimeout,
			ReadTimeout:  c.config.Store.Redis.ReadTimeout,
			WriteTimeout: c.config.Store.Redis.WriteTimeout,
			KeyPrefix:    c.config.Store.Redis.KeyPrefix,
		},
	}
}

func (c *ConfigProviderAdapter) GetSchedulerConfig() ports.SchedulerConfig {
	return ports.SchedulerConfig{
		Enabled:  c.config.Scheduler.Enabled,
		Interval: c.config.Scheduler.Interval,
	}
}

var _ ports.ConfigProvider = (*ConfigProviderAdapter)(nil)
