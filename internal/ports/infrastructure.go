package ports

import (
	"context"
	"time"
)

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// ForecastConfig represents the tracked location and provider settings
type ForecastConfig struct {
	Query              ForecastQuery
	ProviderOrder      []string
	RequestTimeout     time.Duration
	BreakerThreshold   uint32
	BreakerOpenTimeout time.Duration
	EnableLogging      bool
	LogFilePath        string
}

// RefreshConfig holds the freshness window and linear retry parameters
type RefreshConfig struct {
	CacheExpiration  time.Duration
	MaxRetryAttempts int
	RetryDelayUnit   time.Duration
}

// StoreConfig represents snapshot store configuration
type StoreConfig struct {
	Type      string
	Retention time.Duration
	Redis     RedisConfig
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  int
	ReadTimeout  int
	WriteTimeout int
	KeyPrefix    string
}

// SchedulerConfig represents scheduler configuration
type SchedulerConfig struct {
	Enabled  bool
	Interval time.Duration
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetServerConfig() ServerConfig
	GetForecastConfig() ForecastConfig
	GetRefreshConfig() RefreshConfig
	GetStoreConfig() StoreConfig
	GetSchedulerConfig() SchedulerConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector exposes aggregated runtime metrics to the HTTP layer
type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}
