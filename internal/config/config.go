package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherforecast.app/pkg/errors"
	"weatherforecast.app/pkg/validation"
)

const (
	maxRedisDB         = 15
	maxPortNumber      = 65535
	maxForecastDays    = 14
	maxRetryAttempts   = 10
	minSchedulerPeriod = time.Minute
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Forecast  ForecastConfig  `split_words:"true"`
	Refresh   RefreshConfig   `split_words:"true"`
	Store     StoreConfig     `split_words:"true"`
	Scheduler SchedulerConfig `split_words:"true"`
	LogLevel  string          `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type ForecastConfig struct {
	WeatherAPIKey           string        `envconfig:"WEATHERAPI_KEY"`
	WeatherAPIBaseURL       string        `envconfig:"WEATHERAPI_BASE_URL" default:"https://api.weatherapi.com/v1"`
	OpenMeteoBaseURL        string        `envconfig:"OPENMETEO_BASE_URL" default:"https://api.open-meteo.com/v1"`
	City                    string        `envconfig:"FORECAST_CITY" default:"moscow"`
	Latitude                float64       `envconfig:"FORECAST_LATITUDE" default:"55.7558"`
	Longitude               float64       `envconfig:"FORECAST_LONGITUDE" default:"37.6173"`
	Days                    int           `envconfig:"FORECAST_DAYS" default:"5"`
	RequestTimeout          time.Duration `envconfig:"FORECAST_REQUEST_TIMEOUT" default:"10s"`
	ProviderOrder           []string      `envconfig:"FORECAST_PROVIDER_ORDER" default:"weatherapi,openmeteo"`
	BreakerFailureThreshold uint32        `envconfig:"FORECAST_BREAKER_FAILURE_THRESHOLD" default:"5"`
	BreakerOpenTimeout      time.Duration `envconfig:"FORECAST_BREAKER_OPEN_TIMEOUT" default:"30s"`
	EnableLogging           bool          `envconfig:"FORECAST_ENABLE_LOGGING" default:"false"`
	LogFilePath             string        `envconfig:"FORECAST_LOG_FILE_PATH" default:"logs/forecast_providers.log"`
}

// RefreshConfig holds the freshness window and the linear retry parameters
type RefreshConfig struct {
	CacheExpiration  time.Duration `envconfig:"REFRESH_CACHE_EXPIRATION" default:"10m"`
	MaxRetryAttempts int           `envconfig:"REFRESH_MAX_RETRY_ATTEMPTS" default:"3"`
	RetryDelayUnit   time.Duration `envconfig:"REFRESH_RETRY_DELAY_UNIT" default:"3s"`
}

// StoreType represents the backend holding the last known snapshot
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypeMemory
	StoreTypeRedis
	StoreTypeSQLite
	StoreTypePostgres
)

// String returns the string representation of store type
func (s StoreType) String() string {
	switch s {
	case StoreTypeMemory:
		return "memory"
	case StoreTypeRedis:
		return "redis"
	case StoreTypeSQLite:
		return "sqlite"
	case StoreTypePostgres:
		return "postgres"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s >= StoreTypeMemory && s <= StoreTypePostgres
}

// IsSQL reports whether the store is backed by gorm
func (s StoreType) IsSQL() bool {
	return s == StoreTypeSQLite || s == StoreTypePostgres
}

// StoreTypeFromString converts string to StoreType enum
func StoreTypeFromString(s string) StoreType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return StoreTypeMemory
	case "redis":
		return StoreTypeRedis
	case "sqlite":
		return StoreTypeSQLite
	case "postgres":
		return StoreTypePostgres
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type StoreConfig struct {
	Type      StoreType      `envconfig:"STORE_TYPE" default:"memory"`
	Retention time.Duration  `envconfig:"STORE_RETENTION" default:"168h"`
	Redis     RedisConfig    `split_words:"true"`
	Database  DatabaseConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"weatherforecast:"`
}

type DatabaseConfig struct {
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       int    `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string `envconfig:"DB_NAME" default:"forecast"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"data/forecast.db"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type SchedulerConfig struct {
	Enabled  bool          `envconfig:"SCHEDULER_ENABLED" default:"true"`
	Interval time.Duration `envconfig:"SCHEDULER_INTERVAL" default:"10m"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Forecast.Validate(); err != nil {
		return err
	}
	if err := c.Refresh.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (f *ForecastConfig) Validate() error {
	if len(f.ProviderOrder) == 0 {
		return errors.NewConfigurationError("FORECAST_PROVIDER_ORDER must name at least one provider", nil)
	}

	for _, provider := range f.ProviderOrder {
		switch provider {
		case "weatherapi":
			if f.WeatherAPIKey == "" {
				return errors.NewConfigurationError("WEATHERAPI_KEY is required when weatherapi is in FORECAST_PROVIDER_ORDER", nil)
			}
			if !validation.IsHTTPURL(f.WeatherAPIBaseURL) {
				return errors.NewConfigurationError("WEATHERAPI_BASE_URL must start with http:// or https://", nil)
			}
		case "openmeteo":
			if !validation.IsHTTPURL(f.OpenMeteoBaseURL) {
				return errors.NewConfigurationError("OPENMETEO_BASE_URL must start with http:// or https://", nil)
			}
		default:
			return errors.NewConfigurationError(fmt.Sprintf("invalid forecast provider in order: %s", provider), nil)
		}
	}

	if !validation.IsNotEmpty(f.City) {
		return errors.NewConfigurationError("FORECAST_CITY cannot be empty", nil)
	}
	if !validation.IsValidLatitude(f.Latitude) {
		return errors.NewConfigurationError("FORECAST_LATITUDE must be between -90 and 90", nil)
	}
	if !validation.IsValidLongitude(f.Longitude) {
		return errors.NewConfigurationError("FORECAST_LONGITUDE must be between -180 and 180", nil)
	}
	if f.Days < 1 || f.Days > maxForecastDays {
		return errors.NewConfigurationError("FORECAST_DAYS must be between 1 and 14", nil)
	}
	if f.RequestTimeout <= 0 {
		return errors.NewConfigurationError("FORECAST_REQUEST_TIMEOUT must be positive", nil)
	}
	if f.BreakerFailureThreshold < 1 {
		return errors.NewConfigurationError("FORECAST_BREAKER_FAILURE_THRESHOLD must be at least 1", nil)
	}
	if f.BreakerOpenTimeout <= 0 {
		return errors.NewConfigurationError("FORECAST_BREAKER_OPEN_TIMEOUT must be positive", nil)
	}
	if f.EnableLogging && f.LogFilePath == "" {
		return errors.NewConfigurationError("FORECAST_LOG_FILE_PATH cannot be empty when logging is enabled", nil)
	}
	return nil
}

func (r *RefreshConfig) Validate() error {
	if r.CacheExpiration <= 0 {
		return errors.NewConfigurationError("REFRESH_CACHE_EXPIRATION must be positive", nil)
	}
	if r.MaxRetryAttempts < 0 || r.MaxRetryAttempts > maxRetryAttempts {
		return errors.NewConfigurationError("REFRESH_MAX_RETRY_ATTEMPTS must be between 0 and 10", nil)
	}
	if r.RetryDelayUnit <= 0 {
		return errors.NewConfigurationError("REFRESH_RETRY_DELAY_UNIT must be positive", nil)
	}
	return nil
}

func (s *StoreConfig) Validate() error {
	if !s.Type.IsValid() {
		return errors.NewConfigurationError("STORE_TYPE must be one of: memory, redis, sqlite, postgres", nil)
	}
	if s.Retention < 0 {
		return errors.NewConfigurationError("STORE_RETENTION cannot be negative", nil)
	}

	switch s.Type {
	case StoreTypeRedis:
		return s.Redis.Validate()
	case StoreTypeSQLite:
		if s.Database.SQLitePath == "" {
			return errors.NewConfigurationError("SQLITE_PATH cannot be empty when using the sqlite store", nil)
		}
	case StoreTypePostgres:
		return s.Database.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (s *SchedulerConfig) Validate() error {
	if s.Enabled && s.Interval < minSchedulerPeriod {
		return errors.NewConfigurationError("SCHEDULER_INTERVAL must be at least 1 minute", nil)
	}
	return nil
}
