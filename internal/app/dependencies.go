package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"weatherforecast.app/internal/adapters/database"
	"weatherforecast.app/internal/adapters/external"
	"weatherforecast.app/internal/adapters/infrastructure"
	"weatherforecast.app/internal/config"
	"weatherforecast.app/internal/ports"
	"weatherforecast.app/metrics"
	"weatherforecast.app/pkg/logger"
)

// DependencyContainer owns the infrastructure resources behind the application ports
type DependencyContainer struct {
	config *config.Config
	db     *gorm.DB
	ports  *ports.ApplicationPorts

	logger         ports.Logger
	fileLogger     *infrastructure.FileLoggerAdapter
	cacheProvider  ports.CacheProvider
	cacheMetrics   *metrics.CacheMetrics
	refreshMetrics *metrics.RefreshMetrics
}

// DependencyOptions overrides pieces of the container, mainly for tests
type DependencyOptions struct {
	HTTPClient external.HTTPClient
	DB         *gorm.DB
}

func NewDependencyContainer(cfg *config.Config, opts DependencyOptions) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	container := &DependencyContainer{config: cfg, db: opts.DB}

	if err := container.initializeLogger(); err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	if container.db == nil && cfg.Store.Type.IsSQL() {
		if err := container.initializeDatabase(); err != nil {
			return nil, fmt.Errorf("initialize database: %w", err)
		}
	} else if container.db != nil {
		if err := container.runMigrations(container.db); err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	if err := container.initializePorts(opts.HTTPClient); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeLogger() error {
	c.logger = infrastructure.NewSlogLoggerAdapter(logger.NewWithLevel(logger.ParseLevel(c.config.LogLevel)))

	if c.config.Forecast.EnableLogging && c.config.Forecast.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Forecast.LogFilePath, logger.ParseLevel(c.config.LogLevel))
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
			return nil
		}
		c.fileLogger = fileLogger
		c.logger = infrastructure.NewTeeLogger(c.logger, fileLogger)
		slog.Info("File logging enabled", "path", fileLogger.Path())
	}
	return nil
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...", "store", c.config.Store.Type.String())

	var dialector gorm.Dialector
	switch c.config.Store.Type {
	case config.StoreTypeSQLite:
		path := c.config.Store.Database.SQLitePath
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create sqlite directory: %w", err)
			}
		}
		dialector = sqlite.Open(path)
	case config.StoreTypePostgres:
		dialector = postgres.Open(c.config.Store.Database.GetDSN())
	default:
		return fmt.Errorf("store type %s does not use a database", c.config.Store.Type.String())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	if err := c.runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) runMigrations(db *gorm.DB) error {
	slog.Info("Running database migrations...")

	if err := db.AutoMigrate(database.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	slog.Info("Database migrations completed successfully")
	return nil
}

func (c *DependencyContainer) initializePorts(client external.HTTPClient) error {
	slog.Info("Initializing ports...")

	cacheFactory := external.NewCacheProviderFactory(c.db)
	cacheProvider, err := cacheFactory.CreateCacheProvider(&c.config.Store)
	if err != nil {
		slog.Error("Failed to create store backend", "error", err)
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.cacheProvider = cacheProvider

	slog.Info("Store backend initialized",
		"type", c.config.Store.Type.String(),
		"retention", c.config.Store.Retention.String())

	c.cacheMetrics = metrics.NewCacheMetrics(c.config.Store.Type.String())
	forecastStore, err := external.NewForecastStoreAdapter(cacheProvider, c.cacheMetrics, c.config.Store.Retention)
	if err != nil {
		return fmt.Errorf("create forecast store: %w", err)
	}

	fc := c.config.Forecast
	var providerManager ports.ForecastProviderManager = external.NewForecastProviderManagerAdapter(external.ProviderManagerConfig{
		WeatherAPIKey:     fc.WeatherAPIKey,
		WeatherAPIBaseURL: fc.WeatherAPIBaseURL,
		OpenMeteoBaseURL:  fc.OpenMeteoBaseURL,
		ProviderOrder:     fc.ProviderOrder,
		RequestTimeout:    fc.RequestTimeout,
		Breaker: external.BreakerSettings{
			FailureThreshold: fc.BreakerFailureThreshold,
			OpenTimeout:      fc.BreakerOpenTimeout,
		},
		Client:      client,
		Logger:      c.logger,
		LogRequests: fc.EnableLogging,
	})

	if fc.EnableLogging {
		providerManager = external.NewForecastProviderManagerLoggingDecorator(providerManager, c.logger)
		slog.Info("Forecast provider logging enabled")
	}

	configProvider := infrastructure.NewConfigProviderAdapter(c.config)
	fetcher := external.NewForecastFetcherAdapter(providerManager, configProvider.GetForecastConfig().Query)
	c.refreshMetrics = metrics.NewRefreshMetrics()

	c.ports = &ports.ApplicationPorts{
		ForecastProvider: providerManager,
		ForecastFetcher:  fetcher,
		ForecastStore:    forecastStore,

		CacheProvider: cacheProvider,
		CacheMetrics:  c.cacheMetrics,

		RefreshMetrics: c.refreshMetrics,

		ConfigProvider: configProvider,
		Logger:         c.logger,
		Database:       c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// RefreshMetrics returns the concrete refresh metrics so the metrics endpoint can read its totals
func (c *DependencyContainer) RefreshMetrics() *metrics.RefreshMetrics {
	return c.refreshMetrics
}

// StorePinger returns the store backend if it holds a network connection
func (c *DependencyContainer) StorePinger() infrastructure.Pinger {
	if pinger, ok := c.cacheProvider.(infrastructure.Pinger); ok {
		return pinger
	}
	return nil
}

// StorePurger returns the store backend if it keeps expired rows around
func (c *DependencyContainer) StorePurger() *database.KeyValueStoreAdapter {
	if purger, ok := c.cacheProvider.(*database.KeyValueStoreAdapter); ok {
		return purger
	}
	return nil
}

// Cleanup releases connections and open files
func (c *DependencyContainer) Cleanup() error {
	var firstErr error

	if closer, ok := c.cacheProvider.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c.db != nil {
		if db, err := c.db.DB(); err == nil {
			if err := db.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}

	if c.fileLogger != nil {
		if err := c.fileLogger.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
