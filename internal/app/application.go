package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatherforecast.app/internal/adapters/api"
	"weatherforecast.app/internal/adapters/infrastructure"
	"weatherforecast.app/internal/config"
	"weatherforecast.app/internal/core/display"
	"weatherforecast.app/internal/core/refresh"
	"weatherforecast.app/internal/ports"
	"weatherforecast.app/internal/scheduler"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer
	ports  *ports.ApplicationPorts

	// Core
	presenter    *display.Presenter
	orchestrator *refresh.Orchestrator

	// Adapters
	scheduler  *scheduler.RefreshScheduler
	router     *gin.Engine
	httpServer *http.Server
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg, DependencyOptions{})
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeCore(); err != nil {
		return nil, fmt.Errorf("initialize core: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		app.orchestrator.Close()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeCore() error {
	slog.Info("Initializing refresh core...")

	presenter, err := display.NewPresenter(a.ports.Logger)
	if err != nil {
		return fmt.Errorf("create presenter: %w", err)
	}
	a.presenter = presenter

	orchestrator, err := refresh.NewOrchestrator(refresh.Dependencies{
		Fetcher:  a.ports.ForecastFetcher,
		Store:    a.ports.ForecastStore,
		Listener: presenter,
		Config:   a.ports.ConfigProvider,
		Logger:   a.ports.Logger,
		Metrics:  a.ports.RefreshMetrics,
	})
	if err != nil {
		return fmt.Errorf("create refresh orchestrator: %w", err)
	}
	a.orchestrator = orchestrator

	slog.Info("Refresh core initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	if err := api.RegisterValidators(); err != nil {
		slog.Warn("Failed to register trigger validator", "error", err)
	}

	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		CacheMetrics:   a.ports.CacheMetrics,
		RefreshMetrics: a.deps.RefreshMetrics(),
		Providers:      a.ports.ForecastProvider,
		Controller:     a.orchestrator,
	})

	healthConfig := infrastructure.SystemHealthCheckerConfig{
		StoreChecker: infrastructure.NewStoreHealthChecker(
			a.config.Store.Type.String(), a.ports.ForecastStore, a.deps.StorePinger()),
		ProviderChecker: infrastructure.NewProviderHealthChecker(a.ports.ForecastProvider),
		RefreshChecker:  infrastructure.NewRefreshHealthChecker(a.orchestrator, a.presenter),
		ConfigProvider:  a.ports.ConfigProvider,
	}
	if db := a.deps.Database(); db != nil {
		healthConfig.DatabaseChecker = infrastructure.NewDatabaseHealthChecker(db)
	}
	systemHealthChecker := infrastructure.NewSystemHealthChecker(healthConfig)

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config:              api.ServerConfig{Port: a.config.Server.Port},
		Controller:          a.orchestrator,
		Display:             a.presenter,
		SystemHealthChecker: systemHealthChecker,
		MetricsCollector:    metricsCollector,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()
	a.httpServer = &http.Server{
		Addr:         httpAdapter.Addr(),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if a.config.Scheduler.Enabled {
		schedulerConfig := scheduler.Config{
			Controller: a.orchestrator,
			Interval:   a.config.Scheduler.Interval,
			Logger:     a.ports.Logger,
		}
		if purger := a.deps.StorePurger(); purger != nil {
			schedulerConfig.Purger = purger
		}
		refreshScheduler, err := scheduler.NewRefreshScheduler(schedulerConfig)
		if err != nil {
			return fmt.Errorf("create scheduler: %w", err)
		}
		a.scheduler = refreshScheduler
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start runs the initial refresh, starts the scheduler and blocks serving HTTP
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	a.orchestrator.Refresh()

	if a.scheduler != nil {
		if err := a.scheduler.Start(); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
	}

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if a.scheduler != nil {
		a.scheduler.Stop()
	}

	var shutdownErr error
	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		shutdownErr = fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.orchestrator.Close()

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return shutdownErr
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// Refresher returns the refresh controller driving the display
func (a *Application) Refresher() ports.RefreshController {
	return a.orchestrator
}
