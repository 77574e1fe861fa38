// Package api provides HTTP adapters for the hexagonal architecture
// These adapters expose the current forecast display and let callers trigger refresh cycles
package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"weatherforecast.app/internal/ports"
	"weatherforecast.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	controller       ports.RefreshController
	display          ports.ForecastDisplay
	healthChecker    ports.SystemHealthChecker
	metricsCollector ports.MetricsCollector
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	Controller          ports.RefreshController
	Display             ports.ForecastDisplay
	SystemHealthChecker ports.SystemHealthChecker
	MetricsCollector    ports.MetricsCollector
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		controller:       opts.Controller,
		display:          opts.Display,
		healthChecker:    opts.SystemHealthChecker,
		metricsCollector: opts.MetricsCollector,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Controller == nil {
		return errors.NewValidationError("refresh controller is required")
	}
	if opts.Display == nil {
		return errors.NewValidationError("forecast display is required")
	}
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/forecast", s.getForecast)
		api.POST("/refresh", s.triggerRefresh)
		api.GET("/refresh/status", s.getRefreshStatus)
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// GetRouter returns the router so the application can mount it on an http.Server
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}

// Addr returns the listen address for the configured port
func (s *HTTPServerAdapter) Addr() string {
	return fmt.Sprintf(":%d", s.config.Port)
}
