package external

import (
	"context"
	"fmt"
	"time"

	"weatherforecast.app/internal/ports"
	"weatherforecast.app/pkg/errors"
)

var defaultProviderOrder = []string{providerWeatherAPI, providerOpenMeteo}

// ForecastProviderManagerAdapter implements Chain of Responsibility pattern for forecast providers.
// Each provider is tried once per call; retries belong to the refresh orchestrator.
type ForecastProviderManagerAdapter struct {
	providers []ports.ForecastProvider
	logger    ports.Logger
}

// ProviderManagerConfig holds configuration for creating the provider manager
type ProviderManagerConfig struct {
	WeatherAPIKey     string
	WeatherAPIBaseURL string
	OpenMeteoBaseURL  string
	ProviderOrder     []string
	RequestTimeout    time.Duration
	Breaker           BreakerSettings
	Client            HTTPClient
	Logger            ports.Logger
	// LogRequests wraps every provider in a ForecastProviderLoggingDecorator
	LogRequests bool
}

// NewForecastProviderManagerAdapter builds the configured providers, each behind its own circuit breaker
func NewForecastProviderManagerAdapter(config ProviderManagerConfig) *ForecastProviderManagerAdapter {
	manager := &ForecastProviderManagerAdapter{logger: config.Logger}

	providerMap := manager.createProviderMap(config)

	order := config.ProviderOrder
	if len(order) == 0 {
		order = defaultProviderOrder
	}
	for _, providerName := range order {
		if provider, exists := providerMap[providerName]; exists {
			if config.LogRequests && config.Logger != nil {
				provider = NewForecastProviderLoggingDecorator(provider, config.Logger)
			}
			manager.providers = append(manager.providers,
				NewBreakerProviderDecorator(provider, config.Breaker, config.Logger))
		} else if manager.logger != nil {
			manager.logger.Warn("Skipping unavailable forecast provider", ports.F("provider", providerName))
		}
	}

	return manager
}

// NewForecastProviderManagerWithProviders chains already constructed providers in the given order
func NewForecastProviderManagerWithProviders(providers []ports.ForecastProvider, logger ports.Logger) *ForecastProviderManagerAdapter {
	return &ForecastProviderManagerAdapter{providers: providers, logger: logger}
}

func (m *ForecastProviderManagerAdapter) createProviderMap(config ProviderManagerConfig) map[string]ports.ForecastProvider {
	providers := make(map[string]ports.ForecastProvider)

	if config.WeatherAPIKey != "" {
		providers[providerWeatherAPI] = NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{
			APIKey:  config.WeatherAPIKey,
			BaseURL: config.WeatherAPIBaseURL,
			Timeout: config.RequestTimeout,
			Client:  config.Client,
			Logger:  m.logger,
		})
		if m.logger != nil {
			m.logger.Debug("Created WeatherAPI provider", ports.F("provider", providerWeatherAPI))
		}
	}

	if config.OpenMeteoBaseURL != "" {
		providers[providerOpenMeteo] = NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{
			BaseURL: config.OpenMeteoBaseURL,
			Timeout: config.RequestTimeout,
			Client:  config.Client,
			Logger:  m.logger,
		})
		if m.logger != nil {
			m.logger.Debug("Created Open-Meteo provider", ports.F("provider", providerOpenMeteo))
		}
	}

	return providers
}

// FetchForecast tries each provider until one succeeds. The last provider error is kept in the chain.
func (m *ForecastProviderManagerAdapter) FetchForecast(ctx context.Context, query ports.ForecastQuery) (*ports.ForecastData, error) {
	if len(m.providers) == 0 {
		return nil, errors.NewInvalidRequestError("no forecast providers configured", nil)
	}

	var lastErr error

	for i, provider := range m.providers {
		if ctx.Err() != nil {
			break
		}

		providerName := provider.GetProviderName()
		if m.logger != nil {
			m.logger.Debug("Trying forecast provider",
				ports.F("provider", providerName),
				ports.F("attempt", i+1),
				ports.F("city", query.City))
		}

		data, err := provider.FetchForecast(ctx, query)
		if err == nil {
			return data, nil
		}

		lastErr = err
		if m.logger != nil {
			m.logger.Warn("Forecast provider failed, trying next",
				ports.F("provider", providerName),
				ports.F("error", err.Error()),
				ports.F("city", query.City))
		}
	}

	if lastErr == nil {
		return nil, errors.NewTimeoutError("forecast request cancelled before any provider answered", ctx.Err())
	}

	if m.logger != nil {
		m.logger.Error("All forecast providers failed",
			ports.F("city", query.City),
			ports.F("providers_tried", len(m.providers)),
			ports.F("last_error", lastErr.Error()))
	}

	return nil, fmt.Errorf("all forecast providers failed (tried %d providers): %w", len(m.providers), lastErr)
}

// GetProviderInfo returns information about configured providers
func (m *ForecastProviderManagerAdapter) GetProviderInfo() map[string]interface{} {
	providerNames := make([]string, len(m.providers))
	circuits := make(map[string]string)
	for i, provider := range m.providers {
		providerNames[i] = provider.GetProviderName()
		if guarded, ok := provider.(*BreakerProviderDecorator); ok {
			circuits[guarded.GetProviderName()] = guarded.State()
		}
	}

	return map[string]interface{}{
		"total_providers":  len(m.providers),
		"provider_order":   providerNames,
		"chain_enabled":    true,
		"fallback_enabled": len(m.providers) > 1,
		"circuit_states":   circuits,
	}
}

// ForecastFetcherAdapter binds the provider chain to the single tracked location
type ForecastFetcherAdapter struct {
	manager ports.ForecastProviderManager
	query   ports.ForecastQuery
}

func NewForecastFetcherAdapter(manager ports.ForecastProviderManager, query ports.ForecastQuery) *ForecastFetcherAdapter {
	return &ForecastFetcherAdapter{manager: manager, query: query}
}

func (f *ForecastFetcherAdapter) Fetch(ctx context.Context) (*ports.ForecastData, error) {
	return f.manager.FetchForecast(ctx, f.query)
}

var (
	_ ports.ForecastProviderManager = (*ForecastProviderManagerAdapter)(nil)
	_ ports.ForecastFetcher         = (*ForecastFetcherAdapter)(nil)
	_ ports.ForecastProvider        = (*BreakerProviderDecorator)(nil)
	_ ports.ForecastProvider        = (*WeatherAPIProviderAdapter)(nil)
	_ ports.ForecastProvider        = (*OpenMeteoProviderAdapter)(nil)
)
