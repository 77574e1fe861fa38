package external

import (
	"context"
	"time"

	"weatherforecast.app/internal/ports"
)

// ForecastProviderLoggingDecorator decorates forecast providers with structured logging
type ForecastProviderLoggingDecorator struct {
	provider ports.ForecastProvider
	logger   ports.Logger
}

func NewForecastProviderLoggingDecorator(provider ports.ForecastProvider, logger ports.Logger) *ForecastProviderLoggingDecorator {
	return &ForecastProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// FetchForecast wraps the provider call with structured logging
func (d *ForecastProviderLoggingDecorator) FetchForecast(ctx context.Context, query ports.ForecastQuery) (*ports.ForecastData, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Forecast API request started",
		ports.F("provider", providerName),
		ports.F("city", query.City),
		ports.F("event", "request"))

	startTime := time.Now()
	data, err := d.provider.FetchForecast(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Forecast API request failed",
			ports.F("provider", providerName),
			ports.F("city", query.City),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Forecast API request completed",
		ports.F("provider", providerName),
		ports.F("city", query.City),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("temperature", data.Current.TemperatureC),
		ports.F("days", len(data.Days)))

	return data, nil
}

func (d *ForecastProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

// ForecastProviderManagerLoggingDecorator decorates the provider manager with logging
type ForecastProviderManagerLoggingDecorator struct {
	manager ports.ForecastProviderManager
	logger  ports.Logger
}

func NewForecastProviderManagerLoggingDecorator(manager ports.ForecastProviderManager, logger ports.Logger) *ForecastProviderManagerLoggingDecorator {
	return &ForecastProviderManagerLoggingDecorator{
		manager: manager,
		logger:  logger,
	}
}

// FetchForecast wraps the chain call with structured logging
func (d *ForecastProviderManagerLoggingDecorator) FetchForecast(ctx context.Context, query ports.ForecastQuery) (*ports.ForecastData, error) {
	d.logger.Info("Forecast provider chain started",
		ports.F("city", query.City),
		ports.F("event", "chain_start"))

	startTime := time.Now()
	data, err := d.manager.FetchForecast(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Forecast provider chain failed",
			ports.F("city", query.City),
			ports.F("event", "chain_error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Forecast provider chain completed",
		ports.F("city", query.City),
		ports.F("event", "chain_success"),
		ports.F("provider", data.Provider),
		ports.F("duration_ms", duration.Milliseconds()))

	return data, nil
}

func (d *ForecastProviderManagerLoggingDecorator) GetProviderInfo() map[string]interface{} {
	info := d.manager.GetProviderInfo()
	info["logging_enabled"] = true
	return info
}

var (
	_ ports.ForecastProvider        = (*ForecastProviderLoggingDecorator)(nil)
	_ ports.ForecastProviderManager = (*ForecastProviderManagerLoggingDecorator)(nil)
)
