package external

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/sony/gobreaker"
	"weatherforecast.app/internal/ports"
	"weatherforecast.app/pkg/errors"
)

// BreakerSettings configures the circuit placed in front of a provider
type BreakerSettings struct {
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// BreakerProviderDecorator guards a forecast provider with a circuit breaker.
// While the circuit is open calls fail fast with a ServerUnavailable error.
type BreakerProviderDecorator struct {
	provider ports.ForecastProvider
	breaker  *gobreaker.CircuitBreaker
	logger   ports.Logger
}

func NewBreakerProviderDecorator(provider ports.ForecastProvider, settings BreakerSettings, logger ports.Logger) *BreakerProviderDecorator {
	threshold := settings.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	name := provider.GetProviderName()

	d := &BreakerProviderDecorator{provider: provider, logger: logger}
	d.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if d.logger != nil {
				d.logger.Warn("Provider circuit state changed",
					ports.F("provider", name),
					ports.F("from", from.String()),
					ports.F("to", to.String()))
			}
		},
	})

	return d
}

func (d *BreakerProviderDecorator) FetchForecast(ctx context.Context, query ports.ForecastQuery) (*ports.ForecastData, error) {
	result, err := d.breaker.Execute(func() (interface{}, error) {
		return d.provider.FetchForecast(ctx, query)
	})
	if err != nil {
		if stderrors.Is(err, gobreaker.ErrOpenState) || stderrors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, errors.NewServerUnavailableError(d.provider.GetProviderName()+" circuit is open", err)
		}
		return nil, err
	}

	data, _ := result.(*ports.ForecastData)
	return data, nil
}

func (d *BreakerProviderDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

// State reports the circuit state: closed, half-open or open
func (d *BreakerProviderDecorator) State() string {
	return d.breaker.State().String()
}
