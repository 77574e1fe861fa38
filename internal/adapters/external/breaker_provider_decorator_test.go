package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherforecast.app/internal/mocks"
	"weatherforecast.app/pkg/errors"
)

func TestBreakerProviderDecorator_PassesThrough(t *testing.T) {
	provider := mocks.NewForecastProvider(t)
	provider.EXPECT().GetProviderName().Return("weatherapi").Maybe()
	provider.EXPECT().FetchForecast(mock.Anything, moscowQuery).Return(sampleForecast("weatherapi"), nil).Once()

	decorator := NewBreakerProviderDecorator(provider, BreakerSettings{FailureThreshold: 2, OpenTimeout: time.Minute}, setupLoggerMock(t))

	data, err := decorator.FetchForecast(context.Background(), moscowQuery)
	require.NoError(t, err)
	assert.Equal(t, "weatherapi", data.Provider)
	assert.Equal(t, "closed", decorator.State())
	assert.Equal(t, "weatherapi", decorator.GetProviderName())
}

func TestBreakerProviderDecorator_OpensAfterConsecutiveFailures(t *testing.T) {
	upstream := errors.NewServerUnavailableError("weatherapi returned status 503", nil)

	provider := mocks.NewForecastProvider(t)
	provider.EXPECT().GetProviderName().Return("weatherapi").Maybe()
	provider.EXPECT().FetchForecast(mock.Anything, moscowQuery).Return(nil, upstream).Times(2)

	decorator := NewBreakerProviderDecorator(provider, BreakerSettings{FailureThreshold: 2, OpenTimeout: time.Minute}, setupLoggerMock(t))

	for i := 0; i < 2; i++ {
		_, err := decorator.FetchForecast(context.Background(), moscowQuery)
		assert.Same(t, upstream, err)
	}
	assert.Equal(t, "open", decorator.State())

	_, err := decorator.FetchForecast(context.Background(), moscowQuery)
	assert.Equal(t, errors.ErrorTypeServerUnavailable, errors.TypeOf(err))
	assert.Contains(t, err.Error(), "circuit is open")
}

func TestBreakerProviderDecorator_SuccessResetsFailureStreak(t *testing.T) {
	upstream := errors.NewTimeoutError("weatherapi request timed out", nil)

	provider := mocks.NewForecastProvider(t)
	provider.EXPECT().GetProviderName().Return("weatherapi").Maybe()
	provider.EXPECT().FetchForecast(mock.Anything, moscowQuery).Return(nil, upstream).Once()
	provider.EXPECT().FetchForecast(mock.Anything, moscowQuery).Return(sampleForecast("weatherapi"), nil).Once()
	provider.EXPECT().FetchForecast(mock.Anything, moscowQuery).Return(nil, upstream).Once()

	decorator := NewBreakerProviderDecorator(provider, BreakerSettings{FailureThreshold: 2, OpenTimeout: time.Minute}, setupLoggerMock(t))

	for i := 0; i < 3; i++ {
		_, _ = decorator.FetchForecast(context.Background(), moscowQuery)
	}
	assert.Equal(t, "closed", decorator.State())
}
