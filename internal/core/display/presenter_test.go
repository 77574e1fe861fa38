package display

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherforecast.app/internal/core/forecast"
	"weatherforecast.app/internal/core/refresh"
	"weatherforecast.app/internal/mocks"
	"weatherforecast.app/pkg/errors"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestPresenter(t *testing.T) *Presenter {
	logger := mocks.NewLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Debug(mock.Anything, mock.Anything, mock.Anything).Maybe()

	p, err := NewPresenter(logger)
	require.NoError(t, err)
	p.now = func() time.Time { return base }
	return p
}

func snapshot(provider string, fetchedAt time.Time) forecast.Snapshot {
	return forecast.Snapshot{
		Location:  forecast.Location{Name: "Moscow"},
		Current:   forecast.Current{TemperatureC: 10, Humidity: 50},
		Days:      []forecast.Day{{MinTempC: 5, MaxTempC: 12}},
		Provider:  provider,
		FetchedAt: fetchedAt,
	}
}

func TestNewPresenter_RequiresLogger(t *testing.T) {
	p, err := NewPresenter(nil)
	assert.Nil(t, p)
	assert.True(t, errors.IsValidationError(err))
}

func TestPresenter_InitialStateIsEmpty(t *testing.T) {
	p := newTestPresenter(t)
	state := p.Current()
	assert.Nil(t, state.Forecast)
	assert.Empty(t, state.Source)
	assert.Empty(t, state.Error)
}

func TestPresenter_CachedThenFresh(t *testing.T) {
	p := newTestPresenter(t)

	p.OnCachedData(forecast.CachedSnapshot{
		ID:       "c1",
		Snapshot: snapshot("weatherapi", base.Add(-20*time.Minute)),
		SavedAt:  base.Add(-20 * time.Minute),
	}, false)

	state := p.Current()
	require.NotNil(t, state.Forecast)
	assert.Equal(t, SourceCached, state.Source)
	assert.Equal(t, "Last updated: 01 May 2024 11:40", state.Notice)
	require.NotNil(t, state.SavedAt)

	p.OnFreshData(snapshot("openmeteo", base))

	state = p.Current()
	assert.Equal(t, SourceFresh, state.Source)
	assert.Equal(t, "openmeteo", state.Forecast.Provider)
	assert.Empty(t, state.Notice)
	assert.Nil(t, state.SavedAt)
}

func TestPresenter_OlderCachedNeverOverwritesFresh(t *testing.T) {
	p := newTestPresenter(t)

	p.OnFreshData(snapshot("openmeteo", base))
	p.OnCachedData(forecast.CachedSnapshot{
		Snapshot: snapshot("weatherapi", base.Add(-time.Hour)),
		SavedAt:  base.Add(-time.Hour),
	}, false)

	state := p.Current()
	assert.Equal(t, SourceFresh, state.Source)
	assert.Equal(t, "openmeteo", state.Forecast.Provider)
	assert.Empty(t, state.Notice)
}

func TestPresenter_SilentCachedHasNoNotice(t *testing.T) {
	p := newTestPresenter(t)

	p.OnCachedData(forecast.CachedSnapshot{
		Snapshot: snapshot("weatherapi", base.Add(-time.Minute)),
		SavedAt:  base.Add(-time.Minute),
	}, true)

	state := p.Current()
	assert.Equal(t, SourceCached, state.Source)
	assert.Empty(t, state.Notice)
}

func TestPresenter_NoCachedDataIsNotABanner(t *testing.T) {
	p := newTestPresenter(t)

	p.OnError(errors.NewNoCachedDataError("no cached forecast available", nil))

	assert.Empty(t, p.Current().Error)
}

func TestPresenter_ErrorKeepsDisplayedData(t *testing.T) {
	p := newTestPresenter(t)

	p.OnCachedData(forecast.CachedSnapshot{
		Snapshot: snapshot("weatherapi", base.Add(-time.Hour)),
		SavedAt:  base.Add(-time.Hour),
	}, false)
	p.OnError(errors.NewTimeoutError("timed out", nil))

	state := p.Current()
	assert.Equal(t, refresh.MessageTimeout, state.Error)
	assert.NotNil(t, state.Forecast)
	assert.NotEmpty(t, state.Notice)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, refresh.MessageDecoding,
		ErrorMessage(errors.NewDisplayError(refresh.MessageDecoding, errors.NewDecodingError("x", nil))))
	assert.Equal(t, refresh.MessageNoConnectivity, ErrorMessage(errors.NewNoConnectivityError("offline", nil)))
	assert.Equal(t, refresh.MessageUnknown, ErrorMessage(stderrors.New("boom")))
}
