package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherforecast.app/internal/ports"
	"weatherforecast.app/pkg/errors"
)

const weatherAPIForecastJSON = `{
	"location": {"name": "Moscow", "region": "Moscow City", "country": "Russia", "lat": 55.75, "lon": 37.62, "tz_id": "Europe/Moscow"},
	"current": {
		"last_updated_epoch": 1714564800,
		"temp_c": 14.2, "feelslike_c": 13.1, "humidity": 63, "wind_kph": 10.8, "wind_dir": "NW",
		"pressure_mb": 1015, "is_day": 1,
		"condition": {"text": "Sunny", "icon": "//cdn.weatherapi.com/weather/64x64/day/113.png", "code": 1000}
	},
	"forecast": {"forecastday": [
		{"date": "2024-05-01", "day": {"maxtemp_c": 17.0, "mintemp_c": 9.0, "avgtemp_c": 13.0, "maxwind_kph": 18.0,
			"totalprecip_mm": 0.0, "daily_chance_of_rain": 10, "condition": {"text": "Sunny", "code": 1000}},
			"astro": {"sunrise": "04:45 AM", "sunset": "08:29 PM"}},
		{"date": "2024-05-02", "day": {"maxtemp_c": 15.0, "mintemp_c": 8.0, "avgtemp_c": 11.5, "maxwind_kph": 22.0,
			"totalprecip_mm": 2.1, "daily_chance_of_rain": 80, "condition": {"text": "Patchy rain nearby", "code": 1063}},
			"astro": {"sunrise": "04:43 AM", "sunset": "08:31 PM"}}
	]}
}`

var moscowQuery = ports.ForecastQuery{City: "moscow", Latitude: 55.7558, Longitude: 37.6173, Days: 5}

func newWeatherAPITestServer(t *testing.T, status int, body string) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast.json", r.URL.Path)
		assert.Equal(t, "test-api-key", r.URL.Query().Get("key"))
		assert.Equal(t, "moscow", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("days"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, err := w.Write([]byte(body))
		assert.NoError(t, err)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestWeatherAPIProvider_FetchForecast_Success(t *testing.T) {
	server := newWeatherAPITestServer(t, http.StatusOK, weatherAPIForecastJSON)

	provider := NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
		Logger:  setupLoggerMock(t),
	})

	data, err := provider.FetchForecast(context.Background(), moscowQuery)
	require.NoError(t, err)

	assert.Equal(t, "weatherapi", data.Provider)
	assert.Equal(t, "Moscow", data.Location.Name)
	assert.Equal(t, "Europe/Moscow", data.Location.Timezone)
	assert.Equal(t, 14.2, data.Current.TemperatureC)
	assert.Equal(t, 63, data.Current.Humidity)
	assert.True(t, data.Current.IsDay)
	assert.Equal(t, 1000, data.Current.Condition.Code)
	assert.Equal(t, time.Unix(1714564800, 0).UTC(), data.Current.LastUpdated)
	require.Len(t, data.Days, 2)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), data.Days[1].Date)
	assert.Equal(t, 80, data.Days[1].ChanceOfRain)
	assert.Equal(t, "08:31 PM", data.Days[1].Sunset)
	assert.False(t, data.FetchedAt.IsZero())
}

func TestWeatherAPIProvider_FetchForecast_Failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected errors.ErrorType
	}{
		{"ServiceUnavailable", http.StatusServiceUnavailable, `{"error":{"code":9999}}`, errors.ErrorTypeServerUnavailable},
		{"Unauthorized", http.StatusUnauthorized, `{"error":{"code":2006}}`, errors.ErrorTypeInvalidResponse},
		{"TruncatedPayload", http.StatusOK, `{"location": {"name": "Moscow"`, errors.ErrorTypeDecoding},
		{"NoForecastDays", http.StatusOK, `{"location": {"name": "Moscow"}, "forecast": {"forecastday": []}}`, errors.ErrorTypeDecoding},
		{"BadDate", http.StatusOK, `{"forecast": {"forecastday": [{"date": "01/05/2024"}]}}`, errors.ErrorTypeDecoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newWeatherAPITestServer(t, tt.status, tt.body)

			provider := NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{
				APIKey:  "test-api-key",
				BaseURL: server.URL,
				Logger:  setupLoggerMock(t),
			})

			data, err := provider.FetchForecast(context.Background(), moscowQuery)
			assert.Nil(t, data)
			assert.Equal(t, tt.expected, errors.TypeOf(err), "got %v", err)
		})
	}
}

func TestWeatherAPIProvider_FetchForecast_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	provider := NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
		Timeout: 50 * time.Millisecond,
		Logger:  setupLoggerMock(t),
	})

	_, err := provider.FetchForecast(context.Background(), moscowQuery)
	assert.Equal(t, errors.ErrorTypeTimeout, errors.TypeOf(err), "got %v", err)
}

func TestWeatherAPIProvider_FetchForecast_InvalidRequest(t *testing.T) {
	tests := []struct {
		name   string
		params WeatherAPIProviderParams
		query  ports.ForecastQuery
	}{
		{"EmptyCity", WeatherAPIProviderParams{APIKey: "k", BaseURL: "https://api.weatherapi.com/v1"}, ports.ForecastQuery{Days: 5}},
		{"MissingKey", WeatherAPIProviderParams{BaseURL: "https://api.weatherapi.com/v1"}, moscowQuery},
		{"RelativeBaseURL", WeatherAPIProviderParams{APIKey: "k", BaseURL: "api.weatherapi.com/v1"}, moscowQuery},
		{"MalformedBaseURL", WeatherAPIProviderParams{APIKey: "k", BaseURL: "http://[::1"}, moscowQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewWeatherAPIProviderAdapter(tt.params)

			_, err := provider.FetchForecast(context.Background(), tt.query)
			assert.Equal(t, errors.ErrorTypeInvalidRequest, errors.TypeOf(err), "got %v", err)
		})
	}
}

func TestWeatherAPIProvider_GetProviderName(t *testing.T) {
	provider := NewWeatherAPIProviderAdapter(WeatherAPIProviderParams{})
	assert.Equal(t, "weatherapi", provider.GetProviderName())
}
