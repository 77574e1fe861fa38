package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherforecast.app/pkg/errors"
)

const openMeteoForecastJSON = `{
	"latitude": 55.75, "longitude": 37.625, "timezone": "Europe/Moscow",
	"current": {"time": "2024-05-01T12:00", "temperature_2m": 14.2, "relative_humidity_2m": 63,
		"apparent_temperature": 13.1, "is_day": 1, "weather_code": 2, "wind_speed_10m": 10.8,
		"wind_direction_10m": 315, "pressure_msl": 1015.2},
	"daily": {
		"time": ["2024-05-01", "2024-05-02"],
		"weather_code": [2, 63],
		"temperature_2m_max": [17.0, 15.0],
		"temperature_2m_min": [9.0, 8.0],
		"wind_speed_10m_max": [18.0, 22.0],
		"precipitation_sum": [0.0, 2.1],
		"precipitation_probability_max": [10, 80],
		"sunrise": ["2024-05-01T04:45", "2024-05-02T04:43"],
		"sunset": ["2024-05-01T20:29", "2024-05-02T20:31"]
	}
}`

func TestOpenMeteoProvider_FetchForecast_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "55.7558", r.URL.Query().Get("latitude"))
		assert.Equal(t, "37.6173", r.URL.Query().Get("longitude"))
		assert.Equal(t, "5", r.URL.Query().Get("forecast_days"))
		assert.Equal(t, "auto", r.URL.Query().Get("timezone"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(openMeteoForecastJSON))
		assert.NoError(t, err)
	}))
	defer server.Close()

	provider := NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{
		BaseURL: server.URL,
		Logger:  setupLoggerMock(t),
	})

	data, err := provider.FetchForecast(context.Background(), moscowQuery)
	require.NoError(t, err)

	assert.Equal(t, "openmeteo", data.Provider)
	assert.Equal(t, "moscow", data.Location.Name)
	assert.Equal(t, "Europe/Moscow", data.Location.Timezone)
	assert.Equal(t, 14.2, data.Current.TemperatureC)
	assert.Equal(t, "NW", data.Current.WindDirection)
	assert.Equal(t, "Partly cloudy", data.Current.Condition.Text)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), data.Current.LastUpdated)

	require.Len(t, data.Days, 2)
	assert.Equal(t, "Rain", data.Days[1].Condition.Text)
	assert.Equal(t, 63, data.Days[1].Condition.Code)
	assert.Equal(t, 11.5, data.Days[1].AvgTempC)
	assert.Equal(t, 80, data.Days[1].ChanceOfRain)
	assert.Equal(t, "04:43", data.Days[1].Sunrise)
	assert.Equal(t, "20:31", data.Days[1].Sunset)
}

func TestOpenMeteoProvider_FetchForecast_Failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected errors.ErrorType
	}{
		{"BadGateway", http.StatusBadGateway, `{}`, errors.ErrorTypeServerUnavailable},
		{"BadRequest", http.StatusBadRequest, `{"error": true, "reason": "bad latitude"}`, errors.ErrorTypeInvalidResponse},
		{"NoDaily", http.StatusOK, `{"current": {"time": "2024-05-01T12:00"}, "daily": {"time": []}}`, errors.ErrorTypeDecoding},
		{"MismatchedSeries", http.StatusOK, `{"current": {"time": "2024-05-01T12:00"}, "daily": {"time": ["2024-05-01"], "weather_code": []}}`, errors.ErrorTypeDecoding},
		{"BadCurrentTime", http.StatusOK, `{"current": {"time": "noon"}, "daily": {"time": ["2024-05-01"], "weather_code": [0], "temperature_2m_max": [1], "temperature_2m_min": [0]}}`, errors.ErrorTypeDecoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			provider := NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{BaseURL: server.URL})

			_, err := provider.FetchForecast(context.Background(), moscowQuery)
			assert.Equal(t, tt.expected, errors.TypeOf(err), "got %v", err)
		})
	}
}

func TestOpenMeteoProvider_FetchForecast_InvalidCoordinates(t *testing.T) {
	provider := NewOpenMeteoProviderAdapter(OpenMeteoProviderParams{BaseURL: "https://api.open-meteo.com/v1"})

	query := moscowQuery
	query.Latitude = 91

	_, err := provider.FetchForecast(context.Background(), query)
	assert.Equal(t, errors.ErrorTypeInvalidRequest, errors.TypeOf(err))
}

func TestWeatherCodeCondition(t *testing.T) {
	tests := map[int]string{
		0:  "Clear sky",
		3:  "Overcast",
		45: "Fog",
		53: "Drizzle",
		81: "Rain",
		75: "Snow",
		99: "Thunderstorm",
		42: "Unknown",
	}

	for code, expected := range tests {
		assert.Equal(t, expected, weatherCodeCondition(code).Text, "code %d", code)
	}
}

func TestCompassPoint(t *testing.T) {
	assert.Equal(t, "N", compassPoint(0))
	assert.Equal(t, "N", compassPoint(350))
	assert.Equal(t, "E", compassPoint(90))
	assert.Equal(t, "SW", compassPoint(225))
}
