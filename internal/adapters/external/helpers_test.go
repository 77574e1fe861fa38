package external

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"weatherforecast.app/internal/mocks"
	"weatherforecast.app/internal/ports"
)

// setupLoggerMock allows any structured log call with up to five fields
func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)

	for arity := 1; arity <= 6; arity++ {
		args := make([]interface{}, arity)
		for i := range args {
			args[i] = mock.Anything
		}
		mockLogger.EXPECT().Debug(args[0], args[1:]...).Maybe()
		mockLogger.EXPECT().Info(args[0], args[1:]...).Maybe()
		mockLogger.EXPECT().Warn(args[0], args[1:]...).Maybe()
		mockLogger.EXPECT().Error(args[0], args[1:]...).Maybe()
	}

	return mockLogger
}

func sampleForecast(provider string) *ports.ForecastData {
	return &ports.ForecastData{
		Location: ports.LocationData{Name: "Moscow", Country: "Russia", Latitude: 55.75, Longitude: 37.62},
		Current: ports.CurrentData{
			TemperatureC: 14.2,
			Humidity:     63,
			WindKPH:      10.8,
			Condition:    ports.ConditionData{Text: "Sunny", Code: 1000},
		},
		Days: []ports.DayData{
			{Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), MinTempC: 9, MaxTempC: 17, ChanceOfRain: 10},
		},
		Provider:  provider,
		FetchedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}
