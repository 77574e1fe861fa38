package ports

import (
	"context"
	"time"
)

// LocationData identifies the place a forecast was produced for
type LocationData struct {
	Name      string  `json:"name"`
	Region    string  `json:"region,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Timezone  string  `json:"tz_id,omitempty"`
}

// ConditionData is a provider-neutral weather condition
type ConditionData struct {
	Text string `json:"text"`
	Code int    `json:"code"`
	Icon string `json:"icon,omitempty"`
}

// CurrentData represents current conditions
type CurrentData struct {
	TemperatureC  float64       `json:"temp_c"`
	FeelsLikeC    float64       `json:"feelslike_c"`
	Humidity      int           `json:"humidity"`
	WindKPH       float64       `json:"wind_kph"`
	WindDirection string        `json:"wind_dir,omitempty"`
	PressureMB    float64       `json:"pressure_mb"`
	IsDay         bool          `json:"is_day"`
	Condition     ConditionData `json:"condition"`
	LastUpdated   time.Time     `json:"last_updated"`
}

// DayData represents one forecast day
type DayData struct {
	Date          time.Time     `json:"date"`
	MaxTempC      float64       `json:"maxtemp_c"`
	MinTempC      float64       `json:"mintemp_c"`
	AvgTempC      float64       `json:"avgtemp_c"`
	MaxWindKPH    float64       `json:"maxwind_kph"`
	TotalPrecipMM float64       `json:"totalprecip_mm"`
	ChanceOfRain  int           `json:"daily_chance_of_rain"`
	Condition     ConditionData `json:"condition"`
	Sunrise       string        `json:"sunrise,omitempty"`
	Sunset        string        `json:"sunset,omitempty"`
}

// ForecastData is the payload of one successful fetch
type ForecastData struct {
	Location  LocationData `json:"location"`
	Current   CurrentData  `json:"current"`
	Days      []DayData    `json:"days"`
	Provider  string       `json:"provider"`
	FetchedAt time.Time    `json:"fetched_at"`
}

// CachedForecast is the last successfully fetched forecast and the time it was saved
type CachedForecast struct {
	ID       string       `json:"id"`
	Forecast ForecastData `json:"forecast"`
	SavedAt  time.Time    `json:"saved_at"`
}

// ForecastQuery describes the single location being tracked
type ForecastQuery struct {
	City      string
	Latitude  float64
	Longitude float64
	Days      int
}

// ForecastProvider performs exactly one remote fetch attempt.
// Failures are returned as *errors.AppError with a transport error type.
type ForecastProvider interface {
	FetchForecast(ctx context.Context, query ForecastQuery) (*ForecastData, error)
	GetProviderName() string
}

// ForecastProviderManager defines the contract for managing multiple forecast providers
type ForecastProviderManager interface {
	FetchForecast(ctx context.Context, query ForecastQuery) (*ForecastData, error)
	GetProviderInfo() map[string]interface{}
}

// ForecastFetcher fetches the forecast for the configured location
type ForecastFetcher interface {
	Fetch(ctx context.Context) (*ForecastData, error)
}

// ForecastStore is a durable single-slot store of the last successful fetch.
// LoadLast returns a NotFound AppError when nothing has been saved yet.
type ForecastStore interface {
	Save(ctx context.Context, forecast *ForecastData) error
	LoadLast(ctx context.Context) (*CachedForecast, error)
}
