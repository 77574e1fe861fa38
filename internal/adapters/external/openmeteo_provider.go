package external

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weatherforecast.app/internal/ports"
	"weatherforecast.app/pkg/errors"
)

const (
	providerOpenMeteo      = "openmeteo"
	openMeteoDateLayout    = "2006-01-02"
	openMeteoTimeLayout    = "2006-01-02T15:04"
	openMeteoCurrentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,is_day,weather_code,wind_speed_10m,wind_direction_10m,pressure_msl"
	openMeteoDailyFields   = "weather_code,temperature_2m_max,temperature_2m_min,wind_speed_10m_max,precipitation_sum,precipitation_probability_max,sunrise,sunset"
)

// OpenMeteoProviderAdapter implements ForecastProvider port for the keyless Open-Meteo API.
// It resolves the location from the configured coordinates, not the city name.
type OpenMeteoProviderAdapter struct {
	baseURL string
	timeout time.Duration
	client  HTTPClient
	logger  ports.Logger
}

type OpenMeteoProviderParams struct {
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

// OpenMeteoResponse represents the /forecast response with current and daily blocks
type OpenMeteoResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Current   struct {
		Time                string  `json:"time"`
		Temperature         float64 `json:"temperature_2m"`
		RelativeHumidity    int     `json:"relative_humidity_2m"`
		ApparentTemperature float64 `json:"apparent_temperature"`
		IsDay               int     `json:"is_day"`
		WeatherCode         int     `json:"weather_code"`
		WindSpeed           float64 `json:"wind_speed_10m"`
		WindDirection       float64 `json:"wind_direction_10m"`
		PressureMSL         float64 `json:"pressure_msl"`
	} `json:"current"`
	Daily struct {
		Time                     []string  `json:"time"`
		WeatherCode              []int     `json:"weather_code"`
		TemperatureMax           []float64 `json:"temperature_2m_max"`
		TemperatureMin           []float64 `json:"temperature_2m_min"`
		WindSpeedMax             []float64 `json:"wind_speed_10m_max"`
		PrecipitationSum         []float64 `json:"precipitation_sum"`
		PrecipitationProbability []int     `json:"precipitation_probability_max"`
		Sunrise                  []string  `json:"sunrise"`
		Sunset                   []string  `json:"sunset"`
	} `json:"daily"`
}

func NewOpenMeteoProviderAdapter(params OpenMeteoProviderParams) *OpenMeteoProviderAdapter {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	client := params.Client
	if client == nil {
		client = &http.Client{}
	}

	return &OpenMeteoProviderAdapter{
		baseURL: params.BaseURL,
		timeout: timeout,
		client:  client,
		logger:  params.Logger,
	}
}

func (p *OpenMeteoProviderAdapter) FetchForecast(ctx context.Context, query ports.ForecastQuery) (*ports.ForecastData, error) {
	if query.Latitude < -90 || query.Latitude > 90 || query.Longitude < -180 || query.Longitude > 180 {
		return nil, errors.NewInvalidRequestError("coordinates are out of range", nil)
	}

	endpoint, err := p.buildURL(query)
	if err != nil {
		return nil, errors.NewInvalidRequestError("malformed Open-Meteo URL", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var apiResp OpenMeteoResponse
	if err := getJSON(ctx, p.client, providerOpenMeteo, endpoint, &apiResp, p.logger); err != nil {
		return nil, err
	}

	return p.toForecast(&apiResp, query)
}

func (p *OpenMeteoProviderAdapter) buildURL(query ports.ForecastQuery) (string, error) {
	base, err := url.Parse(p.baseURL + "/forecast")
	if err != nil {
		return "", err
	}
	if base.Scheme == "" || base.Host == "" {
		return "", errors.NewValidationError("base URL must be absolute")
	}

	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(query.Latitude, 'f', 4, 64))
	values.Set("longitude", strconv.FormatFloat(query.Longitude, 'f', 4, 64))
	values.Set("current", openMeteoCurrentFields)
	values.Set("daily", openMeteoDailyFields)
	values.Set("timezone", "auto")
	values.Set("forecast_days", strconv.Itoa(query.Days))
	base.RawQuery = values.Encode()

	return base.String(), nil
}

func (p *OpenMeteoProviderAdapter) toForecast(resp *OpenMeteoResponse, query ports.ForecastQuery) (*ports.ForecastData, error) {
	daily := resp.Daily
	count := len(daily.Time)
	if count == 0 {
		return nil, errors.NewDecodingError("Open-Meteo response has no daily forecast", nil)
	}
	if len(daily.TemperatureMax) < count || len(daily.TemperatureMin) < count || len(daily.WeatherCode) < count {
		return nil, errors.NewDecodingError("Open-Meteo daily series have mismatched lengths", nil)
	}

	current := resp.Current
	lastUpdated, err := time.Parse(openMeteoTimeLayout, current.Time)
	if err != nil {
		return nil, errors.NewDecodingError("Open-Meteo current block has invalid time", err)
	}

	data := &ports.ForecastData{
		Location: ports.LocationData{
			Name:      query.City,
			Latitude:  resp.Latitude,
			Longitude: resp.Longitude,
			Timezone:  resp.Timezone,
		},
		Current: ports.CurrentData{
			TemperatureC:  current.Temperature,
			FeelsLikeC:    current.ApparentTemperature,
			Humidity:      current.RelativeHumidity,
			WindKPH:       current.WindSpeed,
			WindDirection: compassPoint(current.WindDirection),
			PressureMB:    current.PressureMSL,
			IsDay:         current.IsDay == 1,
			Condition:     weatherCodeCondition(current.WeatherCode),
			LastUpdated:   lastUpdated,
		},
		Days:      make([]ports.DayData, 0, count),
		Provider:  providerOpenMeteo,
		FetchedAt: time.Now().UTC(),
	}

	for i := 0; i < count; i++ {
		date, err := time.Parse(openMeteoDateLayout, daily.Time[i])
		if err != nil {
			return nil, errors.NewDecodingError("Open-Meteo daily series has invalid date", err)
		}
		day := ports.DayData{
			Date:      date,
			MaxTempC:  daily.TemperatureMax[i],
			MinTempC:  daily.TemperatureMin[i],
			AvgTempC:  (daily.TemperatureMax[i] + daily.TemperatureMin[i]) / 2,
			Condition: weatherCodeCondition(daily.WeatherCode[i]),
		}
		if i < len(daily.WindSpeedMax) {
			day.MaxWindKPH = daily.WindSpeedMax[i]
		}
		if i < len(daily.PrecipitationSum) {
			day.TotalPrecipMM = daily.PrecipitationSum[i]
		}
		if i < len(daily.PrecipitationProbability) {
			day.ChanceOfRain = daily.PrecipitationProbability[i]
		}
		if i < len(daily.Sunrise) {
			day.Sunrise = clockTime(daily.Sunrise[i])
		}
		if i < len(daily.Sunset) {
			day.Sunset = clockTime(daily.Sunset[i])
		}
		data.Days = append(data.Days, day)
	}

	return data, nil
}

func (p *OpenMeteoProviderAdapter) GetProviderName() string {
	return providerOpenMeteo
}

// weatherCodeCondition maps WMO weather interpretation codes to a condition text
func weatherCodeCondition(code int) ports.ConditionData {
	var text string
	switch {
	case code == 0:
		text = "Clear sky"
	case code == 1:
		text = "Mainly clear"
	case code == 2:
		text = "Partly cloudy"
	case code == 3:
		text = "Overcast"
	case code == 45 || code == 48:
		text = "Fog"
	case code >= 51 && code <= 57:
		text = "Drizzle"
	case (code >= 61 && code <= 67) || (code >= 80 && code <= 82):
		text = "Rain"
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		text = "Snow"
	case code >= 95:
		text = "Thunderstorm"
	default:
		text = "Unknown"
	}
	return ports.ConditionData{Text: text, Code: code}
}

func compassPoint(degrees float64) string {
	points := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	idx := int((degrees+22.5)/45) % len(points)
	if idx < 0 {
		idx += len(points)
	}
	return points[idx]
}

// clockTime turns "2024-05-01T04:45" into "04:45"
func clockTime(value string) string {
	parsed, err := time.Parse(openMeteoTimeLayout, value)
	if err != nil {
		return value
	}
	return parsed.Format("15:04")
}
