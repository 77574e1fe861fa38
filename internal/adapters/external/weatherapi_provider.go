// Package external provides adapters for forecast providers and the key/value stores behind the forecast cache
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
	providerWeatherAPI     = "weatherapi"
	defaultRequestTimeout  = 10 * time.Second
	weatherAPIDateLayout   = "2006-01-02"
	weatherAPIUpdateLayout = "2006-01-02 15:04"
)

// WeatherAPIProviderAdapter implements ForecastProvider port for WeatherAPI.com
type WeatherAPIProviderAdapter struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	client  HTTPClient
	logger  ports.Logger
}

// WeatherAPIProviderParams holds parameters for creating WeatherAPI provider
type WeatherAPIProviderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

type weatherAPICondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

func (c weatherAPICondition) toPorts() ports.ConditionData {
	return ports.ConditionData{Text: c.Text, Code: c.Code, Icon: c.Icon}
}

// WeatherAPIResponse represents the forecast.json response from WeatherAPI.com
type WeatherAPIResponse struct {
	Location struct {
		Name    string  `json:"name"`
		Region  string  `json:"region"`
		Country string  `json:"country"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
		TzID    string  `json:"tz_id"`
	} `json:"location"`
	Current struct {
		LastUpdatedEpoch int64               `json:"last_updated_epoch"`
		LastUpdated      string              `json:"last_updated"`
		TempC            float64             `json:"temp_c"`
		FeelsLikeC       float64             `json:"feelslike_c"`
		Humidity         int                 `json:"humidity"`
		WindKPH          float64             `json:"wind_kph"`
		WindDir          string              `json:"wind_dir"`
		PressureMB       float64             `json:"pressure_mb"`
		IsDay            int                 `json:"is_day"`
		Condition        weatherAPICondition `json:"condition"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempC          float64             `json:"maxtemp_c"`
				MinTempC          float64             `json:"mintemp_c"`
				AvgTempC          float64             `json:"avgtemp_c"`
				MaxWindKPH        float64             `json:"maxwind_kph"`
				TotalPrecipMM     float64             `json:"totalprecip_mm"`
				DailyChanceOfRain int                 `json:"daily_chance_of_rain"`
				Condition         weatherAPICondition `json:"condition"`
			} `json:"day"`
			Astro struct {
				Sunrise string `json:"sunrise"`
				Sunset  string `json:"sunset"`
			} `json:"astro"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

// NewWeatherAPIProviderAdapter creates a new WeatherAPI provider adapter
func NewWeatherAPIProviderAdapter(params WeatherAPIProviderParams) *WeatherAPIProviderAdapter {
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	client := params.Client
	if client == nil {
		client = &http.Client{}
	}

	return &WeatherAPIProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: params.BaseURL,
		timeout: timeout,
		client:  client,
		logger:  params.Logger,
	}
}

// FetchForecast performs a single forecast.json request
func (p *WeatherAPIProviderAdapter) FetchForecast(ctx context.Context, query ports.ForecastQuery) (*ports.ForecastData, error) {
	if query.City == "" {
		return nil, errors.NewInvalidRequestError("city cannot be empty", nil)
	}
	if p.apiKey == "" {
		return nil, errors.NewInvalidRequestError("WeatherAPI key is not configured", nil)
	}

	endpoint, err := p.buildURL(query)
	if err != nil {
		return nil, errors.NewInvalidRequestError("malformed WeatherAPI URL", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var apiResp WeatherAPIResponse
	if err := getJSON(ctx, p.client, providerWeatherAPI, endpoint, &apiResp, p.logger); err != nil {
		return nil, err
	}

	return p.toForecast(&apiResp)
}

func (p *WeatherAPIProviderAdapter) buildURL(query ports.ForecastQuery) (string, error) {
	base, err := url.Parse(p.baseURL + "/forecast.json")
	if err != nil {
		return "", err
	}
	if base.Scheme == "" || base.Host == "" {
		return "", errors.NewValidationError("base URL must be absolute")
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	values.Set("q", query.City)
	values.Set("days", strconv.Itoa(query.Days))
	base.RawQuery = values.Encode()

	return base.String(), nil
}

func (p *WeatherAPIProviderAdapter) toForecast(resp *WeatherAPIResponse) (*ports.ForecastData, error) {
	if len(resp.Forecast.ForecastDay) == 0 {
		return nil, errors.NewDecodingError("WeatherAPI response has no forecast days", nil)
	}

	current := resp.Current
	lastUpdated := time.Unix(current.LastUpdatedEpoch, 0).UTC()
	if current.LastUpdatedEpoch == 0 {
		if parsed, err := time.Parse(weatherAPIUpdateLayout, current.LastUpdated); err == nil {
			lastUpdated = parsed
		}
	}

	data := &ports.ForecastData{
		Location: ports.LocationData{
			Name:      resp.Location.Name,
			Region:    resp.Location.Region,
			Country:   resp.Location.Country,
			Latitude:  resp.Location.Lat,
			Longitude: resp.Location.Lon,
			Timezone:  resp.Location.TzID,
		},
		Current: ports.CurrentData{
			TemperatureC:  current.TempC,
			FeelsLikeC:    current.FeelsLikeC,
			Humidity:      current.Humidity,
			WindKPH:       current.WindKPH,
			WindDirection: current.WindDir,
			PressureMB:    current.PressureMB,
			IsDay:         current.IsDay == 1,
			Condition:     current.Condition.toPorts(),
			LastUpdated:   lastUpdated,
		},
		Days:      make([]ports.DayData, 0, len(resp.Forecast.ForecastDay)),
		Provider:  providerWeatherAPI,
		FetchedAt: time.Now().UTC(),
	}

	for _, fd := range resp.Forecast.ForecastDay {
		date, err := time.Parse(weatherAPIDateLayout, fd.Date)
		if err != nil {
			return nil, errors.NewDecodingError("WeatherAPI forecast day has invalid date", err)
		}
		data.Days = append(data.Days, ports.DayData{
			Date:          date,
			MaxTempC:      fd.Day.MaxTempC,
			MinTempC:      fd.Day.MinTempC,
			AvgTempC:      fd.Day.AvgTempC,
			MaxWindKPH:    fd.Day.MaxWindKPH,
			TotalPrecipMM: fd.Day.TotalPrecipMM,
			ChanceOfRain:  fd.Day.DailyChanceOfRain,
			Condition:     fd.Day.Condition.toPorts(),
			Sunrise:       fd.Astro.Sunrise,
			Sunset:        fd.Astro.Sunset,
		})
	}

	return data, nil
}

func (p *WeatherAPIProviderAdapter) GetProviderName() string {
	return providerWeatherAPI
}
