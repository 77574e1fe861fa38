package forecast

import "weatherforecast.app/internal/ports"

// FromPorts converts provider data into a domain snapshot
func FromPorts(d *ports.ForecastData) Snapshot {
	days := make([]Day, 0, len(d.Days))
	for _, pd := range d.Days {
		days = append(days, Day{
			Date:          pd.Date,
			MaxTempC:      pd.MaxTempC,
			MinTempC:      pd.MinTempC,
			AvgTempC:      pd.AvgTempC,
			MaxWindKPH:    pd.MaxWindKPH,
			TotalPrecipMM: pd.TotalPrecipMM,
			ChanceOfRain:  pd.ChanceOfRain,
			Condition:     Condition(pd.Condition),
			Sunrise:       pd.Sunrise,
			Sunset:        pd.Sunset,
		})
	}

	return Snapshot{
		Location: Location{
			Name:      d.Location.Name,
			Region:    d.Location.Region,
			Country:   d.Location.Country,
			Latitude:  d.Location.Latitude,
			Longitude: d.Location.Longitude,
			Timezone:  d.Location.Timezone,
		},
		Current: Current{
			TemperatureC:  d.Current.TemperatureC,
			FeelsLikeC:    d.Current.FeelsLikeC,
			Humidity:      d.Current.Humidity,
			WindKPH:       d.Current.WindKPH,
			WindDirection: d.Current.WindDirection,
			PressureMB:    d.Current.PressureMB,
			IsDay:         d.Current.IsDay,
			Condition:     Condition(d.Current.Condition),
			LastUpdated:   d.Current.LastUpdated,
		},
		Days:      days,
		Provider:  d.Provider,
		FetchedAt: d.FetchedAt,
	}
}

// CachedFromPorts converts a stored record into a domain cached snapshot
func CachedFromPorts(c *ports.CachedForecast) CachedSnapshot {
	return CachedSnapshot{
		ID:       c.ID,
		Snapshot: FromPorts(&c.Forecast),
		SavedAt:  c.SavedAt,
	}
}

// ToPorts converts a domain snapshot back into its storable form
func ToPorts(s Snapshot) *ports.ForecastData {
	days := make([]ports.DayData, 0, len(s.Days))
	for _, d := range s.Days {
		days = append(days, ports.DayData{
			Date:          d.Date,
			MaxTempC:      d.MaxTempC,
			MinTempC:      d.MinTempC,
			AvgTempC:      d.AvgTempC,
			MaxWindKPH:    d.MaxWindKPH,
			TotalPrecipMM: d.TotalPrecipMM,
			ChanceOfRain:  d.ChanceOfRain,
			Condition:     ports.ConditionData(d.Condition),
			Sunrise:       d.Sunrise,
			Sunset:        d.Sunset,
		})
	}

	return &ports.ForecastData{
		Location: ports.LocationData{
			Name:      s.Location.Name,
			Region:    s.Location.Region,
			Country:   s.Location.Country,
			Latitude:  s.Location.Latitude,
			Longitude: s.Location.Longitude,
			Timezone:  s.Location.Timezone,
		},
		Current: ports.CurrentData{
			TemperatureC:  s.Current.TemperatureC,
			FeelsLikeC:    s.Current.FeelsLikeC,
			Humidity:      s.Current.Humidity,
			WindKPH:       s.Current.WindKPH,
			WindDirection: s.Current.WindDirection,
			PressureMB:    s.Current.PressureMB,
			IsDay:         s.Current.IsDay,
			Condition:     ports.ConditionData(s.Current.Condition),
			LastUpdated:   s.Current.LastUpdated,
		},
		Days:      days,
		Provider:  s.Provider,
		FetchedAt: s.FetchedAt,
	}
}
