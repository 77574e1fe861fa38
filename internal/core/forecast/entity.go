package forecast

import (
	"fmt"
	"strings"
	"time"
)

const (
	absoluteZeroC = -273.15
	kphPerMS      = 3.6
)

// DefaultCacheExpiration is the freshness window applied when none is configured
const DefaultCacheExpiration = 600 * time.Second

// Location identifies where a snapshot applies
type Location struct {
	Name      string
	Region    string
	Country   string
	Latitude  float64
	Longitude float64
	Timezone  string
}

// Condition is a short weather description with its provider code
type Condition struct {
	Text string
	Code int
	Icon string
}

// Current holds current conditions
type Current struct {
	TemperatureC  float64
	FeelsLikeC    float64
	Humidity      int
	WindKPH       float64
	WindDirection string
	PressureMB    float64
	IsDay         bool
	Condition     Condition
	LastUpdated   time.Time
}

// Day is one entry of the multi-day forecast
type Day struct {
	Date          time.Time
	MaxTempC      float64
	MinTempC      float64
	AvgTempC      float64
	MaxWindKPH    float64
	TotalPrecipMM float64
	ChanceOfRain  int
	Condition     Condition
	Sunrise       string
	Sunset        string
}

// Snapshot is the payload of one successful fetch. It is never mutated after creation.
type Snapshot struct {
	Location  Location
	Current   Current
	Days      []Day
	Provider  string
	FetchedAt time.Time
}

// CachedSnapshot is a snapshot read back from the store together with its save time.
// SavedAt is the only input to freshness decisions.
type CachedSnapshot struct {
	ID       string
	Snapshot Snapshot
	SavedAt  time.Time
}

// IsValid validates snapshot data
func (s *Snapshot) IsValid() error {
	if strings.TrimSpace(s.Location.Name) == "" {
		return fmt.Errorf("location name cannot be empty")
	}
	if s.Current.TemperatureC < absoluteZeroC {
		return fmt.Errorf("temperature cannot be below absolute zero")
	}
	if s.Current.Humidity < 0 || s.Current.Humidity > 100 {
		return fmt.Errorf("humidity must be between 0 and 100")
	}
	if len(s.Days) == 0 {
		return fmt.Errorf("forecast must contain at least one day")
	}
	for i, d := range s.Days {
		if d.MinTempC > d.MaxTempC {
			return fmt.Errorf("day %d: min temperature above max temperature", i)
		}
		if d.ChanceOfRain < 0 || d.ChanceOfRain > 100 {
			return fmt.Errorf("day %d: chance of rain must be between 0 and 100", i)
		}
	}
	return nil
}

// WindSpeedMS returns current wind speed in metres per second
func (c *Current) WindSpeedMS() float64 {
	return c.WindKPH / kphPerMS
}

// MaxWindMS returns the day's max wind speed in metres per second
func (d *Day) MaxWindMS() float64 {
	return d.MaxWindKPH / kphPerMS
}

// String returns a string representation of the snapshot
func (s *Snapshot) String() string {
	return fmt.Sprintf("%s: %.1f°C, %s, %d days from %s",
		s.Location.Name, s.Current.TemperatureC, s.Current.Condition.Text, len(s.Days), s.Provider)
}

// Age returns how long ago the snapshot was saved relative to now
func (c *CachedSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(c.SavedAt)
}

// FreshnessPolicy classifies cached snapshots as fresh or stale
type FreshnessPolicy struct {
	Expiration time.Duration
}

// NewFreshnessPolicy returns a policy using expiration, or the default when it is not positive
func NewFreshnessPolicy(expiration time.Duration) FreshnessPolicy {
	if expiration <= 0 {
		expiration = DefaultCacheExpiration
	}
	return FreshnessPolicy{Expiration: expiration}
}

// IsFresh reports whether the cached snapshot is strictly younger than the expiration window
func (p FreshnessPolicy) IsFresh(cached *CachedSnapshot, now time.Time) bool {
	return cached.Age(now) < p.Expiration
}
