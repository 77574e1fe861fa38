package external

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"weatherforecast.app/internal/ports"
	"weatherforecast.app/pkg/errors"
)

const lastForecastKey = "forecast:last"

// ForecastStoreAdapter keeps the last successful fetch in a single slot of a key/value backend
type ForecastStoreAdapter struct {
	cache     ports.CacheProvider
	metrics   ports.CacheMetrics
	retention time.Duration
	now       func() time.Time
}

type storedForecast struct {
	ID       string             `json:"id"`
	SavedAt  time.Time          `json:"saved_at"`
	Forecast ports.ForecastData `json:"forecast"`
}

// NewForecastStoreAdapter creates the store. A zero retention keeps the last snapshot until replaced.
func NewForecastStoreAdapter(cache ports.CacheProvider, metrics ports.CacheMetrics, retention time.Duration) (*ForecastStoreAdapter, error) {
	if cache == nil {
		return nil, errors.NewConfigurationError("cache provider cannot be nil", nil)
	}
	if retention < 0 {
		return nil, errors.NewConfigurationError("store retention cannot be negative", nil)
	}

	return &ForecastStoreAdapter{
		cache:     cache,
		metrics:   metrics,
		retention: retention,
		now:       time.Now,
	}, nil
}

// Save replaces the stored snapshot
func (s *ForecastStoreAdapter) Save(ctx context.Context, forecast *ports.ForecastData) error {
	if forecast == nil {
		return errors.NewValidationError("forecast cannot be nil")
	}

	start := time.Now()
	defer s.recordOperation("save", start)

	payload, err := json.Marshal(storedForecast{
		ID:       uuid.NewString(),
		SavedAt:  s.now().UTC(),
		Forecast: *forecast,
	})
	if err != nil {
		return errors.NewDatabaseError("failed to encode forecast", err)
	}

	return s.cache.Set(ctx, lastForecastKey, payload, s.retention)
}

// LoadLast returns the stored snapshot or a NotFound error when nothing was saved yet
func (s *ForecastStoreAdapter) LoadLast(ctx context.Context) (*ports.CachedForecast, error) {
	start := time.Now()
	defer s.recordOperation("load", start)

	payload, err := s.cache.Get(ctx, lastForecastKey)
	if err != nil {
		if errors.IsNotFoundError(err) && s.metrics != nil {
			s.metrics.RecordMiss()
		}
		return nil, err
	}

	var stored storedForecast
	if err := json.Unmarshal(payload, &stored); err != nil {
		if s.metrics != nil {
			s.metrics.RecordMiss()
		}
		return nil, errors.NewDatabaseError("stored forecast is corrupted", err)
	}

	if s.metrics != nil {
		s.metrics.RecordHit()
	}

	return &ports.CachedForecast{
		ID:       stored.ID,
		Forecast: stored.Forecast,
		SavedAt:  stored.SavedAt,
	}, nil
}

// Clear drops the stored snapshot
func (s *ForecastStoreAdapter) Clear(ctx context.Context) error {
	return s.cache.Delete(ctx, lastForecastKey)
}

func (s *ForecastStoreAdapter) recordOperation(operation string, start time.Time) {
	if s.metrics != nil {
		s.metrics.RecordOperation(operation, time.Since(start))
	}
}

var _ ports.ForecastStore = (*ForecastStoreAdapter)(nil)
