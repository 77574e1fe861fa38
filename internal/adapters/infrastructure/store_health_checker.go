package infrastructure

import (
	"context"

	"weatherforecast.app/internal/ports"
	"weatherforecast.app/pkg/errors"
)

// Pinger is implemented by store backends that hold a network connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreHealthChecker reports on the forecast store backend and whether a snapshot is saved
type StoreHealthChecker struct {
	storeType string
	store     ports.ForecastStore
	pinger    Pinger
}

// NewStoreHealthChecker creates the checker. pinger may be nil for in-process backends.
func NewStoreHealthChecker(storeType string, store ports.ForecastStore, pinger Pinger) *StoreHealthChecker {
	return &StoreHealthChecker{storeType: storeType, store: store, pinger: pinger}
}

func (s *StoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "store",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"type": s.storeType,
		},
	}

	if s.pinger != nil {
		if err := s.pinger.Ping(ctx); err != nil {
			status.Status = statusUnhealthy
			status.Error = err.Error()
			return status
		}
	}

	if s.store == nil {
		return status
	}

	cached, err := s.store.LoadLast(ctx)
	switch {
	case err == nil:
		status.Details["has_snapshot"] = true
		status.Details["saved_at"] = cached.SavedAt
	case errors.IsNotFoundError(err):
		status.Details["has_snapshot"] = false
	default:
		status.Status = statusDegraded
		status.Error = err.Error()
	}

	return status
}
