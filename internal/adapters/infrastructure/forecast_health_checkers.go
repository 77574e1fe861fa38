package infrastructure

import (
	"context"

	"weatherforecast.app/internal/ports"
)

// ProviderHealthChecker reports the provider chain and its circuit states without calling upstream
type ProviderHealthChecker struct {
	manager ports.ForecastProviderManager
}

func NewProviderHealthChecker(manager ports.ForecastProviderManager) *ProviderHealthChecker {
	return &ProviderHealthChecker{manager: manager}
}

func (p *ProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "providers",
		Status:    statusHealthy,
		Details:   make(map[string]interface{}),
	}

	if p.manager == nil {
		status.Status = statusUnhealthy
		status.Error = "forecast provider manager is not available"
		return status
	}

	info := p.manager.GetProviderInfo()
	for k, v := range info {
		status.Details[k] = v
	}

	if total, ok := info["total_providers"].(int); ok && total == 0 {
		status.Status = statusUnhealthy
		status.Error = "no forecast providers configured"
		return status
	}

	if circuits, ok := info["circuit_states"].(map[string]string); ok && len(circuits) > 0 {
		open := 0
		for _, state := range circuits {
			if state == "open" {
				open++
			}
		}
		switch {
		case open == len(circuits):
			status.Status = statusUnhealthy
			status.Error = "all provider circuits are open"
		case open > 0:
			status.Status = statusDegraded
		}
	}

	return status
}

// RefreshHealthChecker reports the retry machine and what the display currently shows
type RefreshHealthChecker struct {
	controller ports.RefreshController
	display    ports.ForecastDisplay
}

func NewRefreshHealthChecker(controller ports.RefreshController, display ports.ForecastDisplay) *RefreshHealthChecker {
	return &RefreshHealthChecker{controller: controller, display: display}
}

func (r *RefreshHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "refresh",
		Status:    statusHealthy,
		Details:   make(map[string]interface{}),
	}

	if r.controller != nil {
		state := r.controller.State()
		status.Details["attempt_count"] = state.AttemptCount
		status.Details["max_attempts"] = state.MaxAttempts
		status.Details["in_flight"] = state.InFlight
		status.Details["retry_pending"] = state.RetryPending
		if state.RetryPending {
			status.Status = statusDegraded
		}
	}

	if r.display != nil {
		current := r.display.Current()
		status.Details["source"] = current.Source
		status.Details["has_forecast"] = current.Forecast != nil
		if current.Error != "" {
			status.Status = statusDegraded
			status.Error = current.Error
		}
	}

	return status
}
