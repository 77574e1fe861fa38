package ports

import "time"

// RefreshState is a point-in-time view of the refresh retry machine
type RefreshState struct {
	AttemptCount int       `json:"attempt_count"`
	MaxAttempts  int       `json:"max_attempts"`
	InFlight     bool      `json:"in_flight"`
	RetryPending bool      `json:"retry_pending"`
	NextRetryAt  time.Time `json:"next_retry_at,omitempty"`
}

// RefreshController triggers refresh cycles and reports retry state
type RefreshController interface {
	Refresh()
	State() RefreshState
}

// DisplayState is what the caller currently shows
type DisplayState struct {
	Forecast  *ForecastData `json:"forecast,omitempty"`
	Source    string        `json:"source,omitempty"`
	SavedAt   *time.Time    `json:"saved_at,omitempty"`
	Notice    string        `json:"notice,omitempty"`
	Error     string        `json:"error,omitempty"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// ForecastDisplay exposes the caller's current display state
type ForecastDisplay interface {
	Current() DisplayState
}

// RefreshMetrics receives events from the refresh orchestrator
type RefreshMetrics interface {
	RecordCycle(source string)
	RecordFetch(class string, duration time.Duration)
	RecordRetryScheduled(attempt int, delay time.Duration)
	RecordTerminalError(class string)
	RecordCachedServed(silently bool)
}
