package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"weatherforecast.app/internal/ports"
)

type RefreshMetricsCollector struct {
	Cycles         *prometheus.CounterVec
	Fetches        *prometheus.CounterVec
	FetchDuration  *prometheus.HistogramVec
	Retries        *prometheus.CounterVec
	RetryDelay     prometheus.Histogram
	TerminalErrors *prometheus.CounterVec
	CachedServed   *prometheus.CounterVec
}

var (
	refreshCollector     *RefreshMetricsCollector
	refreshCollectorOnce sync.Once
)

func getRefreshCollector() *RefreshMetricsCollector {
	refreshCollectorOnce.Do(func() {
		refreshCollector = &RefreshMetricsCollector{
			Cycles: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "forecast_refresh_cycles_total",
					Help: "Refresh cycles started, by trigger source",
				},
				[]string{"source"},
			),
			Fetches: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "forecast_fetches_total",
					Help: "Completed network fetches, by outcome class",
				},
				[]string{"result"},
			),
			FetchDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "forecast_fetch_duration_seconds",
					Help:    "Network fetch duration in seconds",
					Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
				},
				[]string{"result"},
			),
			Retries: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "forecast_retries_scheduled_total",
					Help: "Automatic retries scheduled, by attempt number",
				},
				[]string{"attempt"},
			),
			RetryDelay: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "forecast_retry_delay_seconds",
					Help:    "Delay before a scheduled retry fires",
					Buckets: prometheus.LinearBuckets(3, 3, 10),
				},
			),
			TerminalErrors: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "forecast_refresh_terminal_errors_total",
					Help: "Errors reported to the display, by classification",
				},
				[]string{"class"},
			),
			CachedServed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "forecast_cached_served_total",
					Help: "Cached snapshots handed to the display, by presentation mode",
				},
				[]string{"mode"},
			),
		}
	})
	return refreshCollector
}

// RefreshMetrics records orchestrator events and keeps local totals for the JSON metrics endpoint
type RefreshMetrics struct {
	collector *RefreshMetricsCollector

	mu             sync.RWMutex
	cycles         map[string]int64
	fetches        map[string]int64
	retries        int64
	terminalErrors map[string]int64
	cachedSilent   int64
	cachedNoisy    int64
	lastFetchAt    time.Time
}

func NewRefreshMetrics() *RefreshMetrics {
	return &RefreshMetrics{
		collector:      getRefreshCollector(),
		cycles:         make(map[string]int64),
		fetches:        make(map[string]int64),
		terminalErrors: make(map[string]int64),
	}
}

func (m *RefreshMetrics) RecordCycle(source string) {
	m.collector.Cycles.WithLabelValues(source).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.cycles[source]++
}

func (m *RefreshMetrics) RecordFetch(class string, duration time.Duration) {
	m.collector.Fetches.WithLabelValues(class).Inc()
	m.collector.FetchDuration.WithLabelValues(class).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches[class]++
	m.lastFetchAt = time.Now()
}

func (m *RefreshMetrics) RecordRetryScheduled(attempt int, delay time.Duration) {
	m.collector.Retries.WithLabelValues(strconv.Itoa(attempt)).Inc()
	m.collector.RetryDelay.Observe(delay.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.retries++
}

func (m *RefreshMetrics) RecordTerminalError(class string) {
	m.collector.TerminalErrors.WithLabelValues(class).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.terminalErrors[class]++
}

func (m *RefreshMetrics) RecordCachedServed(silently bool) {
	mode := "noisy"
	if silently {
		mode = "silent"
	}
	m.collector.CachedServed.WithLabelValues(mode).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	if silently {
		m.cachedSilent++
	} else {
		m.cachedNoisy++
	}
}

func (m *RefreshMetrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := map[string]interface{}{
		"cycles":            copyCounts(m.cycles),
		"fetches":           copyCounts(m.fetches),
		"retries_scheduled": m.retries,
		"terminal_errors":   copyCounts(m.terminalErrors),
		"cached_silent":     m.cachedSilent,
		"cached_noisy":      m.cachedNoisy,
	}
	if !m.lastFetchAt.IsZero() {
		stats["last_fetch_at"] = m.lastFetchAt
	}
	return stats
}

func copyCounts(src map[string]int64) map[string]int64 {
	dst := make(map[string]int64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

var _ ports.RefreshMetrics = (*RefreshMetrics)(nil)
