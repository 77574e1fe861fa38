package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"weatherforecast.app/internal/ports"
)

type CacheMetricsCollector struct {
	Hits     *prometheus.CounterVec
	Misses   *prometheus.CounterVec
	Requests *prometheus.CounterVec
	Latency  *prometheus.HistogramVec
	HitRatio *prometheus.GaugeVec
}

var (
	cacheCollector     *CacheMetricsCollector
	cacheCollectorOnce sync.Once
)

func getCacheCollector() *CacheMetricsCollector {
	cacheCollectorOnce.Do(func() {
		cacheCollector = &CacheMetricsCollector{
			Hits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "forecast_store_hits_total",
					Help: "The total number of forecast store reads that returned a snapshot",
				},
				[]string{"store_type"},
			),
			Misses: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "forecast_store_misses_total",
					Help: "The total number of forecast store reads without a usable snapshot",
				},
				[]string{"store_type"},
			),
			Requests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "forecast_store_requests_total",
					Help: "The total number of forecast store reads",
				},
				[]string{"store_type"},
			),
			Latency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "forecast_store_duration_seconds",
					Help:    "Forecast store operation duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"store_type", "operation"},
			),
			HitRatio: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "forecast_store_hit_ratio",
					Help: "Forecast store hit ratio (hits/total reads)",
				},
				[]string{"store_type"},
			),
		}
	})
	return cacheCollector
}

// CacheMetrics tracks reads of the forecast store and mirrors them into Prometheus
type CacheMetrics struct {
	storeType   string
	hits        int64
	misses      int64
	total       int64
	lastUpdated time.Time
	collector   *CacheMetricsCollector
	mu          sync.RWMutex
}

func NewCacheMetrics(storeType string) *CacheMetrics {
	return &CacheMetrics{
		storeType: storeType,
		collector: getCacheCollector(),
	}
}

func (m *CacheMetrics) RecordHit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hits++
	m.total++
	m.lastUpdated = time.Now()
	m.collector.Hits.WithLabelValues(m.storeType).Inc()
	m.collector.Requests.WithLabelValues(m.storeType).Inc()
	m.updateHitRatio()
}

func (m *CacheMetrics) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.misses++
	m.total++
	m.lastUpdated = time.Now()
	m.collector.Misses.WithLabelValues(m.storeType).Inc()
	m.collector.Requests.WithLabelValues(m.storeType).Inc()
	m.updateHitRatio()
}

func (m *CacheMetrics) RecordOperation(operation string, duration time.Duration) {
	m.collector.Latency.WithLabelValues(m.storeType, operation).Observe(duration.Seconds())
}

// updateHitRatio updates the Prometheus hit ratio gauge.
// Must be called while holding the mutex.
func (m *CacheMetrics) updateHitRatio() {
	if m.total > 0 {
		ratio := float64(m.hits) / float64(m.total)
		m.collector.HitRatio.WithLabelValues(m.storeType).Set(ratio)
	}
}

func (m *CacheMetrics) GetStats() ports.CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var hitRatio float64
	if m.total > 0 {
		hitRatio = float64(m.hits) / float64(m.total)
	}

	return ports.CacheStats{
		Hits:        m.hits,
		Misses:      m.misses,
		TotalOps:    m.total,
		HitRatio:    hitRatio,
		LastUpdated: m.lastUpdated,
	}
}

// StoreType returns the label this instance reports under
func (m *CacheMetrics) StoreType() string {
	return m.storeType
}

var _ ports.CacheMetrics = (*CacheMetrics)(nil)
