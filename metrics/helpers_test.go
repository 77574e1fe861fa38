package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func metricValue(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()

	var out dto.Metric
	require.NoError(t, m.Write(&out))

	switch {
	case out.Counter != nil:
		return out.GetCounter().GetValue()
	case out.Gauge != nil:
		return out.GetGauge().GetValue()
	case out.Histogram != nil:
		return float64(out.GetHistogram().GetSampleCount())
	}
	return 0
}
