package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors Rasterize updates once per call.
// Adapted from h3-spatial-cache's internal/metrics.Provider, trimmed to the
// two series a rasterization call can meaningfully report: how long it
// took, and how many features it had to skip.
type Metrics struct {
	duration prometheus.Histogram
	skipped  prometheus.Counter
}

// NewMetrics builds an unregistered Metrics. Call Register to attach it to
// a Prometheus registry.
func NewMetrics() *Metrics {
	return &Metrics{
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "vecraster_rasterize_duration_seconds",
			Help:    "Duration of Rasterize calls.",
			Buckets: prometheus.DefBuckets,
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vecraster_rasterize_skipped_features_total",
			Help: "Features skipped due to unsupported geometry or NaN values.",
		}),
	}
}

// Register attaches m's collectors to reg.
func (m *Metrics) Register(reg *prometheus.Registry) {
	reg.MustRegister(m.duration, m.skipped)
}

// Observe records one completed Rasterize call.
func (m *Metrics) Observe(elapsed time.Duration, skipped int) {
	m.duration.Observe(elapsed.Seconds())
	if skipped > 0 {
		m.skipped.Add(float64(skipped))
	}
}
