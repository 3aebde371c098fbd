package vecraster

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/vecraster/vecraster/internal/telemetry"
)

// SetZerologLogger bridges vecraster's slog-based logging onto an existing
// zerolog.Logger, so a host process already standardized on zerolog does
// not need to maintain a second logging configuration.
//
// Example:
//
//	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	vecraster.SetZerologLogger(&zl)
func SetZerologLogger(zl *zerolog.Logger) {
	SetLogger(slog.New(telemetry.NewSlogHandler(zl)))
}

// RegisterMetrics attaches vecraster's Prometheus collectors (a histogram
// of Rasterize call duration and a counter of skipped features) to reg.
// Until this is called, Rasterize collects no metrics.
func RegisterMetrics(reg *prometheus.Registry) {
	m := telemetry.NewMetrics()
	m.Register(reg)
	telemetry.Register(m)
}
