package telemetry

import (
	"sync/atomic"
	"time"
)

// recorderPtr holds the active Metrics, or nil until RegisterMetrics is
// called. Mirrors the root package's loggerPtr: silent by default, safe for
// concurrent use.
var recorderPtr atomic.Pointer[Metrics]

// Register installs m as the active recorder. Rasterize calls made after
// this point report through m; calls made before it are silently dropped.
func Register(m *Metrics) {
	recorderPtr.Store(m)
}

// Observe records one Rasterize call if a Metrics has been registered, a
// no-op otherwise.
func Observe(elapsed time.Duration, skipped int) {
	if m := recorderPtr.Load(); m != nil {
		m.Observe(elapsed, skipped)
	}
}
