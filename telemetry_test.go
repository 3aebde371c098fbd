package vecraster

import (
	"bytes"
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

func TestSetZerologLoggerBridgesLogOutput(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	SetZerologLogger(&zl)

	Logger().Info("bridged", "features", 2)

	if !bytes.Contains(buf.Bytes(), []byte("bridged")) {
		t.Errorf("expected zerolog output to contain the logged message, got: %s", buf.String())
	}
}

func TestRegisterMetricsCollectsRasterizeCalls(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterMetrics(reg)

	tr := NewAffineTransform(0, 2, 1, 1)
	poly := Polygon{Exterior: ring(0, 0, 2, 0, 2, 2, 0, 2, 0, 0)}
	if _, err := Rasterize(context.Background(), []Feature{{Geometry: poly, Value: 1}}, tr,
		RasterShape{Bands: 1, Rows: 2, Cols: 2}, ReducerSum, DTypeF64); err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}

	mf, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	var found bool
	for _, m := range mf {
		if m.GetName() == "vecraster_rasterize_duration_seconds" {
			found = true
			if len(m.GetMetric()) == 0 || m.GetMetric()[0].GetHistogram().GetSampleCount() == 0 {
				t.Error("expected at least one observation in the duration histogram")
			}
		}
	}
	if !found {
		t.Error("expected vecraster_rasterize_duration_seconds to be registered and collected")
	}
}
