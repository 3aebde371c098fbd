package vecraster

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/vecraster/vecraster/internal/accum"
	"github.com/vecraster/vecraster/internal/parallel"
	"github.com/vecraster/vecraster/internal/telemetry"
)

// Result is the output of a Rasterize call: exactly one of Dense or
// Sparse is populated, selected by RasterizeOption WithEncoding.
type Result struct {
	Dense  *DenseBuffer
	Sparse *SparseArray
	Errors ErrorReport
}

// Rasterize burns features into a raster of shape using reducer to
// combine overlapping burns and dtype to determine the output buffer's
// numeric range. The affine transform maps world coordinates to pixel
// space; see NewAffineTransform.
//
// shape.Bands may be left at 0: Rasterize then derives the band count from
// the number of distinct Feature.GroupKey values, in first-appearance
// order, and every feature burns into the band matching its GroupKey. A
// nonzero shape.Bands that disagrees with that derived count is
// ErrShapeMismatch. Features with no grouping (every GroupKey empty) all
// share the single implicit band.
func Rasterize(ctx context.Context, features []Feature, transform AffineTransform,
	shape RasterShape, reducer Reducer, dtype DType, opts ...RasterizeOption,
) (Result, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if !transform.Valid() {
		return Result{}, ErrInvalidTransform
	}
	if len(features) == 0 {
		return Result{}, ErrEmptyInput
	}
	if shape.Rows <= 0 || shape.Cols <= 0 {
		return Result{}, fmt.Errorf("%w: shape rows/cols must be positive, got %dx%d", ErrShapeMismatch, shape.Rows, shape.Cols)
	}

	bandOf, bands, err := resolveBands(features, shape)
	if err != nil {
		return Result{}, err
	}
	shape.Bands = bands

	log := Logger()
	log.Info("rasterize: starting",
		"features", len(features), "bands", bands, "rows", shape.Rows, "cols", shape.Cols,
		"reducer", reducer.String(), "dtype", dtype.String(), "all_touched", options.allTouched,
		"encoding", options.encoding)

	report := ErrorReport{}
	jobs := make([]parallel.Job, 0, len(features))
	for i, f := range features {
		if f.Geometry == nil {
			report.UnsupportedGeometry++
			if options.strict {
				return Result{}, fmt.Errorf("%w: feature %d has nil geometry", ErrUnsupportedGeometry, i)
			}
			continue
		}
		if math.IsNaN(f.Value) && reducer.SkipsNaN() {
			report.SkippedNaN++
			if options.strict {
				return Result{}, fmt.Errorf("%w: feature %d has NaN value", ErrDTypeMismatch, i)
			}
		}
		jobs = append(jobs, parallel.Job{
			Band:       bandOf(f.GroupKey),
			FeatureIdx: int64(i),
			Geometry:   f.Geometry,
			Value:      f.Value,
		})
	}

	orch := parallel.NewOrchestrator(options.workers, transform, shape.Rows, shape.Cols, reducer, options.allTouched)
	defer orch.Close()

	type runOutcome struct {
		dense      []*accum.DenseWriter
		sparse     []*accum.SparseWriter
		degenerate int
	}
	done := make(chan runOutcome, 1)
	go func() {
		var out runOutcome
		if options.encoding == Sparse {
			out.sparse, out.degenerate = orch.RunSparse(jobs, bands)
		} else {
			out.dense, out.degenerate = orch.RunDense(jobs, bands)
		}
		done <- out
	}()

	var outcome runOutcome
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case outcome = <-done:
	}

	if options.strict && outcome.degenerate > 0 {
		return Result{}, fmt.Errorf("%w: %d malformed ring(s)", ErrUnsupportedGeometry, outcome.degenerate)
	}
	report.UnsupportedGeometry += outcome.degenerate
	background := dtype.Cast(options.background)

	if options.encoding == Sparse {
		out := &SparseArray{Shape: shape, Transform: transform}
		for b, w := range outcome.sparse {
			for _, t := range w.Fold() {
				out.Triplets = append(out.Triplets, Triplet{
					Band: b, Row: t.Row, Col: t.Col, Value: dtype.Cast(t.Value),
				})
			}
		}
		log.Info("rasterize: done", "triplets", len(out.Triplets), "errors", report)
		telemetry.Observe(time.Since(start), report.UnsupportedGeometry+report.SkippedNaN)
		return Result{Sparse: out, Errors: report}, nil
	}

	buf := NewDenseBuffer(shape, background)
	scratch := make([]float64, shape.Rows*shape.Cols)
	for b, w := range outcome.dense {
		w.Finalize(scratch, background)
		for r := 0; r < shape.Rows; r++ {
			for c := 0; c < shape.Cols; c++ {
				buf.Set(b, r, c, dtype.Cast(scratch[r*shape.Cols+c]))
			}
		}
	}
	log.Info("rasterize: done", "errors", report)
	telemetry.Observe(time.Since(start), report.UnsupportedGeometry+report.SkippedNaN)
	return Result{Dense: buf, Errors: report}, nil
}

// resolveBands derives, from features' GroupKey values, the band each
// feature writes to and the number of bands the output needs. See
// Rasterize's doc comment for the derivation rule.
func resolveBands(features []Feature, shape RasterShape) (bandOf func(string) int, bands int, err error) {
	keyOrder := make([]string, 0)
	keyIndex := make(map[string]int)
	grouped := false
	for _, f := range features {
		if f.GroupKey == "" {
			continue
		}
		grouped = true
		if _, ok := keyIndex[f.GroupKey]; !ok {
			keyIndex[f.GroupKey] = len(keyOrder)
			keyOrder = append(keyOrder, f.GroupKey)
		}
	}

	if !grouped {
		bands = shape.Bands
		if bands <= 0 {
			bands = 1
		}
		return func(string) int { return 0 }, bands, nil
	}

	derived := len(keyOrder)
	if shape.Bands != 0 && shape.Bands != derived {
		return nil, 0, fmt.Errorf("%w: shape declares %d bands, group keys imply %d", ErrShapeMismatch, shape.Bands, derived)
	}
	return func(key string) int {
		if key == "" {
			return 0
		}
		return keyIndex[key]
	}, derived, nil
}
