package vecraster

import "math"

// Encoding selects how Rasterize materializes its output.
type Encoding int

const (
	// Dense materializes every pixel of every band as a contiguous buffer.
	Dense Encoding = iota
	// Sparse materializes only touched pixels as an unsorted COO triplet
	// list, one entry per touched pixel per band.
	Sparse
)

// RasterizeOption configures a Rasterize call.
// Use functional options to customize rasterization behavior.
//
// Example:
//
//	res, err := vecraster.Rasterize(ctx, features, transform, shape,
//	    vecraster.ReducerSum, vecraster.DTypeF64,
//	    vecraster.WithWorkers(4), vecraster.WithAllTouched(true))
type RasterizeOption func(*rasterizeOptions)

// rasterizeOptions holds optional configuration for a Rasterize call.
type rasterizeOptions struct {
	workers    int
	allTouched bool
	background float64
	strict     bool
	encoding   Encoding
}

// defaultOptions returns the default rasterize options. background starts
// as NaN, a sentinel meaning "not set by the caller": DType.Cast already
// maps a NaN background onto the dtype's own default fill (0 for integers,
// NaN for floats), so leaving it unset naturally produces the documented
// per-dtype default without this package needing to know the dtype yet.
func defaultOptions() rasterizeOptions {
	return rasterizeOptions{
		workers:    0, // resolved to runtime.GOMAXPROCS(0) if <= 0
		allTouched: false,
		background: math.NaN(),
		strict:     false,
		encoding:   Dense,
	}
}

// WithWorkers sets the number of worker goroutines used to slice features
// across the call. n <= 0 resolves to runtime.GOMAXPROCS(0).
//
// Example:
//
//	res, err := vecraster.Rasterize(ctx, features, transform, shape,
//	    vecraster.ReducerSum, vecraster.DTypeF64, vecraster.WithWorkers(8))
func WithWorkers(n int) RasterizeOption {
	return func(o *rasterizeOptions) {
		o.workers = n
	}
}

// WithAllTouched enables the two-pass all_touched burn mode: every pixel
// intersected by a geometry's boundary is burned, not just pixels whose
// center falls inside it.
func WithAllTouched(v bool) RasterizeOption {
	return func(o *rasterizeOptions) {
		o.allTouched = v
	}
}

// WithBackground sets the fill value written to pixels no feature touches.
// A background that cannot be represented in the requested output dtype
// (NaN, or out of range for an integer dtype) silently falls back to the
// dtype's own default fill rather than erroring.
func WithBackground(v float64) RasterizeOption {
	return func(o *rasterizeOptions) {
		o.background = v
	}
}

// WithStrict makes the first geometry or numeric error encountered during
// a call abort it with a wrapped error, instead of being tallied into
// Result.Errors.
func WithStrict(v bool) RasterizeOption {
	return func(o *rasterizeOptions) {
		o.strict = v
	}
}

// WithEncoding selects Dense or Sparse output materialization.
func WithEncoding(e Encoding) RasterizeOption {
	return func(o *rasterizeOptions) {
		o.encoding = e
	}
}
