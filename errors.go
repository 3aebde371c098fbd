package vecraster

import "errors"

// Sentinel errors returned across the Rasterize boundary. Only configuration
// and resource problems are returned as errors; per-feature geometry and
// numeric problems are tallied in Result.Errors instead (see ErrorReport).
var (
	// ErrInvalidTransform is returned when the affine transform is degenerate
	// (zero resolution on either axis).
	ErrInvalidTransform = errors.New("vecraster: invalid affine transform")

	// ErrEmptyInput is returned when no features are supplied.
	ErrEmptyInput = errors.New("vecraster: empty feature input")

	// ErrUnsupportedGeometry is returned (in strict mode) when a feature
	// has a nil geometry or the traversal skips a malformed ring.
	ErrUnsupportedGeometry = errors.New("vecraster: unsupported geometry")

	// ErrDTypeMismatch is returned (in strict mode) when a feature carries a
	// NaN value under a reducer that skips NaN-valued burns. A background
	// the output dtype cannot represent is not an error (see WithBackground).
	ErrDTypeMismatch = errors.New("vecraster: dtype mismatch")

	// ErrShapeMismatch is returned when the caller-supplied RasterShape
	// disagrees with the band count implied by the features' group keys.
	ErrShapeMismatch = errors.New("vecraster: shape mismatch")

	// ErrAllocationFailure names a failed per-worker accumulator slab
	// allocation. Rasterize never returns it: slabs are allocated with make,
	// which does not report failure as an error.
	ErrAllocationFailure = errors.New("vecraster: allocation failure")
)

// ErrorReport tallies per-feature problems encountered during a Rasterize
// call. It never aborts the call unless WithStrict(true) is set, in which
// case a geometry or numeric error is returned as a wrapped error instead
// of being tallied here.
type ErrorReport struct {
	// UnsupportedGeometry counts features with a nil geometry plus every
	// malformed ring the traversal skipped (one per ring, so a single
	// feature can add more than one).
	UnsupportedGeometry int

	// SkippedNaN counts features whose value was NaN under a reducer that
	// skips NaN-valued burns; each such feature counts once, however many
	// pixels it covers.
	SkippedNaN int
}

// Empty reports whether no problems were recorded.
func (r ErrorReport) Empty() bool {
	return r.UnsupportedGeometry == 0 && r.SkippedNaN == 0
}
