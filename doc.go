// Package vecraster rasterizes vector features into a dense raster or a
// sparse coordinate list.
//
// # Overview
//
// vecraster takes a collection of geometric features (polygons, lines,
// points, and arbitrarily nested collections of them) each carrying a
// numeric value and an optional band key, and produces a raster whose
// pixels hold values aggregated from every geometry that touches them. It
// follows GDAL's gdal_rasterize pixel-center convention so that results
// agree with GDAL/rasterio pixel-for-pixel.
//
// # Quick Start
//
//	import "github.com/vecraster/vecraster"
//
//	transform := vecraster.NewAffineTransform(0, 4, 1, 1) // xmin, ymax, xres, yres
//	shape := vecraster.RasterShape{Bands: 1, Rows: 4, Cols: 4}
//
//	features := []vecraster.Feature{
//	    {Geometry: vecraster.Polygon{Exterior: ring}, Value: 1},
//	}
//
//	result, err := vecraster.Rasterize(context.Background(), features, transform, shape,
//	    vecraster.ReducerLast, vecraster.DTypeU8)
//
// # Architecture
//
// The package is organized into:
//   - Public API: AffineTransform, Geometry, Feature, SparseArray, Rasterize
//   - internal/geomwalk: recursive-free geometry flattening into primitives
//   - internal/scanfill: the polygon/line/point scanline rasterizer
//   - internal/accum: reducer dispatch and dense/sparse accumulation
//   - internal/dtype: output dtype policy (saturating cast, background fill)
//   - internal/parallel: feature-sliced worker pool
//   - internal/telemetry: structured logging and Prometheus metrics
//
// # Coordinate System
//
// World coordinates follow the canonical GDAL affine convention: origin at
// the top-left (xmin, ymax) of the raster, x increasing to the right,
// y decreasing downward (yres is stored positive, applied with a negative
// sign internally). Pixel (row, col) addresses follow row-major order with
// (0, 0) at the top-left.
package vecraster

// Version is the current version of the module.
const Version = "0.1.0"
