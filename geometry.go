package vecraster

import "github.com/vecraster/vecraster/internal/geom"

// Geometry is the tagged union of shapes Rasterize accepts: Point,
// LineString, Polygon, MultiPoint, MultiLineString, MultiPolygon, and
// GeometryCollection all implement it. It is a re-export of
// internal/geom.Geometry; the concrete types live there so
// internal/geomwalk can consume them without importing this package.
type Geometry = geom.Geometry

// Point is a single coordinate.
type Point = geom.Point

// Ring is a closed sequence of coordinates: first == last, len(Ring) >= 4.
// A Ring with fewer than 4 points or whose first and last coordinates
// differ is degenerate and is skipped by the traversal (counted in
// ErrorReport.UnsupportedGeometry).
type Ring = geom.Ring

// LineString is an open or closed polyline.
type LineString = geom.LineString

// Polygon is an exterior ring plus zero or more interior holes.
type Polygon = geom.Polygon

// MultiPoint is a collection of points burned as a unit.
type MultiPoint = geom.MultiPoint

// MultiLineString is a collection of linestrings burned as a unit.
type MultiLineString = geom.MultiLineString

// MultiPolygon is a collection of polygons burned as a unit. Under
// all_touched mode each member polygon is burned with its own PixelCache,
// so a pixel on a boundary that two members share is burned once per
// member.
type MultiPolygon = geom.MultiPolygon

// GeometryCollection nests arbitrary geometries, including further
// collections. internal/geomwalk traverses this with an explicit stack so
// depth is unbounded without recursion.
type GeometryCollection = geom.GeometryCollection

// Feature pairs a geometry with the value burned into every pixel it
// covers, and an optional GroupKey selecting which output band receives
// the burn. An empty GroupKey means "ungrouped": all features share the
// single implicit band.
type Feature = geom.Feature

// RasterShape describes the output raster's dimensions. Bands may be left
// at 0, in which case Rasterize derives it from the number of distinct
// GroupKey values seen across features, in first-appearance order. A
// nonzero Bands that disagrees with that derived count when grouping is
// in use is an ErrShapeMismatch.
type RasterShape = geom.RasterShape
