// Package geomwalk flattens the Geometry tagged union into the primitives
// internal/scanfill rasterizes: rings, line segments, and points. Traversal
// uses an explicit stack rather than recursion, so a deeply nested
// GeometryCollection cannot blow the call stack.
//
// Grounded on gogpu/gg's internal/path.EdgeIter, adapted from iterating
// bezier path elements to iterating geometry-tree nodes, and on the Rust
// original's geo/edges.rs extraction functions (extract_ring, extract_line,
// extract_point), which this package's Walk feeds into rather than
// duplicating the world-to-pixel conversion itself.
package geomwalk

import "github.com/vecraster/vecraster/internal/geom"

// RingPrimitive is a polygon's exterior ring plus its holes, burned as one
// even-odd fill.
type RingPrimitive struct {
	Exterior geom.Ring
	Holes    []geom.Ring
}

// SegmentPrimitive is a single linestring, burned as a polyline.
type SegmentPrimitive struct {
	Points []geom.Coord
	Closed bool
}

// PointPrimitive is a single coordinate, burned as one pixel.
type PointPrimitive struct {
	Coord geom.Coord
}

// Primitive is the tagged union geomwalk emits.
type Primitive interface {
	isPrimitive()
}

func (RingPrimitive) isPrimitive()    {}
func (SegmentPrimitive) isPrimitive() {}
func (PointPrimitive) isPrimitive()   {}

// Walk flattens g into primitives, calling visit once per primitive.
// Degenerate rings (fewer than 4 points, or not closed) are dropped and
// reported via onDegenerate rather than emitted as a RingPrimitive.
func Walk(g geom.Geometry, visit func(Primitive), onDegenerate func()) {
	stack := []geom.Geometry{g}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]

		switch v := cur.(type) {
		case geom.Point:
			visit(PointPrimitive{Coord: v.Coord})

		case geom.MultiPoint:
			for _, c := range v.Points {
				visit(PointPrimitive{Coord: c})
			}

		case geom.LineString:
			visit(SegmentPrimitive{Points: v.Points, Closed: v.Closed()})

		case geom.MultiLineString:
			for _, l := range v.Lines {
				visit(SegmentPrimitive{Points: l.Points, Closed: l.Closed()})
			}

		case geom.Polygon:
			walkPolygon(v, visit, onDegenerate)

		case geom.MultiPolygon:
			for _, p := range v.Polygons {
				walkPolygon(p, visit, onDegenerate)
			}

		case geom.GeometryCollection:
			for i := len(v.Geometries) - 1; i >= 0; i-- {
				stack = append(stack, v.Geometries[i])
			}
		}
	}
}

func walkPolygon(p geom.Polygon, visit func(Primitive), onDegenerate func()) {
	if !p.Exterior.Valid() {
		onDegenerate()
		return
	}
	holes := make([]geom.Ring, 0, len(p.Holes))
	for _, h := range p.Holes {
		if !h.Valid() {
			onDegenerate()
			continue
		}
		holes = append(holes, h)
	}
	visit(RingPrimitive{Exterior: p.Exterior, Holes: holes})
}
