package scanfill

import (
	"reflect"

	"github.com/vecraster/vecraster/internal/accum"
	"github.com/vecraster/vecraster/internal/affine"
	"github.com/vecraster/vecraster/internal/geom"
	"github.com/vecraster/vecraster/internal/geomwalk"
)

// Job describes one feature's burn: its flattened geometry, the value it
// contributes, the reducer/writer it burns into, and whether all_touched
// mode is active. Dispatch mirrors the Rust original's
// rasterization/burn_geometry.rs type switch over Geometry, generalized
// from a trait-per-type to a Go type switch over geomwalk.Primitive since
// Go has no trait dispatch at this granularity.
type Job struct {
	Transform  affine.Transform
	Rows, Cols int
	AllTouched bool
	FeatureIdx int64
	Value      float64
	Writer     accum.PixelWriter
}

// Burn walks g's primitives and writes each one into job.Writer.
// onDegenerate is invoked once per malformed ring encountered.
func Burn(job Job, g geom.Geometry, scratch *ScratchPool, onDegenerate func()) {
	geomwalk.Walk(g, func(p geomwalk.Primitive) {
		switch v := p.(type) {
		case geomwalk.PointPrimitive:
			burnPoint(job, v)
		case geomwalk.SegmentPrimitive:
			burnSegment(job, v)
		case geomwalk.RingPrimitive:
			burnRing(job, v, scratch)
		}
	}, onDegenerate)
}

func burnPoint(job Job, p geomwalk.PointPrimitive) {
	row, col, ok := extractPoint(p.Coord, job.Transform, job.Rows, job.Cols)
	if !ok {
		return
	}
	job.Writer.Write(row, col, job.FeatureIdx, job.Value)
}

func burnSegment(job Job, s geomwalk.SegmentPrimitive) {
	edges := extractLine(s.Points, s.Closed, job.Transform, job.Rows, job.Cols)
	if len(edges) == 0 {
		return
	}

	needsDedup := job.AllTouched && (job.Transform.XRes() != job.Transform.YRes())
	write := func(row, col int) { job.Writer.Write(row, col, job.FeatureIdx, job.Value) }

	if needsDedup {
		cache := newPixelCache(edges)
		dedup := func(row, col int) {
			if cache.insert(row, col) {
				write(row, col)
			}
		}
		burnLine(job.AllTouched, edges, job.Rows, job.Cols, dedup)
		return
	}
	burnLine(job.AllTouched, edges, job.Rows, job.Cols, write)
}

// ringIdentity returns an identity for a ring's exterior (the address of
// its backing array), used to key ScratchPool's edge-count hints. Burns of
// a ring that share a backing array share the identity; a ring with a
// different backing array misses the hint cache. The hints live in a
// per-run ScratchPool, so they are not shared across Rasterize calls.
func ringIdentity(exterior geom.Ring) uintptr {
	if len(exterior) == 0 {
		return 0
	}
	return reflect.ValueOf(exterior).Pointer()
}

func burnRing(job Job, r geomwalk.RingPrimitive, scratch *ScratchPool) {
	id := ringIdentity(r.Exterior)
	polyEdges := scratch.getPolyEdgesFor(id)
	polyEdges = append(polyEdges, extractRing(r.Exterior, job.Transform, job.Rows)...)
	for _, h := range r.Holes {
		polyEdges = append(polyEdges, extractRing(h, job.Transform, job.Rows)...)
	}
	scratch.recordPolyEdgeCount(id, len(polyEdges))
	defer scratch.putPolyEdges(polyEdges)

	write := func(row, col int) { job.Writer.Write(row, col, job.FeatureIdx, job.Value) }

	if !job.AllTouched {
		fillPolygon(polyEdges, job.Rows, job.Cols, write)
		return
	}

	lineEdges := scratch.getLineEdges()
	lineEdges = append(lineEdges, extractLine(r.Exterior, true, job.Transform, job.Rows, job.Cols)...)
	for _, h := range r.Holes {
		lineEdges = append(lineEdges, extractLine(h, true, job.Transform, job.Rows, job.Cols)...)
	}
	defer scratch.putLineEdges(lineEdges)

	if len(lineEdges) == 0 {
		fillPolygon(polyEdges, job.Rows, job.Cols, write)
		return
	}

	cache := newPixelCache(lineEdges)

	// pass 1: burn exterior/hole boundaries, recording every touched pixel.
	burnLineAllTouched(lineEdges, job.Rows, job.Cols, func(row, col int) {
		if cache.insert(row, col) {
			write(row, col)
		}
	})

	// pass 2: fill the interior, skipping pixels pass 1 already wrote.
	fillPolygon(polyEdges, job.Rows, job.Cols, func(row, col int) {
		if !cache.contains(row, col) {
			write(row, col)
		}
	})
}

func burnLine(allTouched bool, edges []lineEdge, rows, cols int, write func(row, col int)) {
	if allTouched {
		burnLineAllTouched(edges, rows, cols, write)
		return
	}
	burnLineStandard(edges, rows, cols, write)
}
