// Package scanfill implements the polygon scan converter and the line and
// point rasterizers: the geometry primitives internal/geomwalk emits are
// converted here into pixel writes via internal/accum.PixelWriter.
//
// Grounded on gogpu/gg's raster/edge.go (Edge, SimpleAET insertion-sorted
// active-edge table) and internal/raster/raster.go's scanline loop for the
// overall AET shape, and on the Rust original's geo/edges.rs
// (extract_ring/extract_line/extract_point), rasterization/burners.rs
// (burn_polygon, Standard/AllTouched line strategies) and
// rasterization/rusterize_impl.rs::PixelCache for the exact half-open
// scanline semantics, GDAL pixel-center rounding, and all_touched two-pass
// dedup this package reproduces pixel for pixel.
package scanfill

import (
	"math"

	"github.com/vecraster/vecraster/internal/affine"
	"github.com/vecraster/vecraster/internal/geom"
)

// polyEdge is one non-horizontal ring segment in pixel space, stored
// top-to-bottom (row0 < row1) so yStart/yEnd describe a half-open scanline
// span [yStart, yEnd).
type polyEdge struct {
	yStart, yEnd int
	col0, row0   float64
	dColdRow     float64
	colAtRow     float64
}

// newPolyEdge builds a polyEdge from two ring vertices already converted to
// pixel (row, col) space. It returns ok=false for a horizontal edge, which
// contributes no scanline crossings and is dropped, matching
// geo/edges.rs::extract_ring's epsilon check.
func newPolyEdge(row0, col0, row1, col1 float64) (polyEdge, bool) {
	if row0 == row1 {
		return polyEdge{}, false
	}
	colTop, rowTop, colBot, rowBot := col0, row0, col1, row1
	if rowTop > rowBot {
		colTop, rowTop, colBot, rowBot = colBot, rowBot, colTop, rowTop
	}
	yStart := int(math.Ceil(rowTop - 0.5))
	yEnd := int(math.Ceil(rowBot - 0.5))
	dColdRow := (colBot - colTop) / (rowBot - rowTop)
	return polyEdge{
		yStart:   yStart,
		yEnd:     yEnd,
		col0:     colTop,
		row0:     rowTop,
		dColdRow: dColdRow,
	}, true
}

// intersectAt returns the edge's column intersection with the scanline
// centered at yline (yline + 0.5), matching PolyEdge::intersect_at.
func (e polyEdge) intersectAt(yline int) float64 {
	centerRow := float64(yline) + 0.5
	return e.col0 + (centerRow-e.row0)*e.dColdRow
}

// lineEdge is one ring/linestring segment in pixel space, used by both
// line rasterization strategies.
type lineEdge struct {
	col0, row0, col1, row1 float64
	closed                 bool
}

// extractRing converts a ring's consecutive vertex pairs into polyEdges,
// dropping horizontal edges and edges wholly above or below the raster's
// rows (edges outside its columns are kept). Grounded on
// geo/edges.rs::extract_ring.
func extractRing(ring geom.Ring, tr affine.Transform, rows int) []polyEdge {
	edges := make([]polyEdge, 0, len(ring))
	rowsF := float64(rows)
	for i := 0; i < len(ring)-1; i++ {
		row0, col0 := tr.WorldToPixel(ring[i].X, ring[i].Y)
		row1, col1 := tr.WorldToPixel(ring[i+1].X, ring[i+1].Y)

		minRow, maxRow := row0, row1
		if minRow > maxRow {
			minRow, maxRow = maxRow, minRow
		}
		if !(minRow < rowsF && maxRow >= 0) {
			continue
		}
		if e, ok := newPolyEdge(row0, col0, row1, col1); ok {
			edges = append(edges, e)
		}
	}
	return edges
}

// extractLine converts a ring/linestring's consecutive vertex pairs into
// lineEdges, dropping out-of-raster segments. Grounded on
// geo/edges.rs::extract_line.
func extractLine(points []geom.Coord, closed bool, tr affine.Transform, rows, cols int) []lineEdge {
	edges := make([]lineEdge, 0, len(points))
	rowsF, colsF := float64(rows), float64(cols)
	for i := 0; i < len(points)-1; i++ {
		row0, col0 := tr.WorldToPixel(points[i].X, points[i].Y)
		row1, col1 := tr.WorldToPixel(points[i+1].X, points[i+1].Y)

		minCol, maxCol := col0, col1
		if minCol > maxCol {
			minCol, maxCol = maxCol, minCol
		}
		minRow, maxRow := row0, row1
		if minRow > maxRow {
			minRow, maxRow = maxRow, minRow
		}
		if minCol < colsF && maxCol >= 0 && minRow < rowsF && maxRow >= 0 {
			edges = append(edges, lineEdge{col0: col0, row0: row0, col1: col1, row1: row1, closed: closed})
		}
	}
	return edges
}

// extractPoint converts a single coordinate to an in-bounds pixel, or
// ok=false if it falls outside the raster. Grounded on
// geo/edges.rs::extract_point.
func extractPoint(c geom.Coord, tr affine.Transform, rows, cols int) (row, col int, ok bool) {
	rowF, colF := tr.WorldToPixel(c.X, c.Y)
	if colF < 0 || colF >= float64(cols) || rowF < 0 || rowF >= float64(rows) {
		return 0, 0, false
	}
	return int(rowF), int(colF), true
}
