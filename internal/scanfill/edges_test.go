package scanfill

import (
	"testing"

	"github.com/vecraster/vecraster/internal/affine"
	"github.com/vecraster/vecraster/internal/geom"
)

func TestExtractRingDropsHorizontalEdges(t *testing.T) {
	tr := affine.New(0, 10, 1, 1)
	ring := geom.Ring{geom.C(0, 5), geom.C(5, 5), geom.C(5, 0), geom.C(0, 0), geom.C(0, 5)}
	edges := extractRing(ring, tr, 10)

	for _, e := range edges {
		if e.yStart == e.yEnd {
			t.Errorf("horizontal edge should have been dropped: %+v", e)
		}
	}
	if len(edges) == 0 {
		t.Fatal("expected at least the two vertical edges to survive")
	}
}

func TestExtractLineKeepsInBoundsSegments(t *testing.T) {
	tr := affine.New(0, 10, 1, 1)
	points := []geom.Coord{geom.C(0, 10), geom.C(100, 10), geom.C(5, 5)}
	edges := extractLine(points, false, tr, 10, 10)
	if len(edges) != 2 {
		t.Fatalf("expected 2 segments overlapping the raster, got %d", len(edges))
	}
}

func TestExtractPointInBounds(t *testing.T) {
	tr := affine.New(0, 10, 1, 1)
	row, col, ok := extractPoint(geom.C(5, 5), tr, 10, 10)
	if !ok {
		t.Fatal("expected point inside raster to be ok")
	}
	if row != 5 || col != 5 {
		t.Errorf("extractPoint = (%d,%d), want (5,5)", row, col)
	}
}

func TestExtractPointOutOfBounds(t *testing.T) {
	tr := affine.New(0, 10, 1, 1)
	_, _, ok := extractPoint(geom.C(100, 100), tr, 10, 10)
	if ok {
		t.Error("expected out-of-bounds point to report ok=false")
	}
}

func TestNewPolyEdgeOrdersTopToBottom(t *testing.T) {
	e, ok := newPolyEdge(8, 2, 2, 2)
	if !ok {
		t.Fatal("expected non-horizontal edge to be accepted")
	}
	if e.row0 != 2 {
		t.Errorf("row0 = %v, want 2 (top row first)", e.row0)
	}
	if e.yStart >= e.yEnd {
		t.Errorf("yStart=%d yEnd=%d, want yStart < yEnd", e.yStart, e.yEnd)
	}
}

func TestNewPolyEdgeHorizontalRejected(t *testing.T) {
	_, ok := newPolyEdge(4, 0, 4, 10)
	if ok {
		t.Error("horizontal edge should be rejected")
	}
}
