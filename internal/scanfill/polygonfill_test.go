package scanfill

import (
	"testing"

	"github.com/vecraster/vecraster/internal/affine"
	"github.com/vecraster/vecraster/internal/geom"
)

func collectPixels(f func(func(row, col int))) map[[2]int]bool {
	out := map[[2]int]bool{}
	f(func(row, col int) { out[[2]int{row, col}] = true })
	return out
}

func TestFillPolygonSquare(t *testing.T) {
	tr := affine.New(0, 10, 1, 1)
	ring := geom.Ring{geom.C(2, 8), geom.C(2, 4), geom.C(6, 4), geom.C(6, 8), geom.C(2, 8)}
	edges := extractRing(ring, tr, 10)

	pixels := collectPixels(func(write func(row, col int)) {
		fillPolygon(edges, 10, 10, write)
	})

	if !pixels[[2]int{3, 3}] {
		t.Error("expected interior pixel (3,3) to be filled")
	}
	if pixels[[2]int{0, 0}] {
		t.Error("pixel (0,0) outside the square should not be filled")
	}
}

func TestFillPolygonWithHoleLeavesHoleEmpty(t *testing.T) {
	tr := affine.New(0, 10, 1, 1)
	ext := geom.Ring{geom.C(0, 10), geom.C(0, 0), geom.C(10, 0), geom.C(10, 10), geom.C(0, 10)}
	hole := geom.Ring{geom.C(3, 7), geom.C(3, 3), geom.C(7, 3), geom.C(7, 7), geom.C(3, 7)}

	edges := extractRing(ext, tr, 10)
	edges = append(edges, extractRing(hole, tr, 10)...)

	pixels := collectPixels(func(write func(row, col int)) {
		fillPolygon(edges, 10, 10, write)
	})

	if !pixels[[2]int{1, 1}] {
		t.Error("expected pixel (1,1) inside exterior but outside hole to be filled")
	}
	if pixels[[2]int{5, 5}] {
		t.Error("pixel (5,5) inside the hole should not be filled")
	}
}

func TestFillPolygonEmptyEdgesNoop(t *testing.T) {
	called := false
	fillPolygon(nil, 10, 10, func(row, col int) { called = true })
	if called {
		t.Error("fillPolygon with no edges should not call write")
	}
}
