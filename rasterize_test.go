package vecraster

import (
	"context"
	"math"
	"testing"
)

func ring(coords ...float64) Ring {
	r := make(Ring, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		r = append(r, C(coords[i], coords[i+1]))
	}
	return r
}

func TestRasterizeTriangle(t *testing.T) {
	// Vertices (0,0)-(4,0)-(0,4): under the north-up transform (row
	// increases as world y decreases, per WorldToPixel/geo/edges.rs), the
	// triangle's single point sits at world (0,4) -- raster row 0, the
	// top -- and its wide base sits at world y=0 -- raster row 3, the
	// bottom. So row 0 is narrow and row 3 is the widest row.
	tr := NewAffineTransform(0, 4, 1, 1)
	poly := Polygon{Exterior: ring(0, 0, 4, 0, 0, 4, 0, 0)}

	res, err := Rasterize(context.Background(),
		[]Feature{{Geometry: poly, Value: 1}},
		tr, RasterShape{Bands: 1, Rows: 4, Cols: 4},
		ReducerLast, DTypeU8)
	if err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}

	want := [][]float64{
		{1, 0, 0, 0},
		{1, 1, 0, 0},
		{1, 1, 1, 0},
		{1, 1, 1, 1},
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if got := res.Dense.At(0, r, c); got != want[r][c] {
				t.Errorf("pixel (%d,%d) = %v, want %v", r, c, got, want[r][c])
			}
		}
	}
}

func TestRasterizeOverlappingSquaresSum(t *testing.T) {
	// sq1 occupies world y in [0,2], sq2 world y in [1,3]; under the
	// north-up transform that puts sq1's exclusive area in the bottom
	// raster row and sq2's exclusive area in the top row, with their
	// overlap (x,y in [1,2]) in the middle row.
	tr := NewAffineTransform(0, 3, 1, 1)
	sq1 := Polygon{Exterior: ring(0, 0, 2, 0, 2, 2, 0, 2, 0, 0)}
	sq2 := Polygon{Exterior: ring(1, 1, 3, 1, 3, 3, 1, 3, 1, 1)}

	res, err := Rasterize(context.Background(),
		[]Feature{
			{Geometry: sq1, Value: 3},
			{Geometry: sq2, Value: 5},
		},
		tr, RasterShape{Bands: 1, Rows: 3, Cols: 3},
		ReducerSum, DTypeF64, WithBackground(0))
	if err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}

	want := [][]float64{
		{0, 5, 5},
		{3, 8, 5},
		{3, 3, 0},
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if got := res.Dense.At(0, r, c); got != want[r][c] {
				t.Errorf("pixel (%d,%d) = %v, want %v", r, c, got, want[r][c])
			}
		}
	}
}

func TestRasterizePolygonWithHole(t *testing.T) {
	tr := NewAffineTransform(0, 4, 1, 1)
	poly := Polygon{
		Exterior: ring(0, 0, 4, 0, 4, 4, 0, 4, 0, 0),
		Holes:    []Ring{ring(1, 1, 3, 1, 3, 3, 1, 3, 1, 1)},
	}

	res, err := Rasterize(context.Background(),
		[]Feature{{Geometry: poly, Value: 1}},
		tr, RasterShape{Bands: 1, Rows: 4, Cols: 4},
		ReducerSum, DTypeF64, WithBackground(0))
	if err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}

	for r := 1; r <= 2; r++ {
		for c := 1; c <= 2; c++ {
			if got := res.Dense.At(0, r, c); got != 0 {
				t.Errorf("hole pixel (%d,%d) = %v, want 0", r, c, got)
			}
		}
	}
	borderTotal := 0.0
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if r >= 1 && r <= 2 && c >= 1 && c <= 2 {
				continue
			}
			borderTotal += res.Dense.At(0, r, c)
		}
	}
	if borderTotal != 12 {
		t.Errorf("border total = %v, want 12", borderTotal)
	}
}

func TestRasterizeGroupedBands(t *testing.T) {
	tr := NewAffineTransform(0, 2, 1, 1)
	sqA := Polygon{Exterior: ring(0, 1, 1, 1, 1, 2, 0, 2, 0, 1)}
	sqB := Polygon{Exterior: ring(1, 0, 2, 0, 2, 1, 1, 1, 1, 0)}

	res, err := Rasterize(context.Background(),
		[]Feature{
			{Geometry: sqA, Value: 1, GroupKey: "A"},
			{Geometry: sqB, Value: 1, GroupKey: "B"},
		},
		tr, RasterShape{Rows: 2, Cols: 2},
		ReducerSum, DTypeF64, WithBackground(0))
	if err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}
	if res.Dense.Shape.Bands != 2 {
		t.Fatalf("derived bands = %d, want 2", res.Dense.Shape.Bands)
	}
	if res.Dense.At(0, 0, 0) != 1 {
		t.Errorf("band 0 (A) pixel (0,0) = %v, want 1", res.Dense.At(0, 0, 0))
	}
	if res.Dense.At(0, 1, 1) != 0 {
		t.Errorf("band 0 (A) pixel (1,1) = %v, want 0", res.Dense.At(0, 1, 1))
	}
	if res.Dense.At(1, 1, 1) != 1 {
		t.Errorf("band 1 (B) pixel (1,1) = %v, want 1", res.Dense.At(1, 1, 1))
	}
}

func TestRasterizeAllTouchedLine(t *testing.T) {
	// World (0.1,0.1)-(2.9,2.9) under the north-up transform (0,3,1,1):
	// low y maps to a high row index, so this diagonal runs through
	// pixel space from (row2,col0) to (row0,col2) -- the anti-diagonal
	// of the 3x3 grid, r+c==2.
	tr := NewAffineTransform(0, 3, 1, 1)
	line := LineString{Points: []Coord{C(0.1, 0.1), C(2.9, 2.9)}}

	res, err := Rasterize(context.Background(),
		[]Feature{{Geometry: line, Value: 1}},
		tr, RasterShape{Bands: 1, Rows: 3, Cols: 3},
		ReducerAny, DTypeF64, WithAllTouched(true))
	if err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := 0.0
			if r+c == 2 {
				want = 1
			}
			if got := res.Dense.At(0, r, c); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", r, c, got, want)
			}
		}
	}
}

func TestRasterizeIntegerBackgroundSubstitution(t *testing.T) {
	tr := NewAffineTransform(0, 2, 1, 1)
	pt := Point{Coord: C(0.5, 0.5)}

	res, err := Rasterize(context.Background(),
		[]Feature{{Geometry: pt, Value: 5}},
		tr, RasterShape{Bands: 1, Rows: 2, Cols: 2},
		ReducerLast, DTypeU8, WithBackground(math.NaN()))
	if err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}
	if got := res.Dense.At(0, 1, 1); got != 0 {
		t.Errorf("untouched pixel = %v, want 0 (NaN background falls back to dtype default)", got)
	}
}

func TestRasterizeFloatDefaultBackgroundIsNaN(t *testing.T) {
	tr := NewAffineTransform(0, 2, 1, 1)
	pt := Point{Coord: C(0.5, 0.5)}

	res, err := Rasterize(context.Background(),
		[]Feature{{Geometry: pt, Value: 5}},
		tr, RasterShape{Bands: 1, Rows: 2, Cols: 2},
		ReducerLast, DTypeF64)
	if err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}
	if got := res.Dense.At(0, 0, 0); !math.IsNaN(got) {
		t.Errorf("untouched pixel = %v, want NaN (float dtype's default fill when no background given)", got)
	}
	if got := res.Dense.At(0, 1, 0); got != 5 {
		t.Errorf("touched pixel = %v, want 5", got)
	}
}

func TestRasterizeCountAndAnyStillBurnNaNValuedFeatures(t *testing.T) {
	tr := NewAffineTransform(0, 2, 1, 1)
	pt1 := Point{Coord: C(0.5, 0.5)}
	pt2 := Point{Coord: C(0.5, 0.5)}

	countRes, err := Rasterize(context.Background(),
		[]Feature{
			{Geometry: pt1, Value: math.NaN()},
			{Geometry: pt2, Value: math.NaN()},
		},
		tr, RasterShape{Bands: 1, Rows: 2, Cols: 2},
		ReducerCount, DTypeU8)
	if err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}
	if got := countRes.Dense.At(0, 1, 0); got != 2 {
		t.Errorf("count of two NaN-valued features = %v, want 2", got)
	}
	if countRes.Errors.SkippedNaN != 0 {
		t.Errorf("SkippedNaN = %d, want 0 (count doesn't skip NaN)", countRes.Errors.SkippedNaN)
	}

	anyRes, err := Rasterize(context.Background(),
		[]Feature{{Geometry: pt1, Value: math.NaN()}},
		tr, RasterShape{Bands: 1, Rows: 2, Cols: 2},
		ReducerAny, DTypeU8)
	if err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}
	if got := anyRes.Dense.At(0, 1, 0); got != 1 {
		t.Errorf("any over a NaN-valued feature = %v, want 1 (touched)", got)
	}
	if anyRes.Errors.SkippedNaN != 0 {
		t.Errorf("SkippedNaN = %d, want 0 (any doesn't skip NaN)", anyRes.Errors.SkippedNaN)
	}

	sumRes, err := Rasterize(context.Background(),
		[]Feature{{Geometry: pt1, Value: math.NaN()}},
		tr, RasterShape{Bands: 1, Rows: 2, Cols: 2},
		ReducerSum, DTypeF64)
	if err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}
	if got := sumRes.Dense.At(0, 1, 0); !math.IsNaN(got) {
		t.Errorf("sum over a NaN-valued feature = %v, want NaN background (sum skips NaN contributions)", got)
	}
	if sumRes.Errors.SkippedNaN != 1 {
		t.Errorf("SkippedNaN = %d, want 1 (sum skips NaN)", sumRes.Errors.SkippedNaN)
	}
}

func TestRasterizeEmptyInputError(t *testing.T) {
	tr := NewAffineTransform(0, 1, 1, 1)
	_, err := Rasterize(context.Background(), nil, tr, RasterShape{Bands: 1, Rows: 1, Cols: 1}, ReducerSum, DTypeF64)
	if err != ErrEmptyInput {
		t.Errorf("err = %v, want ErrEmptyInput", err)
	}
}

func TestRasterizeInvalidTransformError(t *testing.T) {
	tr := AffineTransform{}
	_, err := Rasterize(context.Background(),
		[]Feature{{Geometry: Point{Coord: C(0, 0)}, Value: 1}},
		tr, RasterShape{Bands: 1, Rows: 1, Cols: 1}, ReducerSum, DTypeF64)
	if err != ErrInvalidTransform {
		t.Errorf("err = %v, want ErrInvalidTransform", err)
	}
}

func TestRasterizeShapeMismatchOnBadBandCount(t *testing.T) {
	tr := NewAffineTransform(0, 2, 1, 1)
	sqA := Polygon{Exterior: ring(0, 0, 1, 0, 1, 1, 0, 1, 0, 0)}
	sqB := Polygon{Exterior: ring(1, 1, 2, 1, 2, 2, 1, 2, 1, 1)}

	_, err := Rasterize(context.Background(),
		[]Feature{
			{Geometry: sqA, Value: 1, GroupKey: "A"},
			{Geometry: sqB, Value: 1, GroupKey: "B"},
		},
		tr, RasterShape{Bands: 5, Rows: 2, Cols: 2},
		ReducerSum, DTypeF64)
	if err == nil {
		t.Fatal("expected ErrShapeMismatch, got nil")
	}
}

func TestRasterizeSparseEncoding(t *testing.T) {
	tr := NewAffineTransform(0, 3, 1, 1)
	sq := Polygon{Exterior: ring(0, 0, 2, 0, 2, 2, 0, 2, 0, 0)}

	res, err := Rasterize(context.Background(),
		[]Feature{{Geometry: sq, Value: 4}},
		tr, RasterShape{Bands: 1, Rows: 3, Cols: 3},
		ReducerSum, DTypeF64, WithEncoding(Sparse))
	if err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}
	if res.Sparse == nil {
		t.Fatal("expected Sparse result")
	}
	if len(res.Sparse.Triplets) == 0 {
		t.Fatal("expected at least one triplet")
	}
	for _, tp := range res.Sparse.Triplets {
		if tp.Value != 4 {
			t.Errorf("triplet at (%d,%d) = %v, want 4", tp.Row, tp.Col, tp.Value)
		}
	}
}

func TestRasterizeStrictModeAbortsOnUnsupportedGeometry(t *testing.T) {
	tr := NewAffineTransform(0, 2, 1, 1)
	_, err := Rasterize(context.Background(),
		[]Feature{{Geometry: nil, Value: 1}},
		tr, RasterShape{Bands: 1, Rows: 2, Cols: 2},
		ReducerSum, DTypeF64, WithStrict(true))
	if err == nil {
		t.Fatal("expected error in strict mode with nil geometry")
	}
}

func TestRasterizeNonStrictTalliesUnsupportedGeometry(t *testing.T) {
	tr := NewAffineTransform(0, 2, 1, 1)
	pt := Point{Coord: C(0.5, 0.5)}
	res, err := Rasterize(context.Background(),
		[]Feature{
			{Geometry: nil, Value: 1},
			{Geometry: pt, Value: 1},
		},
		tr, RasterShape{Bands: 1, Rows: 2, Cols: 2},
		ReducerSum, DTypeF64)
	if err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}
	if res.Errors.UnsupportedGeometry != 1 {
		t.Errorf("UnsupportedGeometry = %d, want 1", res.Errors.UnsupportedGeometry)
	}
}
