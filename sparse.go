package vecraster

import "github.com/vecraster/vecraster/internal/accum"

// Triplet is one materialized (band, row, col, value) entry in a
// SparseArray, the Go equivalent of the Rust original's Triplets columnar
// (rows, cols, data) storage flattened to one struct per entry for
// simplicity — this engine's sparse outputs are small enough relative to
// Go's allocator that the columnar layout's cache-locality win does not
// outweigh the ergonomics of a single slice type.
type Triplet struct {
	Band     int
	Row, Col int
	Value    float64
}

// SparseArray holds only the pixels a call actually touched, as a COO
// (coordinate) triplet list, one entry per touched pixel per band.
// Grounded on the Rust original's encoding/arrays.rs::SparseArray, with
// ToXarray's georeferencing wrapper replaced by a plain ToDense (CRS/xarray
// attachment is out of scope here).
type SparseArray struct {
	Shape     RasterShape
	Transform AffineTransform
	Triplets  []Triplet
}

// ToDense materializes the sparse array into a contiguous dense buffer,
// filling every untouched pixel with background. Triplets are unordered
// and may repeat a (band, row, col) coordinate — ToDense folds repeats
// through reducer exactly as the writer that first produced a SparseArray
// would have, so sparse.ToDense(r, bg) agrees with a dense burn under the
// same reducer regardless of how the triplets were assembled.
func (s *SparseArray) ToDense(reducer Reducer, background float64) *DenseBuffer {
	buf := NewDenseBuffer(s.Shape, background)
	if len(s.Triplets) == 0 {
		return buf
	}

	type coord struct{ band, row, col int }
	cells := make(map[coord]*accum.Cell, len(s.Triplets))
	order := make([]coord, 0, len(s.Triplets))
	for i, t := range s.Triplets {
		key := coord{t.Band, t.Row, t.Col}
		c, ok := cells[key]
		if !ok {
			c = &accum.Cell{}
			cells[key] = c
			order = append(order, key)
		}
		c.Update(reducer, t.Value, int64(i))
	}
	for _, key := range order {
		buf.Set(key.band, key.row, key.col, cells[key].Finalize(reducer, background))
	}
	return buf
}

// ToFrame returns the triplets as parallel column slices (bands, rows,
// cols, values), the shape a caller would hand to a dataframe library —
// mirroring the Rust original's Triplets columnar layout at the output
// boundary, even though SparseArray itself stores row-major structs.
func (s *SparseArray) ToFrame() (bands, rows, cols []int, values []float64) {
	n := len(s.Triplets)
	bands = make([]int, n)
	rows = make([]int, n)
	cols = make([]int, n)
	values = make([]float64, n)
	for i, t := range s.Triplets {
		bands[i] = t.Band
		rows[i] = t.Row
		cols[i] = t.Col
		values[i] = t.Value
	}
	return bands, rows, cols, values
}

// DenseBuffer is a contiguous, band-major output raster: band b, row r,
// col c lives at index ((b*Shape.Rows)+r)*Shape.Cols+c.
type DenseBuffer struct {
	Shape RasterShape
	Data  []float64
}

// NewDenseBuffer allocates a buffer for shape, pre-filled with background.
func NewDenseBuffer(shape RasterShape, background float64) *DenseBuffer {
	data := make([]float64, shape.Bands*shape.Rows*shape.Cols)
	for i := range data {
		data[i] = background
	}
	return &DenseBuffer{Shape: shape, Data: data}
}

func (b *DenseBuffer) index(band, row, col int) int {
	return (band*b.Shape.Rows+row)*b.Shape.Cols + col
}

// Set writes value at (band, row, col).
func (b *DenseBuffer) Set(band, row, col int, value float64) {
	b.Data[b.index(band, row, col)] = value
}

// At returns the value at (band, row, col).
func (b *DenseBuffer) At(band, row, col int) float64 {
	return b.Data[b.index(band, row, col)]
}
