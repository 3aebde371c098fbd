package accum

// PixelWriter receives one burn at pixel (row, col) for a given feature
// value and reducer. Grounded on the Rust original's
// encoding/writers.rs::PixelWriter trait; internal/scanfill wraps a
// PixelWriter with a dedup PixelCache the same way the original's
// LineWriter/FillWriter pair does for all_touched's two-pass burn.
type PixelWriter interface {
	Write(row, col int, featureIdx int64, value float64)
}

// DenseWriter accumulates into a contiguous grid of Cells for one band.
// Rows and Cols describe the grid.
type DenseWriter struct {
	Reducer    Reducer
	Rows, Cols int
	Cells      []Cell
}

// NewDenseWriter allocates a Rows*Cols cell grid for the given reducer.
func NewDenseWriter(reducer Reducer, rows, cols int) *DenseWriter {
	return &DenseWriter{
		Reducer: reducer,
		Rows:    rows,
		Cols:    cols,
		Cells:   make([]Cell, rows*cols),
	}
}

// Write implements PixelWriter. Out-of-bounds writes are ignored: the
// scan converter clips to the raster before calling Write, so this is a
// defensive bound rather than an expected path.
func (w *DenseWriter) Write(row, col int, featureIdx int64, value float64) {
	if row < 0 || row >= w.Rows || col < 0 || col >= w.Cols {
		return
	}
	idx := row*w.Cols + col
	w.Cells[idx].Update(w.Reducer, value, featureIdx)
}

// Finalize writes every cell's reduced value into dst (len(dst) ==
// Rows*Cols), substituting background for untouched pixels.
func (w *DenseWriter) Finalize(dst []float64, background float64) {
	for i := range w.Cells {
		dst[i] = w.Cells[i].Finalize(w.Reducer, background)
	}
}

// Merge folds other's cells into w in place, used to combine per-worker
// slabs covering the same band after parallel burning.
func (w *DenseWriter) Merge(other *DenseWriter) {
	for i := range w.Cells {
		w.Cells[i].Merge(w.Reducer, other.Cells[i])
	}
}

// SparseTriplet is one materialized (band, row, col, value) entry.
type SparseTriplet struct {
	Band       int
	Row, Col   int
	FeatureIdx int64
	Value      float64
}

// SparseWriter appends one triplet per burn without deduplicating repeat
// writes to the same pixel; Fold folds repeats using the reducer so
// the final list holds one entry per touched pixel, matching
// encoding/arrays.rs::SparseArray's post-collection fold.
type SparseWriter struct {
	Band    int
	Reducer Reducer
	entries []SparseTriplet
}

// NewSparseWriter creates a writer that appends into band Band.
func NewSparseWriter(reducer Reducer, band int) *SparseWriter {
	return &SparseWriter{Band: band, Reducer: reducer}
}

// Write implements PixelWriter.
func (w *SparseWriter) Write(row, col int, featureIdx int64, value float64) {
	w.entries = append(w.entries, SparseTriplet{
		Band: w.Band, Row: row, Col: col, FeatureIdx: featureIdx, Value: value,
	})
}

// Merge appends other's raw entries into w. Unlike DenseWriter.Merge this
// does no reduction: repeats are collapsed once, by Fold, after every slab
// has merged in.
func (w *SparseWriter) Merge(other *SparseWriter) {
	w.entries = append(w.entries, other.entries...)
}

// Fold collapses repeated writes to the same (band, row, col) using the
// writer's reducer, returning one triplet per touched pixel. Because
// entries arrive in burn order (not sorted), Fold builds a per-pixel Cell
// map rather than relying on adjacency.
func (w *SparseWriter) Fold() []SparseTriplet {
	cells := make(map[[2]int]*Cell, len(w.entries))
	order := make([][2]int, 0, len(w.entries))
	for _, e := range w.entries {
		key := [2]int{e.Row, e.Col}
		c, ok := cells[key]
		if !ok {
			c = &Cell{}
			cells[key] = c
			order = append(order, key)
		}
		c.Update(w.Reducer, e.Value, e.FeatureIdx)
	}
	out := make([]SparseTriplet, 0, len(order))
	for _, key := range order {
		c := cells[key]
		if !c.Touched {
			continue
		}
		out = append(out, SparseTriplet{
			Band: w.Band, Row: key[0], Col: key[1],
			FeatureIdx: c.FeatureIdx,
			Value:      c.Finalize(w.Reducer, 0),
		})
	}
	return out
}
