package scanfill

import "math"

// pixelCache is a dense dedup bitset over a line burn's bounding box, used
// to implement all_touched's two-pass strategy: pass 1 burns ring/line
// edges and records every touched pixel here; pass 2 fills the polygon
// interior, skipping any pixel pass 1 already wrote. Grounded on the Rust
// original's rasterization/rusterize_impl.rs::PixelCache (there backed by
// FixedBitSet; here a []bool serves the same role at a scale — one
// geometry's bounding box — too small for bit-packing to matter).
type pixelCache struct {
	bits           []bool
	width          int
	minRow, minCol int
}

// newPixelCache sizes a cache to the bounding box of edges.
func newPixelCache(edges []lineEdge) *pixelCache {
	minRow, maxRow := math.Inf(1), math.Inf(-1)
	minCol, maxCol := math.Inf(1), math.Inf(-1)
	for _, e := range edges {
		minRow = math.Min(minRow, math.Min(e.row0, e.row1))
		maxRow = math.Max(maxRow, math.Max(e.row0, e.row1))
		minCol = math.Min(minCol, math.Min(e.col0, e.col1))
		maxCol = math.Max(maxCol, math.Max(e.col0, e.col1))
	}
	width := int(math.Floor(maxCol)-math.Floor(minCol)) + 1
	height := int(math.Floor(maxRow)-math.Floor(minRow)) + 1
	return &pixelCache{
		bits:   make([]bool, width*height),
		width:  width,
		minRow: int(minRow),
		minCol: int(minCol),
	}
}

func (c *pixelCache) index(row, col int) int {
	return (row-c.minRow)*c.width + (col - c.minCol)
}

// insert marks (row, col) touched, returning true the first time it is set.
func (c *pixelCache) insert(row, col int) bool {
	idx := c.index(row, col)
	if idx < 0 || idx >= len(c.bits) || c.bits[idx] {
		return false
	}
	c.bits[idx] = true
	return true
}

// contains reports whether (row, col) was already marked by insert.
func (c *pixelCache) contains(row, col int) bool {
	idx := c.index(row, col)
	if idx < 0 || idx >= len(c.bits) {
		return false
	}
	return c.bits[idx]
}
