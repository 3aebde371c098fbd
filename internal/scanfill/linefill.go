package scanfill

import "math"

const (
	allTouchedEpsilon = 1e-4
	allTouchedTol     = 1e-9
)

// burnLineStandard rasterizes edges with an integer Bresenham variant,
// writing only the pixels the ideal line passes through and the line's
// final endpoint when it is not a closed ring. Grounded on the Rust
// original's rasterization/burners.rs::Standard::burn_line.
func burnLineStandard(edges []lineEdge, rows, cols int, write func(row, col int)) {
	if len(edges) == 0 {
		return
	}
	lastIdx := len(edges) - 1

	for idx, e := range edges {
		ix0, iy0 := int(math.Floor(e.col0)), int(math.Floor(e.row0))
		ix1, iy1 := int(math.Floor(e.col1)), int(math.Floor(e.row1))

		dx := abs(ix1 - ix0)
		dy := -abs(iy1 - iy0)
		sx, sy := 1, 1
		if ix0 >= ix1 {
			sx = -1
		}
		if iy0 >= iy1 {
			sy = -1
		}

		err := dx + dy
		for ix0 != ix1 || iy0 != iy1 {
			if inBounds(ix0, iy0, cols, rows) {
				write(iy0, ix0)
			}
			e2 := 2 * err
			if e2 >= dy {
				err += dy
				ix0 += sx
			}
			if e2 <= dx {
				err += dx
				iy0 += sy
			}
		}

		if idx == lastIdx && !e.closed && inBounds(ix0, iy0, cols, rows) {
			write(iy0, ix0)
		}
	}
}

// burnLineAllTouched rasterizes edges by walking every pixel the line's
// geometric path crosses, including ones an idealized Bresenham walk would
// skip at shallow angles. Grounded on the Rust original's
// rasterization/burners.rs::AllTouched::burn_line, itself adapted from
// GDAL's llrasterize.cpp.
func burnLineAllTouched(edges []lineEdge, rows, cols int, write func(row, col int)) {
	if len(edges) == 0 {
		return
	}
	rowsF, colsF := float64(rows), float64(cols)

	for _, e := range edges {
		x, y, xEnd, yEnd := e.col0, e.row0, e.col1, e.row1
		if x > xEnd {
			x, xEnd = xEnd, x
			y, yEnd = yEnd, y
		}

		if math.Abs(x-xEnd) < 0.01 {
			if yEnd < y {
				y, yEnd = yEnd, y
			}
			ix := int(math.Floor(xEnd))
			iy := int(math.Floor(y))
			iyEnd := int(math.Floor(yEnd - allTouchedEpsilon))
			if ix < 0 || ix >= cols {
				continue
			}
			iy = max(iy, 0)
			iyEnd = min(iyEnd, rows-1)
			for yy := iy; yy <= iyEnd; yy++ {
				write(yy, ix)
			}
			continue
		}

		if math.Abs(y-yEnd) < 0.01 {
			if xEnd < x {
				x, xEnd = xEnd, x
			}
			ix := int(math.Floor(x))
			iy := int(math.Floor(y))
			ixEnd := int(math.Floor(xEnd - allTouchedEpsilon))
			if iy < 0 || iy >= rows {
				continue
			}
			ix = max(ix, 0)
			ixEnd = min(ixEnd, cols-1)
			for xx := ix; xx <= ixEnd; xx++ {
				write(iy, xx)
			}
			continue
		}

		slope := (yEnd - y) / (xEnd - x)
		invSlope := 1.0 / slope

		if x < 0 {
			y += (0 - x) * slope
			x = 0
		}
		if xEnd > colsF {
			yEnd += (colsF - xEnd) * slope
			xEnd = colsF
		}
		if y < 0 {
			x += (0 - y) * invSlope
			y = 0
		} else if y > rowsF {
			x += (rowsF - y) * invSlope
			y = rowsF
		}
		if yEnd < 0 {
			xEnd += (0 - yEnd) * invSlope
		} else if yEnd > rowsF {
			xEnd += (rowsF - yEnd) * invSlope
		}

		x = clampF(x, 0, colsF)
		xEnd = clampF(xEnd, 0, colsF)

		for x >= 0 && x < xEnd {
			ix := int(math.Floor(x))
			iy := int(math.Floor(y))
			if ix >= 0 && ix < cols && iy >= 0 && iy < rows {
				write(iy, ix)
			}

			sx := math.Floor(x+1) - x
			sy := sx * slope
			if int(math.Floor(y+sy)) == iy {
				x += sx
				y += sy
			} else if slope < 0 {
				sy = float64(iy) - y
				if sy > -allTouchedTol {
					sy = -allTouchedTol
				}
				sx = sy / slope
				x += sx
				y += sy
			} else {
				sy = float64(iy+1) - y
				if sy < allTouchedTol {
					sy = allTouchedTol
				}
				sx = sy / slope
				x += sx
				y += sy
			}
		}
	}
}

func inBounds(col, row, cols, rows int) bool {
	return col >= 0 && col < cols && row >= 0 && row < rows
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
