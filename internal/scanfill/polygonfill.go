package scanfill

import "sort"

// fillPolygon scan-converts edges (already sorted top-to-bottom is not
// assumed; this function sorts) using a half-open, even-odd active-edge
// table, calling write once per covered pixel. Grounded on the Rust
// original's rasterization/burners.rs::burn_polygon: edges are bucketed
// into the active set as the scanline reaches their yStart, retired once
// the scanline passes yEnd, and paired left-to-right by their x
// intersection with the scanline's vertical center.
func fillPolygon(edges []polyEdge, rows, cols int, write func(row, col int)) {
	if len(edges) == 0 {
		return
	}

	sort.Slice(edges, func(i, j int) bool { return edges[i].yStart < edges[j].yStart })

	yline := edges[0].yStart
	if yline < 0 {
		yline = 0
	}
	pending := edges
	var active []polyEdge

	for yline < rows && (len(active) > 0 || len(pending) > 0) {
		split := 0
		for split < len(pending) && pending[split].yStart <= yline {
			split++
		}
		active = append(active, pending[:split]...)
		pending = pending[split:]

		kept := active[:0]
		for _, e := range active {
			if e.yEnd > yline {
				kept = append(kept, e)
			}
		}
		active = kept

		if len(active) == 0 {
			yline++
			continue
		}

		for i := range active {
			active[i].colAtRow = active[i].intersectAt(yline)
		}
		sort.Slice(active, func(i, j int) bool { return active[i].colAtRow < active[j].colAtRow })

		for i := 0; i+1 < len(active); i += 2 {
			colStart := clampCol(active[i].colAtRow+0.5, cols)
			colEnd := clampCol(active[i+1].colAtRow+0.5, cols)
			for c := colStart; c < colEnd; c++ {
				write(yline, c)
			}
		}

		yline++
	}
}

// clampCol floors v (the GDAL "round down" rule for scanline span
// endpoints) and clamps the result to [0, cols].
func clampCol(v float64, cols int) int {
	if v < 0 {
		return 0
	}
	c := int(v)
	if c > cols {
		return cols
	}
	return c
}
