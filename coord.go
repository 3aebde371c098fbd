package vecraster

import "github.com/vecraster/vecraster/internal/geom"

// Coord is a 2D world-space coordinate. It is a re-export of
// internal/geom.Coord so the root package's Geometry types and
// internal/geomwalk can share one definition without an import cycle.
type Coord = geom.Coord

// C is a convenience constructor for Coord.
func C(x, y float64) Coord {
	return geom.C(x, y)
}
