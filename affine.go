package vecraster

import "github.com/vecraster/vecraster/internal/affine"

// AffineTransform maps pixel (col, row) coordinates to world (x, y)
// coordinates. It is a re-export of internal/affine.Transform so the
// scan-conversion packages can share one definition with the public API
// without importing this package.
type AffineTransform = affine.Transform

// NewAffineTransform builds the canonical axis-aligned transform from the
// extent's top-left corner and resolution. yres is given positive; the
// transform stores -yres internally so that row increases downward while y
// decreases, matching GDAL's convention.
func NewAffineTransform(xmin, ymax, xres, yres float64) AffineTransform {
	return affine.New(xmin, ymax, xres, yres)
}
