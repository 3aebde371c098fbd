// Package affine implements the pixel-grid transform shared between the
// root vecraster package (which re-exports AffineTransform) and the
// internal rasterization packages, which need it without importing the
// root package and creating an import cycle.
package affine

import (
	"fmt"
	"math"
)

// Transform maps pixel (col, row) coordinates to world (x, y) coordinates:
//
//	x = A + col*B + row*C
//	y = D + col*E + row*F
//
// The canonical axis-aligned form used throughout this package has
// B = xres > 0, F = -yres < 0, C = E = 0, A = xmin, D = ymax — the same
// (xmin, ymax, xres, -yres) convention GDAL uses. New builds exactly this
// canonical form; the general six-parameter form exists so a
// caller-supplied transform with shear can still be inverted correctly by
// WorldToPixel.
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// New builds the canonical axis-aligned transform from the extent's
// top-left corner and resolution. yres is given positive; the transform
// stores -yres internally so that row increases downward while y
// decreases, matching GDAL's convention.
func New(xmin, ymax, xres, yres float64) Transform {
	return Transform{
		A: xmin, B: xres, C: 0,
		D: ymax, E: 0, F: -yres,
	}
}

// Valid reports whether the transform has a non-degenerate pixel grid: both
// axes must have a non-zero, finite resolution.
func (t Transform) Valid() bool {
	det := t.B*t.F - t.C*t.E
	return det != 0 && !math.IsNaN(det) && !math.IsInf(det, 0)
}

// XRes returns the pixel width along the transform's column axis. For a
// sheared transform this is the column basis vector's length, not B itself.
func (t Transform) XRes() float64 {
	return math.Hypot(t.B, t.E)
}

// YRes returns the pixel height along the transform's row axis.
func (t Transform) YRes() float64 {
	return math.Hypot(t.C, t.F)
}

// WorldToPixel maps a world coordinate to floating pixel coordinates
// (rowF, colF). The inverse of the 2x2 linear part of the transform is
// solved directly; for the canonical axis-aligned form this reduces to
// colF = (x-xmin)/xres and rowF = (ymax-y)/yres.
func (t Transform) WorldToPixel(x, y float64) (rowF, colF float64) {
	det := t.B*t.F - t.C*t.E
	dx := x - t.A
	dy := y - t.D
	colF = (dx*t.F - dy*t.C) / det
	rowF = (dy*t.B - dx*t.E) / det
	return rowF, colF
}

// PixelCenter maps a pixel (row, col) to the world coordinate of its
// center. It is the inverse of WorldToPixel evaluated at the pixel's
// centroid and is used only for diagnostic buffer sizing, never inside the
// scan-conversion hot path.
func (t Transform) PixelCenter(row, col int) (x, y float64) {
	colC := float64(col) + 0.5
	rowC := float64(row) + 0.5
	x = t.A + colC*t.B + rowC*t.C
	y = t.D + colC*t.E + rowC*t.F
	return x, y
}

// BufferedExtent grows a bounding box by half a pixel on each axis. Callers
// that did not pin an explicit extent use this so that geometry sitting
// exactly on the raster border is not dropped by floating-point rounding.
func (t Transform) BufferedExtent(xmin, ymin, xmax, ymax float64) (float64, float64, float64, float64) {
	hx := t.XRes() / 2
	hy := t.YRes() / 2
	return xmin - hx, ymin - hy, xmax + hx, ymax + hy
}

func (t Transform) String() string {
	return fmt.Sprintf("AffineTransform{A:%g B:%g C:%g D:%g E:%g F:%g}", t.A, t.B, t.C, t.D, t.E, t.F)
}
