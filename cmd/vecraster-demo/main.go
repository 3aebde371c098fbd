// Command vecraster-demo rasterizes a small built-in set of overlapping
// polygons and writes a grayscale PNG preview of one band.
package main

import (
	"context"
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/vecraster/vecraster"
)

func main() {
	var (
		rows       = flag.Int("rows", 64, "raster rows")
		cols       = flag.Int("cols", 64, "raster cols")
		scale      = flag.Int("scale", 8, "preview upscale factor")
		allTouched = flag.Bool("all-touched", false, "burn every pixel touched by a geometry's boundary")
		output     = flag.String("output", "preview.png", "output PNG path")
	)
	flag.Parse()

	features := demoFeatures()
	transform := vecraster.NewAffineTransform(0, float64(*rows), 1, 1)
	shape := vecraster.RasterShape{Bands: 1, Rows: *rows, Cols: *cols}

	res, err := vecraster.Rasterize(context.Background(), features, transform, shape,
		vecraster.ReducerSum, vecraster.DTypeF64, vecraster.WithAllTouched(*allTouched))
	if err != nil {
		log.Fatalf("rasterize: %v", err)
	}
	if res.Errors.UnsupportedGeometry > 0 || res.Errors.SkippedNaN > 0 {
		log.Printf("skipped features: %+v", res.Errors)
	}

	if err := writePreview(res.Dense, *output, *scale); err != nil {
		log.Fatalf("write preview: %v", err)
	}
	log.Printf("preview saved to %s (%dx%d, scale %dx)", *output, *cols, *rows, *scale)
}

// demoFeatures builds three overlapping polygons spanning roughly the unit
// square scaled to the raster extent, so the sum reducer visibly layers
// their overlaps in the preview.
func demoFeatures() []vecraster.Feature {
	tri := vecraster.Polygon{Exterior: vecraster.Ring{
		vecraster.C(4, 4), vecraster.C(60, 4), vecraster.C(4, 60), vecraster.C(4, 4),
	}}
	box := vecraster.Polygon{Exterior: vecraster.Ring{
		vecraster.C(20, 20), vecraster.C(50, 20), vecraster.C(50, 50), vecraster.C(20, 50), vecraster.C(20, 20),
	}}
	ring := vecraster.Polygon{
		Exterior: vecraster.Ring{
			vecraster.C(10, 10), vecraster.C(55, 10), vecraster.C(55, 55), vecraster.C(10, 55), vecraster.C(10, 10),
		},
		Holes: []vecraster.Ring{{
			vecraster.C(25, 25), vecraster.C(40, 25), vecraster.C(40, 40), vecraster.C(25, 40), vecraster.C(25, 25),
		}},
	}
	return []vecraster.Feature{
		{Geometry: tri, Value: 1},
		{Geometry: box, Value: 2},
		{Geometry: ring, Value: 1},
	}
}

// writePreview normalizes band 0 to grayscale and upscales it with
// golang.org/x/image/draw for visibility, since a 64x64 raster is too small
// to inspect at native resolution.
func writePreview(buf *vecraster.DenseBuffer, path string, scale int) error {
	rows, cols := buf.Shape.Rows, buf.Shape.Cols
	maxVal := 0.0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if v := buf.At(0, r, c); v > maxVal {
				maxVal = v
			}
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	native := image.NewGray(image.Rect(0, 0, cols, rows))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := buf.At(0, r, c) / maxVal
			native.SetGray(c, r, color.Gray{Y: uint8(math.Round(v * 255))})
		}
	}

	if scale < 1 {
		scale = 1
	}
	dst := image.NewGray(image.Rect(0, 0, cols*scale, rows*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), native, native.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, dst)
}
