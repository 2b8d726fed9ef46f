package raster

import (
	"image/color"
	"math"
)

// Strokes are destructive: each segment is rasterized straight onto
// the surface and no vector representation is retained.

// StampDot paints a filled disk of the given width centered at the
// content coordinate (cx, cy). A width of one or less paints a
// single pixel.
func StampDot(s *Surface, cx, cy float64, width float64, c color.NRGBA) {
	r := width / 2
	if r < 0.5 {
		s.WritePixel(int(math.Round(cx)), int(math.Round(cy)), c)
		return
	}
	ir := int(math.Ceil(r))
	x0, y0 := int(math.Round(cx)), int(math.Round(cy))
	for dy := -ir; dy <= ir; dy++ {
		for dx := -ir; dx <= ir; dx++ {
			if float64(dx*dx+dy*dy) <= r*r {
				s.WritePixel(x0+dx, y0+dy, c)
			}
		}
	}
}

// DrawSegment rasterizes a connected line from (x0, y0) to (x1, y1)
// by stamping the brush disk at sub-pixel intervals along it.
func DrawSegment(s *Surface, x0, y0, x1, y1 float64, width float64, c color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		StampDot(s, x0, y0, width, c)
		return
	}
	// Half-pixel steps keep the stamped disks connected at any angle.
	steps := int(math.Ceil(dist * 2))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		StampDot(s, x0+dx*t, y0+dy*t, width, c)
	}
}
