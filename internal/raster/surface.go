package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Surface is the mutable pixel buffer the user colors. It shares
// dimensions with the boundary mask, starts fully opaque white, and
// is never resized. The editing session is its only mutator.
type Surface struct {
	width  int
	height int
	pix    []uint8 // RGBA, 4 bytes per pixel, alpha always 255
}

// NewSurface creates an opaque white surface of the given dimensions.
func NewSurface(width, height int) *Surface {
	s := &Surface{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
	s.Clear()
	return s
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Clear resets every pixel to opaque white.
func (s *Surface) Clear() {
	for i := range s.pix {
		s.pix[i] = 255
	}
}

// ReadPixel returns the color at (x, y). The second result is false
// for out-of-bounds coordinates.
func (s *Surface) ReadPixel(x, y int) (color.NRGBA, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return color.NRGBA{}, false
	}
	i := (y*s.width + x) * 4
	return color.NRGBA{R: s.pix[i], G: s.pix[i+1], B: s.pix[i+2], A: s.pix[i+3]}, true
}

// WritePixel sets the color at (x, y), forcing full opacity.
// Out-of-bounds writes are dropped.
func (s *Surface) WritePixel(x, y int, c color.NRGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	s.pix[i] = c.R
	s.pix[i+1] = c.G
	s.pix[i+2] = c.B
	s.pix[i+3] = 255
}

// ExportBitmap returns an independent copy of the surface as an
// image, suitable for encoding or session restore.
func (s *Surface) ExportBitmap() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pix)
	return img
}

// RestoreFromBitmap replaces the surface content with a previously
// exported snapshot. Dimensions must match the surface exactly; on
// mismatch the surface is left untouched and an error is returned.
func (s *Surface) RestoreFromBitmap(img image.Image) error {
	bounds := img.Bounds()
	if bounds.Dx() != s.width || bounds.Dy() != s.height {
		return fmt.Errorf("restore bitmap is %dx%d, surface is %dx%d",
			bounds.Dx(), bounds.Dy(), s.width, s.height)
	}
	nrgba := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	copy(s.pix, nrgba.Pix)
	// Snapshots may carry transparency from foreign encoders; the
	// surface invariant is full opacity.
	for i := 3; i < len(s.pix); i += 4 {
		s.pix[i] = 255
	}
	return nil
}

// Composite merges the surface with an outline bitmap using
// per-channel multiplicative blending: boundary pixels stay black,
// open pixels show the painted color unchanged.
func (s *Surface) Composite(outline *Bitmap) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			i := (y*s.width + x) * 4
			v := int(outline.At(x, y))
			img.Pix[i] = uint8(int(s.pix[i]) * v / 255)
			img.Pix[i+1] = uint8(int(s.pix[i+1]) * v / 255)
			img.Pix[i+2] = uint8(int(s.pix[i+2]) * v / 255)
			img.Pix[i+3] = 255
		}
	}
	return img
}
