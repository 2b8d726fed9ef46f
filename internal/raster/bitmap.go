package raster

import (
	"image"
	"image/color"
)

// Two-tone pixel values used throughout the package.
const (
	Black uint8 = 0
	White uint8 = 255
)

// Bitmap is a width*height two-tone buffer with one byte per pixel.
// Every byte is either Black or White; the binarizer guarantees no
// intermediate values ever appear.
type Bitmap struct {
	width  int
	height int
	pix    []uint8
}

// NewBitmap creates a bitmap of the given dimensions, fully white.
func NewBitmap(width, height int) *Bitmap {
	pix := make([]uint8, width*height)
	for i := range pix {
		pix[i] = White
	}
	return &Bitmap{width: width, height: height, pix: pix}
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// At returns the value at (x, y). Coordinates outside the bitmap
// read as Black, matching the fill engine's "everything beyond the
// edge is a wall" convention.
func (b *Bitmap) At(x, y int) uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Black
	}
	return b.pix[y*b.width+x]
}

// Set writes a value at (x, y). Out-of-bounds writes are dropped.
func (b *Bitmap) Set(x, y int, v uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = v
}

// Clone returns an independent copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return &Bitmap{width: b.width, height: b.height, pix: pix}
}

// Image renders the bitmap as an opaque black-on-white NRGBA image.
func (b *Bitmap) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			v := b.pix[y*b.width+x]
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}
