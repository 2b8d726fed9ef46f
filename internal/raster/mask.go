package raster

import "image"

// Mask is an immutable boundary view over a binarized bitmap. The
// fill engine consults it to decide which pixels are impassable.
// A new artwork load produces a new mask; nothing mutates one.
type Mask struct {
	bitmap *Bitmap
}

// NewMask wraps a binarized bitmap. The caller must not modify the
// bitmap afterwards; Binarize output is handed straight in here.
func NewMask(bm *Bitmap) *Mask {
	return &Mask{bitmap: bm}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.bitmap.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.bitmap.height }

// IsBoundary reports whether (x, y) blocks fill: true outside the
// mask bounds or where the bitmap pixel is black.
func (m *Mask) IsBoundary(x, y int) bool {
	return m.bitmap.At(x, y) == Black
}

// Outline renders the boundary as an opaque black-on-white image,
// bit-exact with the bitmap the fill engine sees.
func (m *Mask) Outline() *image.NRGBA {
	return m.bitmap.Image()
}
