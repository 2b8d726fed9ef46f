package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskIsBoundary(t *testing.T) {
	bm := NewBitmap(3, 3)
	bm.Set(1, 1, Black)
	m := NewMask(bm)

	assert.True(t, m.IsBoundary(1, 1))
	assert.False(t, m.IsBoundary(0, 0))

	// Everything outside the buffer counts as boundary.
	assert.True(t, m.IsBoundary(-1, 0))
	assert.True(t, m.IsBoundary(0, -1))
	assert.True(t, m.IsBoundary(3, 0))
	assert.True(t, m.IsBoundary(0, 3))
}

func TestMaskOutlineMatchesBitmap(t *testing.T) {
	bm := NewBitmap(4, 4)
	bm.Set(2, 1, Black)
	bm.Set(0, 3, Black)
	m := NewMask(bm)

	img := m.Outline()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := img.NRGBAAt(x, y)
			if m.IsBoundary(x, y) {
				assert.Equal(t, uint8(0), c.R, "(%d,%d)", x, y)
			} else {
				assert.Equal(t, uint8(255), c.R, "(%d,%d)", x, y)
			}
			assert.Equal(t, uint8(255), c.A)
		}
	}
}
