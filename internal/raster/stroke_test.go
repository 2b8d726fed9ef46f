package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStampDotSinglePixel(t *testing.T) {
	s := NewSurface(5, 5)
	StampDot(s, 2, 2, 1, red)

	c, _ := s.ReadPixel(2, 2)
	assert.Equal(t, red, c)

	painted := 0
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if c, _ := s.ReadPixel(x, y); c == red {
				painted++
			}
		}
	}
	assert.Equal(t, 1, painted)
}

func TestStampDotWidth(t *testing.T) {
	s := NewSurface(11, 11)
	StampDot(s, 5, 5, 6, red)

	// Radius 3 disk: center and cardinal extremes painted, corners
	// beyond the radius untouched.
	for _, p := range [][2]int{{5, 5}, {2, 5}, {8, 5}, {5, 2}, {5, 8}} {
		c, _ := s.ReadPixel(p[0], p[1])
		assert.Equal(t, red, c, "(%d,%d)", p[0], p[1])
	}
	c, _ := s.ReadPixel(1, 5)
	assert.Equal(t, white, c)
	c, _ = s.ReadPixel(8, 8)
	assert.Equal(t, white, c)
}

func TestDrawSegmentConnected(t *testing.T) {
	s := NewSurface(20, 20)
	DrawSegment(s, 2, 2, 17, 13, 1, red)

	// Every column the segment crosses has at least one painted
	// pixel; a diagonal drawn by stamped dots must not leave gaps.
	for x := 2; x <= 17; x++ {
		found := false
		for y := 0; y < 20; y++ {
			if c, _ := s.ReadPixel(x, y); c == red {
				found = true
				break
			}
		}
		assert.True(t, found, "column %d has no painted pixel", x)
	}
	// Endpoints are painted.
	c, _ := s.ReadPixel(2, 2)
	assert.Equal(t, red, c)
	c, _ = s.ReadPixel(17, 13)
	assert.Equal(t, red, c)
}

func TestDrawSegmentZeroLength(t *testing.T) {
	s := NewSurface(5, 5)
	DrawSegment(s, 2, 2, 2, 2, 1, red)
	c, _ := s.ReadPixel(2, 2)
	assert.Equal(t, red, c)
}

func TestDrawSegmentOffSurfaceIsSafe(t *testing.T) {
	s := NewSurface(5, 5)
	// Strokes may run past the artwork while dragging; everything
	// off-surface is clipped.
	DrawSegment(s, -10, -10, 20, 20, 4, red)
	c, _ := s.ReadPixel(2, 2)
	assert.Equal(t, red, c)
}
