package session

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PaintPot/internal/raster"
)

var testRed = color.NRGBA{R: 255, A: 255}

func TestPanDrag(t *testing.T) {
	s := newTestSession(t, blankArt(50, 50))
	s.Tools.SetMode(ModePan)

	s.Tools.PointerDown(100, 100, false)
	s.Tools.PointerMove(130, 90)
	assert.Equal(t, 30.0, s.View.PanX)
	assert.Equal(t, -10.0, s.View.PanY)

	s.Tools.PointerMove(150, 150)
	assert.Equal(t, 50.0, s.View.PanX)
	assert.Equal(t, 50.0, s.View.PanY)

	s.Tools.PointerUp(150, 150)
	// Moves after the drag ended change nothing.
	s.Tools.PointerMove(500, 500)
	assert.Equal(t, 50.0, s.View.PanX)
}

func TestPanDoesNotMutateSurface(t *testing.T) {
	s := newTestSession(t, blankArt(20, 20))
	s.Tools.SetMode(ModePan)

	notified := 0
	s.OnChanged = func([]byte) { notified++ }

	s.Tools.PointerDown(5, 5, false)
	s.Tools.PointerMove(15, 15)
	s.Tools.PointerUp(15, 15)

	assert.Zero(t, notified)
	c, _ := s.Surface.ReadPixel(10, 10)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, c)
}

func TestBrushStroke(t *testing.T) {
	s := newTestSession(t, blankArt(40, 40))
	s.Tools.SetColor(testRed)
	s.Tools.SetWidth(1)

	notified := 0
	s.OnChanged = func(snap []byte) {
		notified++
		assert.NotEmpty(t, snap)
	}

	s.Tools.PointerDown(5, 5, false)
	s.Tools.PointerMove(20, 5)
	s.Tools.PointerUp(20, 5)

	// The stroke is on the surface and the collaborator was told
	// exactly once, at stroke end.
	for x := 5; x <= 20; x++ {
		c, _ := s.Surface.ReadPixel(x, 5)
		assert.Equal(t, testRed, c, "x=%d", x)
	}
	assert.Equal(t, 1, notified)
}

func TestBrushMapsThroughViewport(t *testing.T) {
	s := newTestSession(t, blankArt(40, 40))
	s.Tools.SetColor(testRed)
	s.Tools.SetWidth(1)
	s.View.Zoom = 2
	s.View.PanX = 10
	s.View.PanY = 10

	// Screen (30, 30) is content (10, 10) under this transform.
	s.Tools.PointerDown(30, 30, false)
	s.Tools.PointerUp(30, 30)

	c, _ := s.Surface.ReadPixel(10, 10)
	assert.Equal(t, testRed, c)
}

func TestEraserPaintsWhite(t *testing.T) {
	s := newTestSession(t, blankArt(20, 20))
	s.Fill.Fill(10, 10, testRed, raster.DefaultTolerance, false)

	s.Tools.SetMode(ModeEraser)
	s.Tools.SetColor(testRed) // ignored by the eraser
	s.Tools.SetWidth(3)
	s.Tools.PointerDown(10, 10, false)
	s.Tools.PointerUp(10, 10)

	c, _ := s.Surface.ReadPixel(10, 10)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, c)
}

func TestFillTool(t *testing.T) {
	s := newTestSession(t, ringArt(20, 20))
	s.Tools.SetMode(ModeFill)
	s.Tools.SetColor(testRed)

	var filled int
	notified := 0
	s.OnFill = func(n int) { filled = n }
	s.OnChanged = func([]byte) { notified++ }

	s.Tools.PointerDown(10, 10, false)
	s.Tools.PointerUp(10, 10)

	assert.Equal(t, 18*18, filled)
	assert.Equal(t, 1, notified)
	c, _ := s.Surface.ReadPixel(10, 10)
	assert.Equal(t, testRed, c)
}

func TestFillToolSecondaryErases(t *testing.T) {
	s := newTestSession(t, ringArt(20, 20))
	s.Tools.SetMode(ModeFill)
	s.Tools.SetColor(testRed)
	s.Tools.PointerDown(10, 10, false)
	s.Tools.PointerUp(10, 10)

	s.Tools.PointerDown(10, 10, true)
	s.Tools.PointerUp(10, 10)

	c, _ := s.Surface.ReadPixel(10, 10)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, c)
}

func TestFillWithoutMutationStaysSilent(t *testing.T) {
	// Filling a boundary pixel, or refilling an identical region,
	// changes nothing and must not ping the collaborators.
	s := newTestSession(t, ringArt(20, 20))
	s.Tools.SetMode(ModeFill)
	s.Tools.SetColor(testRed)

	notified, fills := 0, 0
	s.OnChanged = func([]byte) { notified++ }
	s.OnFill = func(int) { fills++ }

	// Seed on the boundary ring.
	s.Tools.PointerDown(0, 0, false)
	s.Tools.PointerUp(0, 0)
	assert.Zero(t, notified)
	assert.Zero(t, fills)

	// Fill once, then fill again with the same color.
	s.Tools.PointerDown(10, 10, false)
	s.Tools.PointerUp(10, 10)
	require.Equal(t, 1, notified)
	require.Equal(t, 1, fills)

	s.Tools.PointerDown(10, 10, false)
	s.Tools.PointerUp(10, 10)
	assert.Equal(t, 1, notified, "idempotent refill must not notify")
	assert.Equal(t, 1, fills)
}

func TestModeSwitchAbandonsDrag(t *testing.T) {
	s := newTestSession(t, blankArt(30, 30))
	s.Tools.SetColor(testRed)

	notified := 0
	s.OnChanged = func([]byte) { notified++ }

	s.Tools.PointerDown(5, 5, false)
	s.Tools.SetMode(ModePan)
	s.Tools.PointerMove(20, 20)
	s.Tools.PointerUp(20, 20)

	// The abandoned stroke never completed, so no notification; and
	// the pan-mode moves after the switch drew nothing.
	assert.Zero(t, notified)
	c, _ := s.Surface.ReadPixel(20, 20)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, c)
}

func TestScrollZooms(t *testing.T) {
	s := newTestSession(t, blankArt(30, 30))

	s.Tools.Scroll(15, 15, 1)
	assert.InDelta(t, 1.1, s.View.Zoom, 1e-9)
	s.Tools.Scroll(15, 15, -1)
	s.Tools.Scroll(15, 15, -1)
	assert.InDelta(t, 0.9, s.View.Zoom, 1e-9)
}

func TestControllerDefaults(t *testing.T) {
	s := newTestSession(t, blankArt(10, 10))
	assert.Equal(t, ModeBrush, s.Tools.Mode())
	assert.Equal(t, color.NRGBA{A: 255}, s.Tools.Color())
	assert.Equal(t, 4.0, s.Tools.Width())
}

func TestSetWidthFloor(t *testing.T) {
	s := newTestSession(t, blankArt(10, 10))
	s.Tools.SetWidth(0)
	assert.Equal(t, 1.0, s.Tools.Width())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "brush", ModeBrush.String())
	assert.Equal(t, "eraser", ModeEraser.String())
	assert.Equal(t, "fill", ModeFill.String())
	assert.Equal(t, "pan", ModePan.String())
}
