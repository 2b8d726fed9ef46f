// Package view holds the pan/zoom state mapping the fixed-resolution
// artwork (content space) onto the interaction surface (screen
// space). The model is screen = content*zoom + pan, top-left origin,
// no rotation.
package view

const (
	// MinZoom and MaxZoom clamp the interactive zoom range.
	MinZoom = 0.1
	MaxZoom = 5.0
	// ZoomStep is the increment applied per wheel notch.
	ZoomStep = 0.1
	// maxFitZoom keeps FitToScreen from blowing up small artwork.
	maxFitZoom = 0.9
)

// Transform is the viewport state for one editing session. It is
// reset on every artwork (re)load and never persisted.
type Transform struct {
	Zoom float64
	PanX float64
	PanY float64
}

// New returns an identity transform.
func New() *Transform {
	return &Transform{Zoom: 1}
}

// ScreenToContent maps an interaction-surface coordinate to artwork
// pixel coordinates.
func (t *Transform) ScreenToContent(sx, sy float64) (float64, float64) {
	return (sx - t.PanX) / t.Zoom, (sy - t.PanY) / t.Zoom
}

// ContentToScreen maps an artwork pixel coordinate to the
// interaction surface.
func (t *Transform) ContentToScreen(cx, cy float64) (float64, float64) {
	return cx*t.Zoom + t.PanX, cy*t.Zoom + t.PanY
}

// FitToScreen sizes the content to fit inside the container with the
// given padding, capped at 90% scale so small artwork is not blown
// up, and centers it on both axes.
func (t *Transform) FitToScreen(containerW, containerH, contentW, contentH, padding float64) {
	if contentW <= 0 || contentH <= 0 {
		return
	}
	zoom := (containerW - padding) / contentW
	if z := (containerH - padding) / contentH; z < zoom {
		zoom = z
	}
	if zoom > maxFitZoom {
		zoom = maxFitZoom
	}
	if zoom < MinZoom {
		zoom = MinZoom
	}
	t.Zoom = zoom
	t.PanX = (containerW - contentW*zoom) / 2
	t.PanY = (containerH - contentH*zoom) / 2
}

// ZoomAt steps the zoom by direction (+1 in, -1 out) anchored at the
// screen point (sx, sy): the content point under the cursor before
// the change maps back to the same screen point afterwards. A step
// that clamps to the current zoom is a no-op.
func (t *Transform) ZoomAt(sx, sy float64, direction int) {
	step := ZoomStep
	if direction < 0 {
		step = -ZoomStep
	}
	zoom := clampZoom(t.Zoom + step)
	if zoom == t.Zoom {
		return
	}
	cx, cy := t.ScreenToContent(sx, sy)
	t.Zoom = zoom
	t.PanX = sx - cx*zoom
	t.PanY = sy - cy*zoom
}

// Pan translates the viewport. The offset is unbounded.
func (t *Transform) Pan(dx, dy float64) {
	t.PanX += dx
	t.PanY += dy
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
