package session

import (
	"image/color"
	"math"

	"PaintPot/internal/raster"
)

// Mode identifies the active tool. Exactly one mode is active at a
// time and transitions happen only on explicit selection.
type Mode int

const (
	ModeBrush Mode = iota
	ModeEraser
	ModeFill
	ModePan
)

func (m Mode) String() string {
	switch m {
	case ModeBrush:
		return "brush"
	case ModeEraser:
		return "eraser"
	case ModeFill:
		return "fill"
	case ModePan:
		return "pan"
	}
	return "unknown"
}

var opaqueWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Controller is the tool-mode state machine. It receives
// device-agnostic pointer events in screen coordinates, maps them
// through the session's viewport transform, and dispatches to stroke
// drawing, the fill engine, or panning. All mutation happens
// synchronously on the interaction event stream, so the controller
// needs no locking.
type Controller struct {
	session *Session

	mode      Mode
	color     color.NRGBA
	width     float64
	tolerance uint8

	// Drag state, cleared on pointer-up and on mode switches.
	dragging    bool
	anchorX     float64 // pan: pointer - pan at drag start
	anchorY     float64
	lastX       float64 // brush/eraser: previous content point
	lastY       float64
	strokeDirty bool // pixels touched during the current stroke
	fillMutated bool // last fill changed pixels; drives pointer-up notify
}

// NewController returns a controller in brush mode with black paint.
func NewController(s *Session) *Controller {
	return &Controller{
		session:   s,
		mode:      ModeBrush,
		color:     color.NRGBA{A: 255},
		width:     4,
		tolerance: raster.DefaultTolerance,
	}
}

// Mode returns the active tool mode.
func (c *Controller) Mode() Mode { return c.mode }

// SetMode switches tools. Switching never mutates surface content;
// any in-flight drag is abandoned.
func (c *Controller) SetMode(m Mode) {
	c.mode = m
	c.dragging = false
	c.strokeDirty = false
	c.fillMutated = false
}

// Color returns the active paint color.
func (c *Controller) Color() color.NRGBA { return c.color }

// SetColor selects the active paint color.
func (c *Controller) SetColor(col color.NRGBA) {
	col.A = 255
	c.color = col
}

// Width returns the active brush width in content pixels.
func (c *Controller) Width() float64 { return c.width }

// SetWidth selects the brush width.
func (c *Controller) SetWidth(w float64) {
	if w < 1 {
		w = 1
	}
	c.width = w
}

// SetTolerance selects the fill tolerance.
func (c *Controller) SetTolerance(t uint8) { c.tolerance = t }

// PointerDown starts an interaction at screen point (sx, sy).
// secondary selects the alternate action (erase fill in fill mode).
func (c *Controller) PointerDown(sx, sy float64, secondary bool) {
	switch c.mode {
	case ModePan:
		c.dragging = true
		c.anchorX = sx - c.session.View.PanX
		c.anchorY = sy - c.session.View.PanY

	case ModeBrush, ModeEraser:
		cx, cy := c.session.View.ScreenToContent(sx, sy)
		raster.StampDot(c.session.Surface, cx, cy, c.width, c.paint())
		c.dragging = true
		c.strokeDirty = true
		c.lastX, c.lastY = cx, cy

	case ModeFill:
		cx, cy := c.session.View.ScreenToContent(sx, sy)
		x := int(math.Floor(cx))
		y := int(math.Floor(cy))
		filled := c.session.Fill.Fill(x, y, c.color, c.tolerance, secondary)
		c.fillMutated = filled > 0
		if filled > 0 && c.session.OnFill != nil {
			c.session.OnFill(filled)
		}
	}
}

// PointerMove continues an interaction.
func (c *Controller) PointerMove(sx, sy float64) {
	if !c.dragging {
		return
	}
	switch c.mode {
	case ModePan:
		c.session.View.PanX = sx - c.anchorX
		c.session.View.PanY = sy - c.anchorY

	case ModeBrush, ModeEraser:
		cx, cy := c.session.View.ScreenToContent(sx, sy)
		raster.DrawSegment(c.session.Surface, c.lastX, c.lastY, cx, cy, c.width, c.paint())
		c.lastX, c.lastY = cx, cy
		c.strokeDirty = true
	}
}

// PointerUp ends an interaction. Completed strokes and fills that
// actually changed pixels notify the persistence collaborator; a
// fill that hit a boundary or an already-matching region stays
// silent.
func (c *Controller) PointerUp(sx, sy float64) {
	switch c.mode {
	case ModePan:
		c.dragging = false

	case ModeBrush, ModeEraser:
		if c.dragging && c.strokeDirty {
			c.session.notifyChanged()
		}
		c.dragging = false
		c.strokeDirty = false

	case ModeFill:
		if c.fillMutated {
			c.session.notifyChanged()
		}
		c.fillMutated = false
	}
}

// Scroll applies one wheel notch of anchor-preserving zoom at the
// pointer position.
func (c *Controller) Scroll(sx, sy float64, direction int) {
	c.session.View.ZoomAt(sx, sy, direction)
}

// paint is the effective stroke color: the eraser always paints
// opaque white.
func (c *Controller) paint() color.NRGBA {
	if c.mode == ModeEraser {
		return opaqueWhite
	}
	return c.color
}
