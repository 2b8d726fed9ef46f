package ui

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"PaintPot/internal/export"
	"PaintPot/internal/session"
)

const fitPadding = 40

// PaintWidget is the interactive coloring canvas. It renders the
// session's composite (paint surface under the outline) through a
// single canvas.Image positioned and sized by the session's viewport
// transform, and forwards pointer and wheel events to the tool
// controller.
type PaintWidget struct {
	widget.BaseWidget
	session *session.Session

	art *canvas.Image

	fitted      bool
	viewSize    fyne.Size
	lastPointer fyne.Position

	statusBar *widget.Label
}

var _ fyne.Widget = (*PaintWidget)(nil)
var _ fyne.Draggable = (*PaintWidget)(nil)
var _ fyne.Scrollable = (*PaintWidget)(nil)
var _ desktop.Mouseable = (*PaintWidget)(nil)

// NewPaintWidget creates the canvas for an editing session.
func NewPaintWidget(s *session.Session) *PaintWidget {
	w := &PaintWidget{
		session:   s,
		statusBar: widget.NewLabel("Ready"),
	}
	w.art = canvas.NewImageFromImage(s.CompositeImage())
	// Nearest-neighbor keeps boundary pixels crisp when zoomed in.
	w.art.ScaleMode = canvas.ImageScalePixels
	w.ExtendBaseWidget(w)
	return w
}

// Session returns the editing session behind the widget.
func (w *PaintWidget) Session() *session.Session { return w.session }

// StatusBar returns the label the widget reports into.
func (w *PaintWidget) StatusBar() *widget.Label { return w.statusBar }

// SetStatus updates the status bar from any goroutine.
func (w *PaintWidget) SetStatus(text string) {
	fyne.Do(func() {
		w.statusBar.SetText(text)
	})
}

// MouseDown begins an interaction; the secondary button selects the
// alternate action (erase fill).
func (w *PaintWidget) MouseDown(e *desktop.MouseEvent) {
	secondary := e.Button == desktop.MouseButtonSecondary
	w.lastPointer = e.Position
	w.session.Tools.PointerDown(float64(e.Position.X), float64(e.Position.Y), secondary)
	w.redraw()
}

// MouseUp ends an interaction.
func (w *PaintWidget) MouseUp(e *desktop.MouseEvent) {
	w.session.Tools.PointerUp(float64(e.Position.X), float64(e.Position.Y))
	w.redraw()
}

// Dragged continues a stroke or pan.
func (w *PaintWidget) Dragged(e *fyne.DragEvent) {
	w.lastPointer = e.Position
	w.session.Tools.PointerMove(float64(e.Position.X), float64(e.Position.Y))
	w.redraw()
}

// DragEnd finalizes a drag at the last observed pointer position.
func (w *PaintWidget) DragEnd() {
	w.session.Tools.PointerUp(float64(w.lastPointer.X), float64(w.lastPointer.Y))
	w.redraw()
}

// Scrolled zooms around the pointer, one step per wheel notch.
func (w *PaintWidget) Scrolled(e *fyne.ScrollEvent) {
	if e.Scrolled.DY == 0 {
		return
	}
	dir := 1
	if e.Scrolled.DY < 0 {
		dir = -1
	}
	w.session.Tools.Scroll(float64(e.Position.X), float64(e.Position.Y), dir)
	w.applyTransform()
}

// ZoomIn steps the zoom in around the view center.
func (w *PaintWidget) ZoomIn() { w.zoomCenter(1) }

// ZoomOut steps the zoom out around the view center.
func (w *PaintWidget) ZoomOut() { w.zoomCenter(-1) }

func (w *PaintWidget) zoomCenter(dir int) {
	w.session.View.ZoomAt(float64(w.viewSize.Width)/2, float64(w.viewSize.Height)/2, dir)
	w.applyTransform()
}

// FitToScreen recenters and rescales the artwork to the current view.
func (w *PaintWidget) FitToScreen() {
	w.session.View.FitToScreen(
		float64(w.viewSize.Width), float64(w.viewSize.Height),
		float64(w.session.Mask.Width()), float64(w.session.Mask.Height()),
		fitPadding)
	w.applyTransform()
}

// redraw refreshes the composite after a possible surface mutation
// and repositions it. Pan mode never mutates pixels, so it skips the
// recomposite.
func (w *PaintWidget) redraw() {
	if w.session.Tools.Mode() != session.ModePan {
		w.art.Image = w.session.CompositeImage()
	}
	w.applyTransform()
}

// applyTransform positions and sizes the artwork image according to
// the viewport transform.
func (w *PaintWidget) applyTransform() {
	t := w.session.View
	cw := float64(w.session.Mask.Width())
	ch := float64(w.session.Mask.Height())
	w.art.Move(fyne.NewPos(float32(t.PanX), float32(t.PanY)))
	w.art.Resize(fyne.NewSize(float32(cw*t.Zoom), float32(ch*t.Zoom)))
	w.art.Refresh()
}

// SaveSnapshot writes the bare paint surface (restorable) to writer.
func (w *PaintWidget) SaveSnapshot(writer io.WriteCloser) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("Error closing writer: %v", err)
		}
	}()
	snap, err := w.session.Snapshot()
	if err != nil {
		log.Printf("SaveSnapshot: %v", err)
		w.SetStatus("Error saving progress")
		return
	}
	if _, err := writer.Write(snap); err != nil {
		log.Printf("SaveSnapshot: write: %v", err)
		w.SetStatus("Error writing file")
		return
	}
	w.SetStatus("Progress saved")
}

// LoadSnapshot restores the paint surface from a previously saved
// snapshot. A snapshot for a different artwork size is rejected and
// the current surface is kept.
func (w *PaintWidget) LoadSnapshot(reader io.ReadCloser) {
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("Error closing reader: %v", err)
		}
	}()
	if err := w.session.Restore(reader); err != nil {
		log.Printf("LoadSnapshot: %v", err)
		w.SetStatus(fmt.Sprintf("Cannot restore: %v", err))
		return
	}
	w.redraw()
	w.SetStatus("Progress restored")
}

// ExportPNG writes the composite artwork to writer.
func (w *PaintWidget) ExportPNG(writer io.WriteCloser) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("Error closing writer: %v", err)
		}
	}()
	if err := png.Encode(writer, w.session.CompositeImage()); err != nil {
		log.Printf("ExportPNG: %v", err)
		w.SetStatus("Error exporting PNG")
		return
	}
	w.SetStatus("Artwork exported")
}

// ExportPDF writes the composite artwork as an A4 PDF to writer.
func (w *PaintWidget) ExportPDF(writer io.WriteCloser) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("Error closing writer: %v", err)
		}
	}()
	if err := export.WritePDF(writer, w.session.CompositeImage()); err != nil {
		log.Printf("ExportPDF: %v", err)
		w.SetStatus("Error exporting PDF")
		return
	}
	w.SetStatus("PDF exported")
}

// CreateRenderer implements fyne.Widget.
func (w *PaintWidget) CreateRenderer() fyne.WidgetRenderer {
	// Dark neutral backdrop so the white artwork edge reads clearly.
	bg := canvas.NewRasterWithPixels(func(x, y, _, _ int) color.Color {
		return color.NRGBA{R: 52, G: 54, B: 58, A: 255}
	})
	return &paintWidgetRenderer{widget: w, background: bg}
}

type paintWidgetRenderer struct {
	widget     *PaintWidget
	background *canvas.Raster
}

func (r *paintWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.widget.art}
}

func (r *paintWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.widget.viewSize = size
	// First layout with a real size: fit the artwork to the window.
	if !r.widget.fitted && size.Width > 0 && size.Height > 0 {
		r.widget.fitted = true
		r.widget.FitToScreen()
	}
	r.widget.applyTransform()
}

func (r *paintWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *paintWidgetRenderer) Refresh() {
	canvas.Refresh(r.widget)
}

func (r *paintWidgetRenderer) Destroy() {}

func (w *PaintWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *PaintWidget) MouseOut()                      {}
func (w *PaintWidget) MouseMoved(*desktop.MouseEvent) {}
