package ui

import (
	"image/color"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"PaintPot/internal/session"
)

// palette is the default set of fill/brush colors.
var palette = []color.NRGBA{
	{A: 255},                         // black
	{R: 220, G: 40, B: 40, A: 255},   // red
	{R: 240, G: 140, B: 30, A: 255},  // orange
	{R: 250, G: 220, B: 60, A: 255},  // yellow
	{R: 60, G: 170, B: 70, A: 255},   // green
	{R: 60, G: 110, B: 220, A: 255},  // blue
	{R: 140, G: 80, B: 200, A: 255},  // purple
	{R: 150, G: 100, B: 60, A: 255},  // brown
	{R: 245, G: 160, B: 200, A: 255}, // pink
	{R: 255, G: 255, B: 255, A: 255}, // white
}

// --- Custom widget for color swatches ---

type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// --- The main toolbar ---

// NewToolbar builds the tool strip: tool modes, zoom, file actions,
// the color palette and the brush width slider.
func NewToolbar(paint *PaintWidget, win fyne.Window) fyne.CanvasObject {
	tools := paint.Session().Tools

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			tools.SetMode(session.ModeBrush)
			paint.SetStatus("Brush")
		}),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			tools.SetMode(session.ModeEraser)
			paint.SetStatus("Eraser")
		}),
		widget.NewToolbarAction(theme.ColorPaletteIcon(), func() {
			tools.SetMode(session.ModeFill)
			paint.SetStatus("Fill (right-click erases a region)")
		}),
		widget.NewToolbarAction(theme.ViewFullScreenIcon(), func() {
			tools.SetMode(session.ModePan)
			paint.SetStatus("Pan (drag to move)")
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ZoomInIcon(), paint.ZoomIn),
		widget.NewToolbarAction(theme.ZoomOutIcon(), paint.ZoomOut),
		widget.NewToolbarAction(theme.ZoomFitIcon(), paint.FitToScreen),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			showSave(win, "progress.png", ".png", paint.SaveSnapshot)
		}),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
			showOpen(win, paint.LoadSnapshot)
		}),
		widget.NewToolbarAction(theme.DownloadIcon(), func() {
			showSave(win, "artwork.png", ".png", paint.ExportPNG)
		}),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() {
			showSave(win, "artwork.pdf", ".pdf", paint.ExportPDF)
		}),
	)

	colorBox := container.NewHBox()
	for _, c := range palette {
		colorBox.Add(newColorSwatch(c, tools.SetColor))
	}

	widthSlider := widget.NewSlider(1, 64)
	widthSlider.SetValue(tools.Width())
	widthSlider.OnChanged = func(val float64) {
		tools.SetWidth(val)
	}
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), widthSlider)

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderBox,
		layout.NewSpacer(),
	)
}

func showSave(win fyne.Window, name, ext string, save func(io.WriteCloser)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		save(writer)
	}, win)
	d.SetFileName(name)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}

func showOpen(win fyne.Window, load func(io.ReadCloser)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if reader == nil {
			return
		}
		load(reader)
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	d.Show()
}
