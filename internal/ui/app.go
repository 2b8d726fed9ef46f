package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"PaintPot/internal/session"
)

// RunApp opens the main window for an editing session and blocks
// until the window closes. shareLink, when non-empty, is shown in
// the status strip so viewers know where to point a browser.
func RunApp(s *session.Session, shareLink string) {
	myApp := app.New()
	myWindow := myApp.NewWindow("PaintPot")
	myWindow.Resize(fyne.NewSize(1024, 768))

	paint := NewPaintWidget(s)
	toolbar := NewToolbar(paint, myWindow)

	status := container.NewHBox(paint.StatusBar())
	if shareLink != "" {
		status.Add(widget.NewSeparator())
		status.Add(widget.NewLabel("Live view: " + shareLink))
	}

	content := container.NewBorder(toolbar, status, nil, nil, paint)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
