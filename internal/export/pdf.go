// Package export writes the finished artwork to shareable formats.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF places the composite artwork centered on an A4 page,
// scaled to fit inside the margins while keeping its aspect ratio,
// and writes the document to w.
func WritePDF(w io.Writer, composite image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, composite); err != nil {
		return fmt.Errorf("encode artwork for pdf: %w", err)
	}

	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("artwork", opts, &buf)

	pageW, pageH := p.GetPageSize()
	const margin = 15.0
	maxW := pageW - 2*margin
	maxH := pageH - 2*margin

	bounds := composite.Bounds()
	aspect := float64(bounds.Dy()) / float64(bounds.Dx())
	imgW := maxW
	imgH := imgW * aspect
	if imgH > maxH {
		imgH = maxH
		imgW = imgH / aspect
	}
	x := (pageW - imgW) / 2
	y := (pageH - imgH) / 2
	p.ImageOptions("artwork", x, y, imgW, imgH, false, opts, 0, "")

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WritePDFFile writes the composite artwork as a PDF to a file.
func WritePDFFile(path string, composite image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WritePDF(f, composite)
}
