package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// WritePNG encodes the composite artwork to w.
func WritePNG(w io.Writer, composite image.Image) error {
	if err := png.Encode(w, composite); err != nil {
		return fmt.Errorf("encode artwork: %w", err)
	}
	return nil
}

// WritePNGFile encodes the composite artwork to a file.
func WritePNGFile(path string, composite image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WritePNG(f, composite)
}
