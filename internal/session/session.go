package session

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"

	"github.com/google/uuid"

	"PaintPot/internal/raster"
	"PaintPot/internal/view"
)

// Session is one editing session over a loaded artwork. It
// exclusively owns its boundary mask, paint surface, fill engine,
// viewport transform and tool state; nothing here is shared between
// sessions and there are no package-level singletons.
type Session struct {
	ID string

	Mask    *raster.Mask
	Surface *raster.Surface
	Fill    *raster.FillEngine
	View    *view.Transform
	Tools   *Controller

	outline *raster.Bitmap

	// OnChanged receives the encoded surface snapshot after every
	// completed stroke or fill that mutated pixels. Persistence and
	// live-share collaborators hang off this.
	OnChanged func(snapshot []byte)
	// OnFill fires after a fill that colored at least one pixel,
	// e.g. to play an acknowledgment sound.
	OnFill func(filled int)
}

// New builds a session from a decoded artwork image. The image is
// binarized once; mask and surface share its dimensions for the
// session's whole lifetime.
func New(img image.Image, opts raster.Options) *Session {
	outline := raster.Binarize(img, opts)
	mask := raster.NewMask(outline)
	surface := raster.NewSurface(outline.Width(), outline.Height())

	s := &Session{
		ID:      uuid.NewString(),
		Mask:    mask,
		Surface: surface,
		Fill:    raster.NewFillEngine(surface, mask),
		View:    view.New(),
		outline: outline,
	}
	s.Tools = NewController(s)
	log.Printf("[SESSION] %s: artwork %dx%d", s.ID, mask.Width(), mask.Height())
	return s
}

// Snapshot encodes the bare paint surface (without the outline) as
// PNG. This is the persistence payload; it round-trips through
// Restore.
func (s *Session) Snapshot() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, s.Surface.ExportBitmap()); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Restore replaces the paint surface with a previously saved
// snapshot. A snapshot whose dimensions do not match the current
// artwork is rejected and the surface is left untouched; the caller
// should keep the blank surface rather than corrupt state.
func (s *Session) Restore(r io.Reader) error {
	img, _, err := image.Decode(r)
	if err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	if err := s.Surface.RestoreFromBitmap(img); err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}
	return nil
}

// CompositeImage merges the paint surface with the outline by
// multiplicative blending. This is what the user sees and exports.
func (s *Session) CompositeImage() *image.NRGBA {
	return s.Surface.Composite(s.outline)
}

// notifyChanged pushes a fresh snapshot to the OnChanged collaborator.
func (s *Session) notifyChanged() {
	if s.OnChanged == nil {
		return
	}
	snap, err := s.Snapshot()
	if err != nil {
		log.Printf("[SESSION] snapshot failed: %v", err)
		return
	}
	s.OnChanged(snap)
}
