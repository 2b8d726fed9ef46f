package raster

import "image/color"

// DefaultTolerance is the per-channel color tolerance used when the
// caller has no opinion.
const DefaultTolerance uint8 = 32

// FillEngine performs boundary-respecting, tolerance-matched region
// fills over a surface. The mask and surface must share dimensions.
type FillEngine struct {
	surface *Surface
	mask    *Mask
}

// NewFillEngine binds a fill engine to its surface and boundary mask.
func NewFillEngine(surface *Surface, mask *Mask) *FillEngine {
	return &FillEngine{surface: surface, mask: mask}
}

// Fill flood-fills from (x, y) with the given color and returns the
// number of pixels changed. Traversal is breadth-first and
// 4-connected; a neighbor joins the region iff it is not a boundary
// pixel and every RGB channel is within tolerance of the seed color
// (alpha is ignored for matching). The new color is committed in one
// pass after traversal completes, so no partially filled region is
// ever observable. erase forces the target color to opaque white.
func (e *FillEngine) Fill(x, y int, c color.NRGBA, tolerance uint8, erase bool) int {
	if erase {
		c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	c.A = 255

	w, h := e.surface.width, e.surface.height
	if x < 0 || x >= w || y < 0 || y >= h || e.mask.IsBoundary(x, y) {
		return 0
	}

	seed, _ := e.surface.ReadPixel(x, y)
	if seed == c {
		// Already the target color; filling again would visit the
		// whole region for nothing.
		return 0
	}

	visited := make([]bool, w*h)
	start := y*w + x
	visited[start] = true
	queue := []int{start}

	// Neighbor offsets for 4-connectivity.
	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		px, py := idx%w, idx/w
		for _, n := range [4][2]int{{px - 1, py}, {px + 1, py}, {px, py - 1}, {px, py + 1}} {
			nx, ny := n[0], n[1]
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			nidx := ny*w + nx
			if visited[nidx] || e.mask.IsBoundary(nx, ny) {
				continue
			}
			if !withinTolerance(e.surface, nidx, seed, tolerance) {
				continue
			}
			visited[nidx] = true
			queue = append(queue, nidx)
		}
	}

	// Commit the whole region at once.
	for _, idx := range queue {
		i := idx * 4
		e.surface.pix[i] = c.R
		e.surface.pix[i+1] = c.G
		e.surface.pix[i+2] = c.B
		e.surface.pix[i+3] = 255
	}
	return len(queue)
}

// withinTolerance reports whether the pixel at idx matches the seed
// color within the per-channel absolute tolerance. Alpha is excluded.
func withinTolerance(s *Surface, idx int, seed color.NRGBA, tolerance uint8) bool {
	i := idx * 4
	return absDiff(s.pix[i], seed.R) <= tolerance &&
		absDiff(s.pix[i+1], seed.G) <= tolerance &&
		absDiff(s.pix[i+2], seed.B) <= tolerance
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
