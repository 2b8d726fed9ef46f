package raster

import (
	"image"
	"math"
)

// Options control how a source image is reduced to a two-tone
// boundary bitmap.
type Options struct {
	// Threshold is the luminance cutoff: values below it become
	// black (boundary), everything else white.
	Threshold uint8
	// DilationRadius thickens boundary pixels by a disk of this
	// radius after thresholding. Zero disables dilation.
	DilationRadius int
	// GaussianBlur smooths the grayscale image with a 3x3 kernel
	// before thresholding, reducing speckle in photographed art.
	GaussianBlur bool
	// EdgeDetection runs a Sobel pass and thresholds the gradient
	// magnitude instead of the raw luminance. Useful for sources
	// that are not already clean line art.
	EdgeDetection bool
}

// DefaultOptions are tuned for typical scanned or exported line art.
func DefaultOptions() Options {
	return Options{Threshold: 200, DilationRadius: 1}
}

// sobelCutoff is the gradient magnitude above which a pixel counts
// as an edge.
const sobelCutoff = 50

// Binarize reduces an image to a two-tone boundary bitmap:
// grayscale, optional blur, optional edge detection, threshold,
// then dilation. The result doubles as the displayed outline and
// the fill engine's boundary mask, so the two can never disagree.
func Binarize(img image.Image, opts Options) *Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	gray := grayscale(img)
	if opts.GaussianBlur {
		gray = blur3x3(gray, w, h)
	}
	if opts.EdgeDetection {
		gray = sobel(gray, w, h)
	}

	bm := &Bitmap{width: w, height: h, pix: make([]uint8, w*h)}
	for i, v := range gray {
		if v < opts.Threshold {
			bm.pix[i] = Black
		} else {
			bm.pix[i] = White
		}
	}

	if opts.DilationRadius > 0 {
		bm = dilate(bm, opts.DilationRadius)
	}
	return bm
}

// grayscale converts to 8-bit luminance using the Rec. 601 weights.
func grayscale(img image.Image) []uint8 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			gray[y*w+x] = uint8(lum)
		}
	}
	return gray
}

// blur3x3 applies a normalized 3x3 Gaussian kernel (1-2-1, sum 16).
// Border pixels lack a full neighborhood and pass through unchanged.
func blur3x3(src []uint8, w, h int) []uint8 {
	dst := make([]uint8, len(src))
	copy(dst, src)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			sum := 0
			sum += int(src[(y-1)*w+x-1]) + 2*int(src[(y-1)*w+x]) + int(src[(y-1)*w+x+1])
			sum += 2*int(src[y*w+x-1]) + 4*int(src[y*w+x]) + 2*int(src[y*w+x+1])
			sum += int(src[(y+1)*w+x-1]) + 2*int(src[(y+1)*w+x]) + int(src[(y+1)*w+x+1])
			dst[y*w+x] = uint8(sum / 16)
		}
	}
	return dst
}

// sobel classifies each interior pixel as edge (Black) or background
// (White) from the 3x3 gradient magnitude. Border pixels, having no
// full neighborhood, are treated as background.
func sobel(src []uint8, w, h int) []uint8 {
	dst := make([]uint8, len(src))
	for i := range dst {
		dst[i] = White
	}
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			tl := int(src[(y-1)*w+x-1])
			tc := int(src[(y-1)*w+x])
			tr := int(src[(y-1)*w+x+1])
			ml := int(src[y*w+x-1])
			mr := int(src[y*w+x+1])
			bl := int(src[(y+1)*w+x-1])
			bc := int(src[(y+1)*w+x])
			br := int(src[(y+1)*w+x+1])

			gx := -tl + tr - 2*ml + 2*mr - bl + br
			gy := -tl - 2*tc - tr + bl + 2*bc + br
			if math.Sqrt(float64(gx*gx+gy*gy)) > sobelCutoff {
				dst[y*w+x] = Black
			}
		}
	}
	return dst
}

// dilate grows black pixels by a discrete disk of the given radius.
// The output is computed from a single read-only pass over the input,
// so the result is independent of scan order: a pixel is black in the
// output iff some input pixel within Euclidean distance r is black.
func dilate(src *Bitmap, radius int) *Bitmap {
	offsets := diskOffsets(radius)
	w, h := src.width, src.height
	dst := &Bitmap{width: w, height: h, pix: make([]uint8, w*h)}
	for i := range dst.pix {
		dst.pix[i] = White
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if src.pix[y*w+x] != Black {
				continue
			}
			for _, off := range offsets {
				dst.Set(x+off[0], y+off[1], Black)
			}
		}
	}
	return dst
}

// diskOffsets lists the (dx, dy) pairs with dx^2+dy^2 <= r^2.
func diskOffsets(radius int) [][2]int {
	var offs [][2]int
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				offs = append(offs, [2]int{dx, dy})
			}
		}
	}
	return offs
}
