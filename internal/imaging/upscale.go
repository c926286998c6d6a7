package imaging

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/transform"
)

// DefaultZoom is the upscale factor applied before detection and OCR.
const DefaultZoom = 3.0

// Upscale resizes img by factor on both axes using linear interpolation.
//
// The output dimensions are round(width*factor) x round(height*factor), with
// a floor of 1 pixel per axis. A non-positive factor is treated as 1.0. The
// returned image is always a fresh buffer with bounds starting at (0,0), so
// callers may paint on it without affecting img.
//
// Small text below a pixel-density threshold is unreliable for both region
// detection and OCR; uniform upscaling keeps the aspect ratio intact.
func Upscale(img image.Image, factor float64) *image.RGBA {
	if factor <= 0 {
		factor = 1.0
	}

	w, h := ScaledSize(img.Bounds().Dx(), img.Bounds().Dy(), factor)
	return transform.Resize(img, w, h, transform.Linear)
}

// ScaledSize returns the dimensions produced by scaling (width, height) by factor.
func ScaledSize(width, height int, factor float64) (int, int) {
	w := int(math.Round(float64(width) * factor))
	h := int(math.Round(float64(height) * factor))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
