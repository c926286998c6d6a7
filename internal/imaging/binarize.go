package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/histogram"
	"github.com/anthonynsimon/bild/segment"
)

// Binarize converts img to grayscale and applies a global threshold whose
// level is computed from the image histogram with Otsu's method.
//
// Pixels brighter than the Otsu threshold become white (255), the rest black
// (0). This normalizes uneven lighting and coloured backgrounds before OCR.
//
// Returns the binary image and the threshold that was applied.
func Binarize(img image.Image) (*image.Gray, uint8) {
	gray := effect.Grayscale(img)
	t := OtsuThreshold(gray)

	// segment.Threshold keeps pixels at or above level, so the cut sits one
	// above t to send t itself to the dark class.
	level := t
	if level < 255 {
		level++
	}
	return segment.Threshold(gray, level), t
}

// OtsuThreshold returns the gray level that maximizes the between-class
// variance of the histogram of gray. Only the red channel is read, so gray
// must already be grayscale.
//
// The returned value t splits pixels into classes [0, t] and (t, 255]. A
// uniform image has no separating level and yields 0.
func OtsuThreshold(gray image.Image) uint8 {
	bins := histogram.NewRGBAHistogram(gray).R.Bins

	total := 0
	var sumAll float64
	for level, count := range bins {
		total += count
		sumAll += float64(level * count)
	}
	if total == 0 {
		return 0
	}

	var (
		best       uint8
		bestVar    float64
		weightBack int
		sumBack    float64
	)
	for level := 0; level < len(bins); level++ {
		weightBack += bins[level]
		if weightBack == 0 {
			continue
		}
		weightFore := total - weightBack
		if weightFore == 0 {
			break
		}

		sumBack += float64(level * bins[level])
		meanBack := sumBack / float64(weightBack)
		meanFore := (sumAll - sumBack) / float64(weightFore)

		diff := meanBack - meanFore
		between := float64(weightBack) * float64(weightFore) * diff * diff
		if between > bestVar {
			bestVar = between
			best = uint8(level)
		}
	}
	return best
}
