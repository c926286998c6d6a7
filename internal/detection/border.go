package detection

import (
	"context"
	"image"
	"math"

	"github.com/ironsheep/textswap/internal/imaging"
	"github.com/ironsheep/textswap/internal/model"
)

// BorderDetector finds regions marked by a coloured rectangular border and
// reports the interior of each border.
//
// # Algorithm
//
//  1. Colour mask: select border pixels by HSV range (red by default)
//  2. Contour finding: group mask pixels into 4-connected components
//  3. Thickness: count mask pixels inward from the left and top edges of
//     each component's bounding box, at its middle row and column
//  4. Rectangularity: compare the component's pixel count with the area of
//     an ideal frame of that thickness.
//     Score = 1 - |pixels - expected| / expected
//  5. Filtering: drop components below MinArea, with no hollow interior, or
//     with score < Tolerance
//
// Confidence is the rectangularity score. Results are in reading order.
type BorderDetector struct {
	// Spec selects border pixels.
	Spec imaging.ColorMaskSpec

	// MinArea is the minimum outer area in square pixels.
	MinArea int

	// Tolerance is the minimum rectangularity (0.0 to 1.0).
	Tolerance float64
}

// NewBorderDetector returns a red-border detector with defaults suited to
// images already upscaled by the preprocessor.
func NewBorderDetector() *BorderDetector {
	return &BorderDetector{
		Spec:      imaging.RedMaskSpec,
		MinArea:   400,
		Tolerance: 0.6,
	}
}

// Detect implements Detector. It never fails.
func (d *BorderDetector) Detect(ctx context.Context, img image.Image) ([]model.Detection, error) {
	bounds := img.Bounds()
	mask := imaging.ColorMask(img, d.Spec)
	contours := imaging.MaskContours(mask, 4)

	dets := make([]model.Detection, 0, len(contours))
	for _, c := range contours {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		box, ok := d.frame(mask, c)
		if !ok {
			continue
		}
		box.X1 += bounds.Min.X
		box.X2 += bounds.Min.X
		box.Y1 += bounds.Min.Y
		box.Y2 += bounds.Min.Y
		dets = append(dets, box.Detection())
	}

	SortReadingOrder(dets)
	return dets, nil
}

// frame checks whether a contour is a rectangular frame and returns its interior.
func (d *BorderDetector) frame(mask imaging.Mask, c imaging.Contour) (Box, bool) {
	w, h := c.Bounds.Dx(), c.Bounds.Dy()
	if w*h < d.MinArea {
		return Box{}, false
	}

	t := borderThickness(mask, c.Bounds)
	innerW, innerH := w-2*t, h-2*t
	if innerW <= 0 || innerH <= 0 {
		return Box{}, false
	}

	expected := w*h - innerW*innerH
	score := 1.0 - math.Abs(float64(c.Pixels-expected))/float64(expected)
	if score < d.Tolerance {
		return Box{}, false
	}

	return Box{
		X1:         c.Bounds.Min.X + t,
		Y1:         c.Bounds.Min.Y + t,
		X2:         c.Bounds.Max.X - t,
		Y2:         c.Bounds.Max.Y - t,
		Confidence: math.Round(score*1000) / 1000,
	}, true
}

// borderThickness measures the run of mask pixels entering the box from the
// left edge at the middle row and from the top edge at the middle column,
// and returns the smaller of the two (at least 1).
func borderThickness(mask imaging.Mask, r image.Rectangle) int {
	midY := (r.Min.Y + r.Max.Y) / 2
	midX := (r.Min.X + r.Max.X) / 2

	left := 0
	for x := r.Min.X; x < r.Max.X && mask[midY][x]; x++ {
		left++
	}
	top := 0
	for y := r.Min.Y; y < r.Max.Y && mask[y][midX]; y++ {
		top++
	}

	t := min(left, top)
	if t < 1 {
		t = 1
	}
	return t
}
