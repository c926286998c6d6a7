package detection

import (
	"context"
	"image"
	"math"

	"github.com/ironsheep/textswap/internal/imaging"
	"github.com/ironsheep/textswap/internal/model"
)

// Window is a sliding-window size in pixels.
type Window struct {
	W, H int
}

// DensityDetector finds unmarked text by edge density.
//
// Printed text produces a medium density of edges with more horizontal than
// vertical structure. The detector slides each window over the Sobel edge
// mask with a half-window step, scores every position, and merges the
// overlapping hits into regions.
//
// Score = horizontality * (1 - |density - 0.2| / 0.2), where horizontality
// is the share of horizontal edge runs among all runs in the window. Only
// windows with a density in [MinDensity, MaxDensity] are scored.
//
// It is a fallback for images without border markings and works best on
// clean, high-contrast signage.
type DensityDetector struct {
	Windows       []Window
	EdgeThreshold uint8
	MinDensity    float64
	MaxDensity    float64
	MinScore      float64
}

// NewDensityDetector returns a detector with window sizes suited to images
// upscaled by the preprocessor.
func NewDensityDetector() *DensityDetector {
	return &DensityDetector{
		Windows:       []Window{{80, 25}, {100, 30}, {150, 40}, {200, 50}},
		EdgeThreshold: imaging.DefaultEdgeThreshold,
		MinDensity:    0.05,
		MaxDensity:    0.4,
		MinScore:      0.3,
	}
}

// Detect implements Detector.
func (d *DensityDetector) Detect(ctx context.Context, img image.Image) ([]model.Detection, error) {
	bounds := img.Bounds()
	edges := imaging.EdgeMask(img, d.EdgeThreshold)
	width, height := bounds.Dx(), bounds.Dy()

	var hits []Box
	for _, win := range d.Windows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if win.W <= 0 || win.H <= 0 || win.W > width || win.H > height {
			continue
		}

		stepX, stepY := max(win.W/2, 1), max(win.H/2, 1)
		for y := 0; y+win.H <= height; y += stepY {
			for x := 0; x+win.W <= width; x += stepX {
				r := image.Rect(x, y, x+win.W, y+win.H)
				score, ok := d.score(edges, r)
				if !ok {
					continue
				}
				hits = append(hits, Box{
					X1:         r.Min.X + bounds.Min.X,
					Y1:         r.Min.Y + bounds.Min.Y,
					X2:         r.Max.X + bounds.Min.X,
					Y2:         r.Max.Y + bounds.Min.Y,
					Confidence: math.Round(score*1000) / 1000,
				})
			}
		}
	}

	merged := mergeBoxes(hits)
	dets := make([]model.Detection, 0, len(merged))
	for _, b := range merged {
		dets = append(dets, b.Detection())
	}
	SortReadingOrder(dets)
	return dets, nil
}

func (d *DensityDetector) score(edges imaging.Mask, r image.Rectangle) (float64, bool) {
	density := edges.Density(r)
	if density < d.MinDensity || density > d.MaxDensity {
		return 0, false
	}
	score := horizontality(edges, r) * (1 - math.Abs(density-0.2)/0.2)
	return score, score >= d.MinScore
}

// horizontality is the share of horizontal edge runs among all edge runs
// inside r.
func horizontality(edges imaging.Mask, r image.Rectangle) float64 {
	horizontal, vertical := 0, 0

	for y := r.Min.Y; y < r.Max.Y; y++ {
		in := false
		for x := r.Min.X; x < r.Max.X; x++ {
			if edges[y][x] && !in {
				horizontal++
			}
			in = edges[y][x]
		}
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		in := false
		for y := r.Min.Y; y < r.Max.Y; y++ {
			if edges[y][x] && !in {
				vertical++
			}
			in = edges[y][x]
		}
	}

	if horizontal+vertical == 0 {
		return 0
	}
	return float64(horizontal) / float64(horizontal+vertical)
}

// mergeBoxes folds overlapping boxes into their union until no two overlap.
// The merged confidence is the highest of its members.
func mergeBoxes(boxes []Box) []Box {
	merged := make([]Box, 0, len(boxes))
	for _, b := range boxes {
		merged = append(merged, b)
		for changed := true; changed; {
			changed = false
			last := len(merged) - 1
			for i := 0; i < last; i++ {
				if !overlaps(merged[i], merged[last]) {
					continue
				}
				merged[last] = union(merged[i], merged[last])
				merged = append(merged[:i], merged[i+1:]...)
				changed = true
				break
			}
		}
	}
	return merged
}

func overlaps(a, b Box) bool {
	return a.X1 < b.X2 && a.X2 > b.X1 && a.Y1 < b.Y2 && a.Y2 > b.Y1
}

func union(a, b Box) Box {
	return Box{
		X1:         min(a.X1, b.X1),
		Y1:         min(a.Y1, b.Y1),
		X2:         max(a.X2, b.X2),
		Y2:         max(a.Y2, b.Y2),
		Confidence: math.Max(a.Confidence, b.Confidence),
	}
}
