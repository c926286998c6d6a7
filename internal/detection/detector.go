package detection

import (
	"context"
	"image"
	"sort"

	"github.com/ironsheep/textswap/internal/model"
)

// Detector finds candidate text regions in an image.
//
// Implementations report regions in absolute pixel coordinates of img, in an
// order that is stable for a given input. They must be safe for concurrent
// use, or be wrapped by the caller in a serializing adapter.
type Detector interface {
	Detect(ctx context.Context, img image.Image) ([]model.Detection, error)
}

// Box is the wire form of a detection: corner coordinates plus a score.
// (X1, Y1) is inclusive, (X2, Y2) exclusive.
type Box struct {
	X1         int     `json:"x1"`
	Y1         int     `json:"y1"`
	X2         int     `json:"x2"`
	Y2         int     `json:"y2"`
	Confidence float64 `json:"confidence"`
}

// Detection converts the box into a model.Detection, clamping the
// confidence into [0, 1].
func (b Box) Detection() model.Detection {
	return model.Detection{
		Region:     model.FromBox(b.X1, b.Y1, b.X2, b.Y2),
		Confidence: clampUnit(b.Confidence),
	}
}

// Filter keeps detections with a confidence of at least minConfidence and a
// non-empty region, preserving order.
func Filter(dets []model.Detection, minConfidence float64) []model.Detection {
	kept := make([]model.Detection, 0, len(dets))
	for _, d := range dets {
		if d.Region.Empty() || d.Confidence < minConfidence {
			continue
		}
		kept = append(kept, d)
	}
	return kept
}

// SortReadingOrder orders detections top-to-bottom, then left-to-right.
// The sort is stable so equal positions keep their detector order.
func SortReadingOrder(dets []model.Detection) {
	sort.SliceStable(dets, func(i, j int) bool {
		a, b := dets[i].Region, dets[j].Region
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
