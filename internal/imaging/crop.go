package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/textswap/internal/model"
)

// ErrDegenerateRegion is returned when a crop region has no area or lies
// outside the image.
var ErrDegenerateRegion = errors.New("degenerate crop region")

// CropRegion extracts region from img as a new image with bounds (0,0)-(w,h).
//
// The crop is a pure function of img and region: the same inputs always
// produce the same pixels, and img is never modified.
//
// Returns ErrDegenerateRegion (wrapped) if the region has zero or negative
// width/height or is not fully contained in the image bounds.
func CropRegion(img image.Image, region model.Region) (*image.NRGBA, error) {
	if region.Empty() {
		return nil, fmt.Errorf("%w: %dx%d", ErrDegenerateRegion, region.Width, region.Height)
	}

	bounds := img.Bounds()
	rect := region.Rect().Add(bounds.Min)
	if !rect.In(bounds) {
		return nil, fmt.Errorf("%w: region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			ErrDegenerateRegion, rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y,
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}

	return imaging.Crop(img, rect), nil
}
