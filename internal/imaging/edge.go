package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
)

// DefaultEdgeThreshold is the Sobel response above which a pixel counts as
// an edge.
const DefaultEdgeThreshold = 96

// EdgeMask marks pixels whose Sobel response exceeds threshold.
//
// The image is converted to grayscale first, so coloured and gray text
// produce the same map. The mask is indexed [y][x] relative to the image
// origin, like ColorMask.
func EdgeMask(img image.Image, threshold uint8) Mask {
	sobel := effect.Sobel(effect.Grayscale(img))
	b := sobel.Bounds()

	mask := make(Mask, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		mask[y] = make([]bool, b.Dx())
		row := sobel.Pix[y*sobel.Stride:]
		for x := 0; x < b.Dx(); x++ {
			// Channels are equal after grayscale; red is enough.
			mask[y][x] = row[x*4] > threshold
		}
	}
	return mask
}

// Density returns the fraction of set pixels of mask inside r. r is clipped
// to the mask; an empty intersection yields 0.
func (m Mask) Density(r image.Rectangle) float64 {
	r = r.Intersect(image.Rect(0, 0, m.width(), len(m)))
	if r.Empty() {
		return 0
	}
	set := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if m[y][x] {
				set++
			}
		}
	}
	return float64(set) / float64(r.Dx()*r.Dy())
}

func (m Mask) width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}
