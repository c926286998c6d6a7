package imaging

import (
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HueBand is an inclusive hue interval in degrees (0-360).
type HueBand struct {
	Min float64 `json:"min" mapstructure:"min"`
	Max float64 `json:"max" mapstructure:"max"`
}

// ColorMaskSpec selects pixels by HSV range. A pixel matches when its hue
// falls in any band and its saturation and value are at least the minimums.
type ColorMaskSpec struct {
	Bands  []HueBand `json:"bands" mapstructure:"bands"`
	MinSat float64   `json:"min_saturation" mapstructure:"min_saturation"`
	MinVal float64   `json:"min_value" mapstructure:"min_value"`
}

// RedMaskSpec matches saturated red markings. Red wraps around 0 degrees,
// so it needs two hue bands.
var RedMaskSpec = ColorMaskSpec{
	Bands:  []HueBand{{Min: 0, Max: 20}, {Min: 340, Max: 360}},
	MinSat: 0.47,
	MinVal: 0.27,
}

// Mask is a binary pixel grid indexed [y][x], relative to the image origin.
type Mask [][]bool

// ColorMask evaluates spec against every pixel of img.
func ColorMask(img image.Image, spec ColorMaskSpec) Mask {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mask := make(Mask, height)
	for y := 0; y < height; y++ {
		mask[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			c, ok := colorful.MakeColor(img.At(x+bounds.Min.X, y+bounds.Min.Y))
			if !ok {
				// Fully transparent pixel
				continue
			}
			h, s, v := c.Hsv()
			if s < spec.MinSat || v < spec.MinVal {
				continue
			}
			for _, band := range spec.Bands {
				if h >= band.Min && h <= band.Max {
					mask[y][x] = true
					break
				}
			}
		}
	}
	return mask
}

// RedMask is ColorMask with RedMaskSpec.
func RedMask(img image.Image) Mask {
	return ColorMask(img, RedMaskSpec)
}

// Contour is one 4-connected component of a Mask.
type Contour struct {
	// Bounds is the bounding box of the component, Max exclusive.
	Bounds image.Rectangle `json:"bounds"`

	// Pixels is the number of mask pixels in the component.
	Pixels int `json:"pixels"`
}

// MaskContours groups set mask pixels into connected components.
//
// Components with fewer than minPixels pixels are dropped as noise.
// Components are returned in scan order of their first pixel (top to bottom,
// left to right), which makes the result stable for a given mask.
func MaskContours(mask Mask, minPixels int) []Contour {
	height := len(mask)
	if height == 0 {
		return nil
	}
	width := len(mask[0])

	visited := make([][]bool, height)
	for y := range visited {
		visited[y] = make([]bool, width)
	}

	contours := make([]Contour, 0)
	stack := make([]image.Point, 0, 64)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask[y][x] || visited[y][x] {
				continue
			}

			minX, minY, maxX, maxY := x, y, x, y
			pixels := 0
			visited[y][x] = true
			stack = append(stack[:0], image.Pt(x, y))

			// Iterative flood fill; large borders overflow a recursive one.
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				pixels++

				minX = min(minX, p.X)
				minY = min(minY, p.Y)
				maxX = max(maxX, p.X)
				maxY = max(maxY, p.Y)

				for _, n := range [4]image.Point{{p.X + 1, p.Y}, {p.X - 1, p.Y}, {p.X, p.Y + 1}, {p.X, p.Y - 1}} {
					if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
						continue
					}
					if mask[n.Y][n.X] && !visited[n.Y][n.X] {
						visited[n.Y][n.X] = true
						stack = append(stack, n)
					}
				}
			}

			if pixels >= minPixels {
				contours = append(contours, Contour{
					Bounds: image.Rect(minX, minY, maxX+1, maxY+1),
					Pixels: pixels,
				})
			}
		}
	}

	return contours
}
