package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestEdgeMask(t *testing.T) {
	img := createInMemoryImage(40, 40, color.Black)
	FillRect(img, image.Rect(10, 10, 30, 30), color.White)

	mask := EdgeMask(img, DefaultEdgeThreshold)
	if len(mask) != 40 || len(mask[0]) != 40 {
		t.Fatalf("mask is %dx%d, want 40x40", len(mask[0]), len(mask))
	}

	for _, p := range []image.Point{{2, 2}, {20, 20}, {37, 37}} {
		if mask[p.Y][p.X] {
			t.Errorf("flat pixel %v marked as edge", p)
		}
	}

	edges := 0
	for y := 8; y < 32; y++ {
		for x := 8; x < 32; x++ {
			if mask[y][x] {
				edges++
			}
		}
	}
	if edges == 0 {
		t.Error("no edges found around the square")
	}
}

func TestEdgeMask_Uniform(t *testing.T) {
	mask := EdgeMask(createInMemoryImage(20, 20, color.RGBA{90, 160, 30, 255}), DefaultEdgeThreshold)
	if d := mask.Density(image.Rect(0, 0, 20, 20)); d != 0 {
		t.Errorf("uniform image edge density = %v, want 0", d)
	}
}
