package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestRedMask(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want bool
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, true},
		{"crimson", color.RGBA{220, 20, 60, 255}, true},
		{"red with blue tint", color.RGBA{255, 0, 43, 255}, true},
		{"too dark", color.RGBA{60, 0, 0, 255}, false},
		{"washed out pink", color.RGBA{255, 200, 200, 255}, false},
		{"orange", color.RGBA{255, 128, 0, 255}, false},
		{"green", color.RGBA{0, 255, 0, 255}, false},
		{"white", color.White, false},
		{"transparent", color.RGBA{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask := RedMask(createInMemoryImage(2, 2, tt.c))
			if mask[1][1] != tt.want {
				t.Errorf("RedMask(%v) = %v, want %v", tt.c, mask[1][1], tt.want)
			}
		})
	}
}

func TestColorMask_CustomSpec(t *testing.T) {
	spec := ColorMaskSpec{Bands: []HueBand{{Min: 100, Max: 140}}, MinSat: 0.5, MinVal: 0.5}
	img := createSplitImage(10, 4, color.RGBA{0, 200, 0, 255}, color.RGBA{200, 0, 0, 255})

	mask := ColorMask(img, spec)
	if !mask[0][0] || mask[0][9] {
		t.Errorf("green band mask = %v / %v, want true / false", mask[0][0], mask[0][9])
	}
}

func TestColorMask_SubImage(t *testing.T) {
	img := createInMemoryImage(20, 20, color.White)
	img.Set(12, 15, color.RGBA{255, 0, 0, 255})

	mask := RedMask(img.SubImage(image.Rect(10, 10, 20, 20)))
	if len(mask) != 10 || len(mask[0]) != 10 {
		t.Fatalf("mask is %dx%d, want 10x10", len(mask[0]), len(mask))
	}
	if !mask[5][2] {
		t.Error("mask is not relative to the image origin")
	}
}

func TestMaskContours(t *testing.T) {
	img := createInMemoryImage(40, 30, color.White)
	red := color.RGBA{255, 0, 0, 255}
	FillRect(img, image.Rect(25, 2, 35, 6), red)
	FillRect(img, image.Rect(2, 10, 12, 20), red)
	img.Set(38, 28, red) // noise
	StrokeRect(img, image.Rect(14, 22, 24, 30), red, 1)

	contours := MaskContours(RedMask(img), 4)
	want := []Contour{
		{Bounds: image.Rect(25, 2, 35, 6), Pixels: 40},
		{Bounds: image.Rect(2, 10, 12, 20), Pixels: 100},
		{Bounds: image.Rect(14, 22, 24, 30), Pixels: 32},
	}
	if len(contours) != len(want) {
		t.Fatalf("got %d contours %+v, want %d", len(contours), contours, len(want))
	}
	for i := range want {
		if contours[i] != want[i] {
			t.Errorf("contour %d = %+v, want %+v", i, contours[i], want[i])
		}
	}
}

func TestMaskContours_DiagonalNotConnected(t *testing.T) {
	mask := Mask{
		{true, false},
		{false, true},
	}
	if got := MaskContours(mask, 1); len(got) != 2 {
		t.Errorf("got %d contours, want 2 for diagonal pixels", len(got))
	}
	if got := MaskContours(nil, 1); got != nil {
		t.Errorf("MaskContours(nil) = %v, want nil", got)
	}
}

func TestMaskDensity(t *testing.T) {
	mask := make(Mask, 10)
	for y := range mask {
		mask[y] = make([]bool, 10)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			mask[y][x] = true
		}
	}

	tests := []struct {
		name string
		r    image.Rectangle
		want float64
	}{
		{"whole mask", image.Rect(0, 0, 10, 10), 0.25},
		{"filled quadrant", image.Rect(0, 0, 5, 5), 1},
		{"empty quadrant", image.Rect(5, 5, 10, 10), 0},
		{"clipped", image.Rect(-5, -5, 5, 5), 1},
		{"outside", image.Rect(20, 20, 30, 30), 0},
	}
	for _, tt := range tests {
		if got := mask.Density(tt.r); got != tt.want {
			t.Errorf("%s: Density() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
