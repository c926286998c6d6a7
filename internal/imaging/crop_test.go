package imaging

import (
	"errors"
	"image"
	"testing"

	"github.com/ironsheep/textswap/internal/model"
)

func TestCropRegion(t *testing.T) {
	img := createPatternImage(100, 80)
	region := model.Region{X: 10, Y: 20, Width: 30, Height: 15}

	crop, err := CropRegion(img, region)
	if err != nil {
		t.Fatalf("CropRegion() error: %v", err)
	}
	if crop.Bounds() != image.Rect(0, 0, 30, 15) {
		t.Fatalf("bounds = %v, want (0,0)-(30,15)", crop.Bounds())
	}

	for y := 0; y < 15; y++ {
		for x := 0; x < 30; x++ {
			if !sameColor(crop.At(x, y), img.At(x+10, y+20)) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, crop.At(x, y), img.At(x+10, y+20))
			}
		}
	}
}

func TestCropRegion_Deterministic(t *testing.T) {
	img := createPatternImage(64, 64)
	region := model.Region{X: 3, Y: 5, Width: 20, Height: 11}

	a, err := CropRegion(img, region)
	if err != nil {
		t.Fatal(err)
	}
	b, err := CropRegion(img, region)
	if err != nil {
		t.Fatal(err)
	}
	if string(a.Pix) != string(b.Pix) {
		t.Error("two crops of the same region differ")
	}
}

func TestCropRegion_FullImage(t *testing.T) {
	img := createPatternImage(40, 30)
	crop, err := CropRegion(img, model.Region{Width: 40, Height: 30})
	if err != nil {
		t.Fatalf("CropRegion() error: %v", err)
	}
	if crop.Bounds().Dx() != 40 || crop.Bounds().Dy() != 30 {
		t.Errorf("bounds = %v, want 40x30", crop.Bounds())
	}
}

func TestCropRegion_SubImage(t *testing.T) {
	img := createPatternImage(100, 100)
	sub := img.SubImage(image.Rect(50, 50, 100, 100))

	crop, err := CropRegion(sub, model.Region{X: 5, Y: 5, Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("CropRegion() error: %v", err)
	}
	if !sameColor(crop.At(0, 0), img.At(55, 55)) {
		t.Error("region is not relative to the image origin")
	}
}

func TestCropRegion_Degenerate(t *testing.T) {
	img := createPatternImage(100, 80)

	tests := []struct {
		name   string
		region model.Region
	}{
		{"zero width", model.Region{X: 10, Y: 10, Width: 0, Height: 5}},
		{"negative height", model.Region{X: 10, Y: 10, Width: 5, Height: -1}},
		{"past right edge", model.Region{X: 90, Y: 10, Width: 20, Height: 5}},
		{"past bottom edge", model.Region{X: 0, Y: 70, Width: 5, Height: 20}},
		{"negative origin", model.Region{X: -1, Y: 0, Width: 5, Height: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CropRegion(img, tt.region)
			if !errors.Is(err, ErrDegenerateRegion) {
				t.Errorf("CropRegion() error = %v, want ErrDegenerateRegion", err)
			}
		})
	}
}
