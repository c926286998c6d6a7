package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/textswap/internal/layout"
	"github.com/ironsheep/textswap/internal/model"
)

// createSolidImage creates an image filled with a single color
func createSolidImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	ts, err := layout.NewTypesetter(0.7, 2, 10)
	if err != nil {
		t.Fatalf("NewTypesetter() error: %v", err)
	}
	return New(ts, nil, DefaultStyle())
}

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func TestAnnotate(t *testing.T) {
	r := newTestRenderer(t)
	gray := color.RGBA{128, 128, 128, 255}
	img := createSolidImage(200, 120, gray)

	rec := model.TextRecord{
		Position:       model.Region{X: 40, Y: 50, Width: 100, Height: 40},
		TranslatedText: "hello",
	}
	r.Annotate(img, []model.TextRecord{rec})

	green := DefaultStyle().BoxColor
	for _, p := range []image.Point{{40, 50}, {139, 50}, {40, 89}, {139, 89}, {41, 51}} {
		if !sameColor(img.At(p.X, p.Y), green) {
			t.Errorf("pixel %v = %v, want box colour", p, img.At(p.X, p.Y))
		}
	}
	if !sameColor(img.At(90, 70), gray) {
		t.Error("Annotate should not paint the region interior")
	}

	red := DefaultStyle().CaptionColor
	found := false
	for y := 0; y < 50 && !found; y++ {
		for x := 40; x < 200; x++ {
			if sameColor(img.At(x, y), red) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("caption not drawn above the region")
	}
}

func TestAnnotateCaptionInsideAtTop(t *testing.T) {
	r := newTestRenderer(t)
	img := createSolidImage(200, 100, color.White)

	rec := model.TextRecord{
		Position:       model.Region{X: 10, Y: 0, Width: 150, Height: 60},
		TranslatedText: "top",
	}
	r.Annotate(img, []model.TextRecord{rec})

	red := DefaultStyle().CaptionColor
	found := false
	for y := 0; y < 60 && !found; y++ {
		for x := 10; x < 160; x++ {
			if sameColor(img.At(x, y), red) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("caption for a region at the top edge should be drawn inside it")
	}
}

func TestReplace(t *testing.T) {
	r := newTestRenderer(t)
	img := createSolidImage(200, 100, color.RGBA{200, 0, 0, 255})

	region := model.Region{X: 20, Y: 20, Width: 100, Height: 40}
	blocks := r.Replace(img, []model.TextRecord{{Position: region, TranslatedText: "123"}})

	if len(blocks) != 1 || len(blocks[0].Lines) != 1 {
		t.Fatalf("blocks = %+v, want one single-line block", blocks)
	}

	white, black := 0, 0
	for y := region.Y; y < region.Y+region.Height; y++ {
		for x := region.X; x < region.X+region.Width; x++ {
			switch c := img.At(x, y); {
			case sameColor(c, color.White):
				white++
			case sameColor(c, color.Black):
				black++
			case sameColor(c, color.RGBA{200, 0, 0, 255}):
				t.Fatalf("original pixel survived at (%d,%d)", x, y)
			}
		}
	}
	if white == 0 || black == 0 {
		t.Errorf("region has %d white and %d black pixels, want both", white, black)
	}

	if !sameColor(img.At(5, 5), color.RGBA{200, 0, 0, 255}) {
		t.Error("Replace painted outside the region")
	}
}

func TestReplaceEmptyText(t *testing.T) {
	r := newTestRenderer(t)
	img := createSolidImage(50, 50, color.Black)

	region := model.Region{X: 10, Y: 10, Width: 20, Height: 20}
	blocks := r.Replace(img, []model.TextRecord{{Position: region}})

	if len(blocks[0].Lines) != 0 {
		t.Errorf("empty text planned %d lines", len(blocks[0].Lines))
	}
	for y := 10; y < 30; y++ {
		for x := 10; x < 30; x++ {
			if !sameColor(img.At(x, y), color.White) {
				t.Fatalf("pixel (%d,%d) not erased", x, y)
			}
		}
	}
}

func TestRender(t *testing.T) {
	r := newTestRenderer(t)
	src := createSolidImage(120, 80, color.RGBA{10, 20, 30, 255})
	before := append([]uint8(nil), src.Pix...)

	out := r.Render(src, []model.TextRecord{{
		Position:       model.Region{X: 10, Y: 20, Width: 80, Height: 40},
		TranslatedText: "abc",
	}})

	for i := range before {
		if src.Pix[i] != before[i] {
			t.Fatal("Render modified its source image")
		}
	}
	if out.Annotated.Bounds() != src.Bounds() || out.Replacement.Bounds() != src.Bounds() {
		t.Errorf("output bounds %v / %v, want %v", out.Annotated.Bounds(), out.Replacement.Bounds(), src.Bounds())
	}
	if len(out.Blocks) != 1 {
		t.Errorf("got %d blocks, want 1", len(out.Blocks))
	}
}
