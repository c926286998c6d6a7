package layout

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// BasePixelSize is the em size in pixels of a font at scale 1.0. Go Regular
// at 30px has a cap height of about 22px.
const BasePixelSize = 30.0

// ReferenceChar is the glyph measured to estimate the width of one character.
const ReferenceChar = "A"

// Typesetter measures and draws text with one fixed face and stroke
// thickness. Measure is the only measurement routine in the package, so the
// per-character estimate used for line planning and the per-line widths
// used for centering always agree.
//
// Font faces cache glyphs and are not safe for concurrent use, so every
// access to the face is serialized. A single Typesetter may be shared by
// concurrent requests.
type Typesetter struct {
	mu        sync.Mutex
	face      font.Face
	thickness int
	spacing   int
}

// NewTypesetter builds a Typesetter around Go Regular.
//
// Parameters:
//   - scale: Font scale; the em size is BasePixelSize*scale pixels.
//   - thickness: Stroke thickness in pixels. Values below 1 are raised to 1.
//   - lineSpacing: Extra pixels between consecutive lines.
func NewTypesetter(scale float64, thickness, lineSpacing int) (*Typesetter, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("invalid font scale %v: must be positive", scale)
	}

	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    BasePixelSize * scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	return NewTypesetterWithFace(face, thickness, lineSpacing), nil
}

// NewTypesetterWithFace builds a Typesetter around an existing face.
func NewTypesetterWithFace(face font.Face, thickness, lineSpacing int) *Typesetter {
	if thickness < 1 {
		thickness = 1
	}
	if lineSpacing < 0 {
		lineSpacing = 0
	}
	return &Typesetter{face: face, thickness: thickness, spacing: lineSpacing}
}

// LineSpacing returns the fixed gap between lines in pixels.
func (t *Typesetter) LineSpacing() int {
	return t.spacing
}

// Measure returns the rendered width of s and its height above the
// baseline, both in pixels and including the stroke thickness.
// An empty string measures 0x0.
func (t *Typesetter) Measure(s string) (width, height int) {
	if s == "" {
		return 0, 0
	}
	t.mu.Lock()
	bounds, advance := font.BoundString(t.face, s)
	t.mu.Unlock()

	extra := t.thickness - 1
	width = advance.Ceil() + extra
	height = (-bounds.Min.Y).Ceil() + extra
	if height < 0 {
		height = 0
	}
	return width, height
}

// ReferenceSize measures ReferenceChar.
func (t *Typesetter) ReferenceSize() (width, height int) {
	return t.Measure(ReferenceChar)
}

// Draw renders s with its baseline starting at (x, y). The stroke is built
// by drawing the glyphs at every offset in [0, thickness) on both axes.
func (t *Typesetter) Draw(dst draw.Image, x, y int, s string, c color.Color) {
	if s == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: t.face,
	}
	for dy := 0; dy < t.thickness; dy++ {
		for dx := 0; dx < t.thickness; dx++ {
			d.Dot = fixed.P(x+dx, y-dy)
			d.DrawString(s)
		}
	}
}
