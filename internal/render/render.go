// Package render paints text records onto images.
//
// Two independent passes are provided. Annotate draws a diagnostic overlay:
// the region outline plus a short caption. Replace erases each region with a
// flat fill and re-lays the full translated text inside it. Both passes
// mutate the destination in place and paint records in order, so later
// records cover earlier ones where regions overlap.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ironsheep/textswap/internal/imaging"
	"github.com/ironsheep/textswap/internal/layout"
	"github.com/ironsheep/textswap/internal/model"
)

// Style holds the colours and sizes used by both passes.
type Style struct {
	BoxColor      color.Color
	BoxThickness  int
	CaptionColor  color.Color
	CaptionMax    int
	CaptionMargin int
	Background    color.Color
	Foreground    color.Color
}

// DefaultStyle matches the debug overlay and replacement look of the service:
// green boxes, red captions, black text on white.
func DefaultStyle() Style {
	return Style{
		BoxColor:      color.RGBA{0, 255, 0, 255},
		BoxThickness:  2,
		CaptionColor:  color.RGBA{255, 0, 0, 255},
		CaptionMax:    20,
		CaptionMargin: 5,
		Background:    color.White,
		Foreground:    color.Black,
	}
}

// Renderer paints records with a text typesetter and a caption typesetter.
type Renderer struct {
	text    *layout.Typesetter
	caption *layout.Typesetter
	style   Style
}

// New creates a Renderer. If caption is nil, text is used for captions too.
func New(text, caption *layout.Typesetter, style Style) *Renderer {
	if caption == nil {
		caption = text
	}
	return &Renderer{text: text, caption: caption, style: style}
}

// Annotate draws each record's outline and its translated caption, truncated
// to Style.CaptionMax characters. The caption sits just above the region, or
// just inside it when there is no room above. No wrapping, no centering.
func (r *Renderer) Annotate(dst draw.Image, records []model.TextRecord) {
	for _, rec := range records {
		rect := rec.Position.Rect()
		imaging.StrokeRect(dst, rect, r.style.BoxColor, r.style.BoxThickness)

		caption := layout.Caption(rec.TranslatedText, r.style.CaptionMax)
		if caption == "" {
			continue
		}
		r.caption.Draw(dst, rec.Position.X, r.captionBaseline(rec.Position, caption), caption, r.style.CaptionColor)
	}
}

func (r *Renderer) captionBaseline(region model.Region, caption string) int {
	_, h := r.caption.Measure(caption)
	y := region.Y - r.style.CaptionMargin
	if y-h < 0 {
		y = region.Y + r.style.BoxThickness + h
	}
	return y
}

// Replace erases each region with the background fill and draws the planned
// lines of its translated text in the foreground colour. An empty
// translation leaves the region blank. The blocks are returned in record
// order.
func (r *Renderer) Replace(dst draw.Image, records []model.TextRecord) []layout.Block {
	blocks := make([]layout.Block, 0, len(records))
	for _, rec := range records {
		imaging.FillRect(dst, rec.Position.Rect(), r.style.Background)

		block := layout.Plan(r.text, rec.Position, rec.TranslatedText)
		for _, line := range block.Lines {
			r.text.Draw(dst, line.X, line.Y, line.Text, r.style.Foreground)
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// Outputs holds the two rendered copies of the preprocessed image.
type Outputs struct {
	Annotated   *image.RGBA
	Replacement *image.RGBA
	Blocks      []layout.Block
}

// Render runs both passes on separate clones of src. src is not modified.
func (r *Renderer) Render(src image.Image, records []model.TextRecord) Outputs {
	annotated := imaging.CloneRGBA(src)
	replacement := imaging.CloneRGBA(src)

	r.Annotate(annotated, records)
	blocks := r.Replace(replacement, records)

	return Outputs{Annotated: annotated, Replacement: replacement, Blocks: blocks}
}
