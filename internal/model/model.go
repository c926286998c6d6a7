// Package model holds the records that flow through the translation pipeline.
//
// All coordinates are in the pixel space of the preprocessed (upscaled)
// image, origin top-left, X rightward and Y downward.
package model

import "image"

// Region is an axis-aligned rectangle in pixel coordinates.
//
// Producers guarantee Width > 0, Height > 0 and that the rectangle lies
// within the image; consumers do not re-validate it.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FromBox converts corner coordinates (x1,y1 inclusive, x2,y2 exclusive)
// into a Region.
func FromBox(x1, y1, x2, y2 int) Region {
	return Region{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Rect returns the region as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Empty reports whether the region has no area.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Detection is one candidate region reported by a region detector.
type Detection struct {
	Region     Region  `json:"region"`
	Confidence float64 `json:"confidence"`
}

// TextRecord is the outcome of extracting, correcting and translating the
// text of one Detection. It is created once per detection and never
// mutated after the pipeline stage returns it.
type TextRecord struct {
	Position       Region  `json:"position"`
	OriginalText   string  `json:"original_text"`
	TranslatedText string  `json:"translated_text"`
	Confidence     float64 `json:"confidence"`
}
