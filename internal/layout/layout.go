// Package layout plans how translated text is re-laid inside a region.
//
// Planning happens in two phases. Line breaking assumes every character is
// as wide as ReferenceChar and derives a per-line character budget from the
// region width. Placement then measures each produced line exactly and
// centers it horizontally. The approximation only affects how many lines a
// text needs; mixed-width scripts therefore wrap by character count, not by
// pixel width.
//
// Nothing is clipped: a block taller than its region extends below it, and
// a single word longer than the budget overflows horizontally.
package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/ironsheep/textswap/internal/model"
)

// Ellipsis is appended to truncated captions.
const Ellipsis = "..."

// Line is one placed line of text.
type Line struct {
	Text string `json:"text"`

	// X is the left edge of the line in pixels.
	X int `json:"x"`

	// Y is the baseline of the line in pixels.
	Y int `json:"y"`

	// Width is the measured rendered width of Text.
	Width int `json:"width"`
}

// Block is the full layout of one text inside one region.
type Block struct {
	Lines []Line `json:"lines"`

	// MaxChars is the per-line character budget used for wrapping.
	MaxChars int `json:"max_chars"`

	// CharWidth and CharHeight are the measured reference character size.
	CharWidth  int `json:"char_width"`
	CharHeight int `json:"char_height"`

	// LineHeight is CharHeight plus the fixed line spacing.
	LineHeight int `json:"line_height"`
}

// Height returns the total planned height of the block.
func (b Block) Height() int {
	return len(b.Lines) * b.LineHeight
}

// MaxCharsPerLine returns how many reference-width characters fit in
// regionWidth, never less than 1. A non-positive charWidth counts as 1.
func MaxCharsPerLine(regionWidth, charWidth int) int {
	if charWidth < 1 {
		charWidth = 1
	}
	n := regionWidth / charWidth
	if n < 1 {
		return 1
	}
	return n
}

// Wrap greedily breaks text on whitespace into lines of at most maxChars
// characters (runes). Words are never split: a word longer than maxChars is
// placed on a line of its own and overflows. Text without any words yields
// no lines.
func Wrap(text string, maxChars int) []string {
	if maxChars < 1 {
		maxChars = 1
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, len(words))
	current := words[0]
	currentLen := utf8.RuneCountInString(current)

	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen <= maxChars {
			current += " " + word
			currentLen += 1 + wordLen
			continue
		}
		lines = append(lines, current)
		current = word
		currentLen = wordLen
	}
	return append(lines, current)
}

// CenterX returns the left edge that horizontally centers a line of
// lineWidth pixels within region.
func CenterX(region model.Region, lineWidth int) int {
	return region.X + (region.Width-lineWidth)/2
}

// Plan lays text out inside region.
//
// The block of n lines is n*(charHeight+spacing) tall and vertically
// centered: the first baseline sits at
//
//	region.Y + (region.Height - blockHeight)/2 + charHeight
//
// and each following baseline one line height lower. Each line is centered
// horizontally using its own measured width.
func Plan(ts *Typesetter, region model.Region, text string) Block {
	charW, charH := ts.ReferenceSize()
	maxChars := MaxCharsPerLine(region.Width, charW)
	lineHeight := charH + ts.LineSpacing()

	block := Block{
		MaxChars:   maxChars,
		CharWidth:  charW,
		CharHeight: charH,
		LineHeight: lineHeight,
	}

	wrapped := Wrap(text, maxChars)
	if len(wrapped) == 0 {
		return block
	}

	total := len(wrapped) * lineHeight
	startY := region.Y + (region.Height-total)/2 + charH

	block.Lines = make([]Line, len(wrapped))
	for i, s := range wrapped {
		w, _ := ts.Measure(s)
		block.Lines[i] = Line{
			Text:  s,
			X:     CenterX(region, w),
			Y:     startY + i*lineHeight,
			Width: w,
		}
	}
	return block
}

// Caption truncates text to maxRunes characters, appending Ellipsis when
// anything was cut.
func Caption(text string, maxRunes int) string {
	if maxRunes < 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + Ellipsis
}
