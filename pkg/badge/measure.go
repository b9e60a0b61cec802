package badge

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// TextMeasurer measures rendered text in svg user units.
type TextMeasurer interface {
	Measure(text string) (width, height float64)
}

const (
	// advanceRatio approximates the average advance of a proportional
	// glyph relative to the font size
	advanceRatio = 0.6
	// horizontal padding on each side of a cell, vertical padding above
	// and below the text
	horizontalPadding = 5.0
	verticalPadding   = 9.0
)

// NewFontMeasurer returns a TextMeasurer estimating the dimensions text
// takes up when rendered with the given font family at the given pixel
// size. Widths derive from east-asian-aware rune cell counts, so
// double-width characters get twice the advance of latin ones.
func NewFontMeasurer(fontFamily string, fontSize float64) TextMeasurer {
	return &fontMeasurer{
		fontFamily: fontFamily,
		fontSize:   fontSize,
	}
}

type fontMeasurer struct {
	fontFamily string
	fontSize   float64
}

func (m *fontMeasurer) Measure(text string) (width, height float64) {
	cells := runewidth.StringWidth(text)

	width = math.Round(float64(cells)*m.fontSize*advanceRatio) + 2*horizontalPadding
	height = m.fontSize + verticalPadding

	return
}
