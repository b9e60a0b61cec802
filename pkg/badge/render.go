package badge

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	svgNamespace = "http://www.w3.org/2000/svg"
	fontStack    = "Segoe UI, Helvetica Neue, Helvetica, Arial, Verdana"
	fontSize     = 12
	// the title cell is one unit wider than its text
	titlePadding = 1.0
	baselineY    = 14.0
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Render lays out the badge using the given measurer and returns the
// svg document. The canvas is exactly as wide as the two cells
// combined and as high as the tallest of the two texts.
func Render(b Badge, measurer TextMeasurer) string {

	titleWidth, titleHeight := measurer.Measure(b.Title)
	valueWidth, valueHeight := measurer.Measure(b.Value)

	paddedTitleWidth := titleWidth + titlePadding
	width := paddedTitleWidth + valueWidth
	height := math.Max(titleHeight, valueHeight)
	titleX := paddedTitleWidth / 2.0
	valueX := paddedTitleWidth + valueWidth/2.0

	var sb strings.Builder

	fmt.Fprintf(&sb, `<svg xmlns=%q width=%q height=%q>`, svgNamespace, f1(width), f1(height))
	if b.ToolTip != "" {
		fmt.Fprintf(&sb, `<title>%v</title>`, xmlEscaper.Replace(b.ToolTip))
	}
	if b.Link != "" {
		fmt.Fprintf(&sb, `<a href=%q>`, xmlEscaper.Replace(b.Link))
	}

	writeRect(&sb, 0, paddedTitleWidth, height, b.TitleBackground)
	writeRect(&sb, paddedTitleWidth, valueWidth, height, b.ValueBackground)

	fmt.Fprintf(&sb, `<g fill="#fff" text-anchor="middle" font-family=%q font-size="%v">`, fontStack, fontSize)
	writeText(&sb, titleX, baselineY, b.Title, b.TitleColor)
	writeText(&sb, valueX, baselineY, b.Value, b.ValueColor)
	sb.WriteString(`</g>`)

	if b.Link != "" {
		sb.WriteString(`</a>`)
	}
	sb.WriteString(`</svg>`)

	return sb.String()
}

func writeRect(sb *strings.Builder, x, width, height float64, fill string) {
	if x > 0 {
		fmt.Fprintf(sb, `<rect x=%q width=%q height=%q fill=%q/>`, f1(x), f1(width), f1(height), xmlEscaper.Replace(fill))
		return
	}
	fmt.Fprintf(sb, `<rect width=%q height=%q fill=%q/>`, f1(width), f1(height), xmlEscaper.Replace(fill))
}

func writeText(sb *strings.Builder, x, y float64, text, fill string) {
	fmt.Fprintf(sb, `<text x=%q y=%q fill=%q>%v</text>`, f1(x), f1(y), xmlEscaper.Replace(fill), xmlEscaper.Replace(text))
}

// f1 formats svg coordinates with a single fraction digit and an
// invariant decimal separator.
func f1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
