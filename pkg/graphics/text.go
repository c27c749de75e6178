package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextStyle controls how a run of text is measured and painted.
type TextStyle struct {
	Color    Color
	FontSize float64
	Bold     bool
}

// defaultFontSize is assumed when a style leaves FontSize at zero.
const defaultFontSize = 14

// measureFace is the metrics source for text layout. The fixed 7x13 face
// gives deterministic advances, which the widget tester relies on.
var measureFace font.Face = basicfont.Face7x13

// faceSize is the nominal point size of measureFace.
const faceSize = 13

// MeasureText returns the logical size of a single-line text run in the
// given style. Sizes scale linearly from the base face metrics.
func MeasureText(text string, style TextStyle) Size {
	if text == "" {
		return Size{}
	}
	advance := font.MeasureString(measureFace, text)
	metrics := measureFace.Metrics()
	height := metrics.Ascent + metrics.Descent

	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	scale := size / faceSize

	return Size{
		Width:  fixedToFloat(advance) * scale,
		Height: fixedToFloat(height) * scale,
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
