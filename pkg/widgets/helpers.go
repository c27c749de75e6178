package widgets

import (
	"github.com/nextcore/glint/pkg/core"
	"github.com/nextcore/glint/pkg/graphics"
)

// VSpace returns vertical whitespace of the given height.
func VSpace(height float64) core.Widget {
	return SizedBox{Height: height}
}

// HSpace returns horizontal whitespace of the given width.
func HSpace(width float64) core.Widget {
	return SizedBox{Width: width}
}

// Button is a convenience composition of Tappable, Container, and Text.
// The demo apps build their controls with it; anything fancier should
// compose the pieces directly.
func Button(key any, label string, background graphics.Color, style graphics.TextStyle, onTap func()) core.Widget {
	return Tappable{
		WidgetKey: key,
		OnTap:     onTap,
		Child: Container{
			Color:   background,
			Padding: 8,
			Child:   Text{Content: label, Style: style},
		},
	}
}
