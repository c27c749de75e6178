// Package theme provides the two-mode theme store and its distribution
// through the widget tree.
package theme

import "github.com/nextcore/glint/pkg/graphics"

// Mode is the two-valued display variant.
type Mode int

const (
	// ModeLight is the light display variant.
	ModeLight Mode = iota
	// ModeDark is the dark display variant.
	ModeDark
)

// Toggle returns the opposite mode. The operation is total: every mode has
// exactly one opposite.
func (m Mode) Toggle() Mode {
	if m == ModeLight {
		return ModeDark
	}
	return ModeLight
}

func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// ThemeData holds the resolved palette for one mode.
type ThemeData struct {
	Mode       Mode
	Background graphics.Color
	Surface    graphics.Color
	Text       graphics.Color
	Accent     graphics.Color
}

// Memoized per mode so Scope.UpdateShouldNotify can compare pointers and a
// re-render with an unchanged mode never notifies dependents.
var (
	lightTheme = &ThemeData{
		Mode:       ModeLight,
		Background: graphics.RGB(0xFA, 0xFA, 0xFA),
		Surface:    graphics.ColorWhite,
		Text:       graphics.RGB(0x1A, 0x1A, 0x1A),
		Accent:     graphics.RGB(0x34, 0x5B, 0xE5),
	}
	darkTheme = &ThemeData{
		Mode:       ModeDark,
		Background: graphics.RGB(0x12, 0x12, 0x12),
		Surface:    graphics.RGB(0x1E, 0x1E, 0x1E),
		Text:       graphics.RGB(0xEC, 0xEC, 0xEC),
		Accent:     graphics.RGB(0x8A, 0xB4, 0xF8),
	}
)

// LightTheme returns the shared light palette.
func LightTheme() *ThemeData { return lightTheme }

// DarkTheme returns the shared dark palette.
func DarkTheme() *ThemeData { return darkTheme }

// DataForMode returns the shared palette for the given mode.
func DataForMode(mode Mode) *ThemeData {
	if mode == ModeDark {
		return darkTheme
	}
	return lightTheme
}
