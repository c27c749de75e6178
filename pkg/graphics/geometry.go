// Package graphics provides the geometry and color primitives shared by the
// layout and widget packages.
package graphics

// Size is a width/height pair in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Offset is a 2D translation in logical pixels.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectFromOffsetSize builds a rect from an origin and a size.
func RectFromOffsetSize(origin Offset, size Size) Rect {
	return Rect{
		Left:   origin.X,
		Top:    origin.Y,
		Right:  origin.X + size.Width,
		Bottom: origin.Y + size.Height,
	}
}

// Width returns the horizontal extent of the rect.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of the rect.
func (r Rect) Height() float64 { return r.Bottom - r.Top }
