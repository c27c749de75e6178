package layout

import (
	"testing"

	"github.com/nextcore/glint/pkg/graphics"
)

func TestTightConstraints(t *testing.T) {
	c := Tight(graphics.Size{Width: 800, Height: 600})
	if !c.IsTight() {
		t.Error("Tight constraints must be tight")
	}
	got := c.Constrain(graphics.Size{Width: 10, Height: 2000})
	want := graphics.Size{Width: 800, Height: 600}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLooseConstraints(t *testing.T) {
	c := Loose(graphics.Size{Width: 100, Height: 50})
	if c.IsTight() {
		t.Error("Loose constraints must not be tight")
	}

	tests := []struct {
		in   graphics.Size
		want graphics.Size
	}{
		{graphics.Size{Width: 60, Height: 20}, graphics.Size{Width: 60, Height: 20}},
		{graphics.Size{Width: 200, Height: 20}, graphics.Size{Width: 100, Height: 20}},
		{graphics.Size{}, graphics.Size{}},
	}
	for _, tt := range tests {
		if got := c.Constrain(tt.in); got != tt.want {
			t.Errorf("Constrain(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestDeflate(t *testing.T) {
	c := Constraints{MinWidth: 10, MaxWidth: 100, MinHeight: 5, MaxHeight: 50}

	d := c.Deflate(20, 10)
	if d.MaxWidth != 80 || d.MaxHeight != 40 {
		t.Errorf("expected max 80x40, got %vx%v", d.MaxWidth, d.MaxHeight)
	}

	// Deflating past the minimum floors at the minimum.
	d = c.Deflate(1000, 1000)
	if d.MaxWidth != c.MinWidth || d.MaxHeight != c.MinHeight {
		t.Errorf("expected floor at minimums, got %vx%v", d.MaxWidth, d.MaxHeight)
	}
}
