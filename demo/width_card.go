package main

import (
	"fmt"
	"log"

	"github.com/nextcore/glint/pkg/core"
	"github.com/nextcore/glint/pkg/graphics"
	"github.com/nextcore/glint/pkg/scheduler"
	"github.com/nextcore/glint/pkg/theme"
	"github.com/nextcore/glint/pkg/widgets"
)

// WidthMode selects how wide the tracked box renders.
type WidthMode int

const (
	// WidthFull sizes the tracked box to the container width.
	WidthFull WidthMode = iota
	// WidthHalf sizes it to half the container width.
	WidthHalf
)

func (m WidthMode) String() string {
	if m == WidthHalf {
		return "half"
	}
	return "full"
}

func (m WidthMode) toggle() WidthMode {
	if m == WidthFull {
		return WidthHalf
	}
	return WidthFull
}

func (m WidthMode) factor() float64 {
	if m == WidthHalf {
		return 0.5
	}
	return 1.0
}

// WidthCard toggles the tracked box between full and half width and
// displays the box's measured pixel width. The measurement runs in a layout
// callback, after the commit's layout pass and before its paint, so the
// shown value is never one frame stale. The measured value is derived state
// only; the box width itself is always driven by the mode.
type WidthCard struct {
	core.StatefulBase
}

func (WidthCard) CreateState() core.State {
	return &widthCardState{}
}

type widthCardState struct {
	core.StateBase
	mode     WidthMode
	measured *core.Managed[float64]
	handle   *widgets.BoxHandle
}

func (s *widthCardState) InitState() {
	s.measured = core.NewManaged(s, 0.0)
	s.handle = widgets.NewBoxHandle()
}

func (s *widthCardState) toggleWidth() {
	s.SetState(func() { s.mode = s.mode.toggle() })
}

// measure folds the box's committed width back into state. Scheduled on
// every build because any commit could have resized the box; it only
// stores on an actual change, so the frame settles.
func (s *widthCardState) measure() {
	size, ok := s.handle.Size()
	if !ok {
		// Not mounted yet; nothing to read.
		return
	}
	if size.Width == s.measured.Value() {
		return
	}
	log.Printf("width: measured %.0fpx (%s)", size.Width, s.mode)
	s.measured.Set(size.Width)
}

func (s *widthCardState) Build(ctx core.BuildContext) core.Widget {
	data, _ := theme.UseTheme(ctx)

	scheduler.AddLayoutCallback(func() {
		if s.IsDisposed() {
			return
		}
		s.measure()
	})

	return widgets.Container{
		Color:   data.Surface,
		Padding: 12,
		Child: widgets.Column(
			widgets.Text{
				Content: fmt.Sprintf("Width: %s (%.0fpx)", s.mode, s.measured.Value()),
				Style:   graphics.TextStyle{Color: data.Text, FontSize: 18, Bold: true},
			},
			widgets.VSpace(8),
			widgets.Button("toggle-width", "Toggle width", data.Accent,
				graphics.TextStyle{Color: data.Background, FontSize: 14}, s.toggleWidth),
			widgets.VSpace(8),
			widgets.Box{
				WidgetKey:   "tracked-box",
				Handle:      s.handle,
				WidthFactor: s.mode.factor(),
				Height:      20,
				Color:       data.Accent,
			},
		),
	}
}
