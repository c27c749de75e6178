package main

import (
	"log"

	"github.com/nextcore/glint/pkg/core"
	"github.com/nextcore/glint/pkg/focus"
	"github.com/nextcore/glint/pkg/graphics"
	"github.com/nextcore/glint/pkg/theme"
	"github.com/nextcore/glint/pkg/widgets"
)

// ThemeCard renders the mode-keyed style variant and exposes the two theme
// actions: toggling the distributed mode, and imperatively focusing the
// card's input area through a stored focus node. The focus action is a pure
// side channel; it never schedules a rebuild, and it silently no-ops while
// the input is not mounted.
type ThemeCard struct {
	core.StatefulBase
}

func (ThemeCard) CreateState() core.State {
	return &themeCardState{}
}

type themeCardState struct {
	core.StateBase
	inputNode *focus.FocusNode
}

func (s *themeCardState) InitState() {
	s.inputNode = focus.NewFocusNode()
	s.inputNode.DebugLabel = "theme card input"
}

func (s *themeCardState) Build(ctx core.BuildContext) core.Widget {
	data, toggle := theme.UseTheme(ctx)

	buttonStyle := graphics.TextStyle{Color: data.Background, FontSize: 14}

	return widgets.Container{
		Color:   data.Surface,
		Padding: 12,
		Child: widgets.Column(
			widgets.Text{
				Content: "Theme: " + data.Mode.String(),
				Style:   graphics.TextStyle{Color: data.Text, FontSize: 18, Bold: true},
			},
			widgets.VSpace(8),
			widgets.Button("toggle-theme", "Toggle theme", data.Accent, buttonStyle, func() {
				log.Printf("theme: toggling from %s", data.Mode)
				toggle()
			}),
			widgets.VSpace(8),
			widgets.Button("focus-input", "Focus input", data.Accent, buttonStyle, func() {
				s.inputNode.RequestFocus()
			}),
			widgets.VSpace(8),
			widgets.Focusable{
				Node: s.inputNode,
				Child: widgets.Box{
					WidgetKey: "theme-input",
					Height:    28,
					Color:     data.Background,
					Child:     widgets.Text{Content: "input", Style: graphics.TextStyle{Color: data.Text, FontSize: 13}},
				},
			},
		),
	}
}
