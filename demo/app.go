package main

import (
	"github.com/nextcore/glint/pkg/core"
	"github.com/nextcore/glint/pkg/theme"
	"github.com/nextcore/glint/pkg/widgets"
)

// App is the application root. It gates the whole subtree on the stylesheet
// load: until the loader signals readiness nothing below the placeholder
// mounts, and after readiness the theme scope and the three demo cards mount
// in a fixed order.
type App struct {
	core.StatefulBase

	// Loader defaults to a loader for the demo stylesheet. Tests inject one
	// with a controlled fetch.
	Loader *StylesheetLoader

	// InitialMode is the theme mode the store starts in.
	InitialMode theme.Mode
}

func (a App) CreateState() core.State {
	return &appState{}
}

type appState struct {
	core.StateBase
	controller *theme.Controller
	loader     *StylesheetLoader
	ready      bool
}

func (s *appState) InitState() {
	widget := s.Element().Widget().(App)

	s.controller = core.UseController(s, func() *theme.Controller {
		return theme.NewController(widget.InitialMode)
	})
	core.UseListenable(s, s.controller)

	s.loader = widget.Loader
	if s.loader == nil {
		s.loader = NewStylesheetLoader("")
	}
	s.loader.Load(func() {
		s.SetState(func() { s.ready = true })
	})
	s.OnDispose(s.loader.Release)
}

func (s *appState) Build(ctx core.BuildContext) core.Widget {
	if !s.ready {
		return widgets.Text{Content: "Loading stylesheet..."}
	}

	data := s.controller.Data()
	return theme.Scope{
		Data:   data,
		Toggle: s.controller.Toggle,
		Child: widgets.Container{
			Color: data.Background,
			Child: widgets.Column(
				ThemeCard{},
				widgets.VSpace(12),
				CounterCard{},
				widgets.VSpace(12),
				WidthCard{},
			),
		},
	}
}
