package main

import (
	"fmt"
	"log"
	"time"

	"github.com/nextcore/glint/pkg/animation"
	"github.com/nextcore/glint/pkg/core"
	"github.com/nextcore/glint/pkg/graphics"
	"github.com/nextcore/glint/pkg/platform"
	"github.com/nextcore/glint/pkg/scheduler"
	"github.com/nextcore/glint/pkg/theme"
	"github.com/nextcore/glint/pkg/widgets"
)

// CounterCard owns a counter and two independent effects. A post-frame
// callback syncs the window title to the committed count and theme mode.
// A ticker, the card's periodic external resource, is acquired once when the
// card mounts and released once when it unmounts; count changes in between
// never touch it.
type CounterCard struct {
	core.StatefulBase
}

func (CounterCard) CreateState() core.State {
	return &counterCardState{}
}

type counterCardState struct {
	core.StateBase
	count       int
	uptime      time.Duration
	ticker      *animation.Ticker
	syncedTitle string
}

func (s *counterCardState) InitState() {
	s.ticker = core.UseController(s, func() *animation.Ticker {
		return animation.NewTicker(func(elapsed time.Duration) {
			seconds := elapsed.Truncate(time.Second)
			if seconds != s.uptime {
				s.SetState(func() { s.uptime = seconds })
			}
		})
	})
	s.ticker.Start()
}

func (s *counterCardState) increment() {
	s.SetState(func() { s.count++ })
}

func (s *counterCardState) Build(ctx core.BuildContext) core.Widget {
	data, _ := theme.UseTheme(ctx)

	// The title reflects the frame being committed. The callback runs after
	// paint and dedupes, so only frames where count or mode actually changed
	// touch the window title.
	title := fmt.Sprintf("Count: %d | Theme: %s", s.count, data.Mode)
	scheduler.AddPostFrameCallback(func() {
		if s.IsDisposed() || title == s.syncedTitle {
			return
		}
		s.syncedTitle = title
		platform.SetWindowTitle(title)
		log.Printf("counter: title synced to %q", title)
	})

	return widgets.Container{
		Color:   data.Surface,
		Padding: 12,
		Child: widgets.Column(
			widgets.Text{
				Content: fmt.Sprintf("Count: %d", s.count),
				Style:   graphics.TextStyle{Color: data.Text, FontSize: 18, Bold: true},
			},
			widgets.VSpace(4),
			widgets.Text{
				Content: fmt.Sprintf("Up: %ds", int(s.uptime.Seconds())),
				Style:   graphics.TextStyle{Color: data.Text, FontSize: 12},
			},
			widgets.VSpace(8),
			widgets.Button("increment", "Increment", data.Accent,
				graphics.TextStyle{Color: data.Background, FontSize: 14}, s.increment),
		),
	}
}
