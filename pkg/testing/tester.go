// Package testing provides the widget tester: an isolated harness that
// drives the same frame phases as the engine against a fake clock.
package testing

import (
	"errors"
	"fmt"
	"sync"
	stdtesting "testing"
	"time"

	"github.com/nextcore/glint/pkg/animation"
	"github.com/nextcore/glint/pkg/core"
	"github.com/nextcore/glint/pkg/graphics"
	"github.com/nextcore/glint/pkg/layout"
	"github.com/nextcore/glint/pkg/platform"
	"github.com/nextcore/glint/pkg/scheduler"
	"github.com/nextcore/glint/pkg/theme"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: framework did not settle")

// WidgetTester provides isolated widget testing without a host window.
// It drives the same build, layout, callback, and paint phases as the
// engine but uses a fake clock and records window titles in memory.
type WidgetTester struct {
	buildOwner   *core.BuildOwner
	root         core.Element
	rootRender   layout.RenderObject
	clock        *FakeClock
	prevClock    animation.Clock
	prevDelegate platform.WindowDelegate
	size         graphics.Size
	themeData    *theme.ThemeData
	themeToggle  func()
	dispatchMu   sync.Mutex
	dispatches   []func()
	titles       []string
}

// NewWidgetTester creates a tester with the default test environment.
// Call Cleanup when done, or use NewWidgetTesterWithT instead.
func NewWidgetTester() *WidgetTester {
	clk := NewFakeClock()
	t := &WidgetTester{
		buildOwner: core.NewBuildOwner(),
		clock:      clk,
		size:       graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		themeData:  theme.LightTheme(),
	}
	t.prevClock = animation.SetClock(clk)
	t.prevDelegate = platform.SetWindowDelegate(t)
	scheduler.Reset()
	platform.RegisterDispatch(t.Dispatch)
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup.
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *stdtesting.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree and restores global state (clock, window
// delegate, effect queues). Must be called if not using NewWidgetTesterWithT.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
		t.rootRender = nil
	}
	animation.SetClock(t.prevClock)
	platform.SetWindowDelegate(t.prevDelegate)
	scheduler.Reset()
}

// SetSize sets the logical surface size. Must be called before PumpWidget.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.size = size
}

// SetThemeData replaces the theme the tester wraps pumped widgets in.
// Must be called before PumpWidget. Pass nil to pump without a theme scope.
func (t *WidgetTester) SetThemeData(data *theme.ThemeData) {
	t.themeData = data
}

// SetThemeToggle sets the toggle callback exposed through the tester's
// theme scope.
func (t *WidgetTester) SetThemeToggle(toggle func()) {
	t.themeToggle = toggle
}

// Clock returns the fake clock for advancing time in tests.
func (t *WidgetTester) Clock() *FakeClock {
	return t.clock
}

// SetTitle records a window title change. Implements platform.WindowDelegate.
func (t *WidgetTester) SetTitle(title string) {
	t.titles = append(t.titles, title)
}

// WindowTitle returns the most recent window title, or "" if none was set.
func (t *WidgetTester) WindowTitle() string {
	if len(t.titles) == 0 {
		return ""
	}
	return t.titles[len(t.titles)-1]
}

// WindowTitles returns every title set since the tester was created.
func (t *WidgetTester) WindowTitles() []string {
	return t.titles
}

// PumpWidget mounts (or remounts) a widget and runs one full frame.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
		t.rootRender = nil
	}

	wrapped := widget
	if t.themeData != nil {
		wrapped = theme.Scope{
			Data:   t.themeData,
			Toggle: t.themeToggle,
			Child:  widget,
		}
	}

	t.root = core.MountRoot(wrapped, t.buildOwner)
	if provider, ok := t.root.(interface{ RenderObject() layout.RenderObject }); ok {
		t.rootRender = provider.RenderObject()
	}
	if t.rootRender != nil {
		pipeline := t.buildOwner.Pipeline()
		pipeline.ScheduleLayout(t.rootRender)
		pipeline.SchedulePaint(t.rootRender)
	}

	return t.Pump()
}

// Pump runs a single frame cycle with the same phase order as the engine:
// dispatches, tickers, build, layout, layout callbacks, paint, post-frame
// callbacks.
func (t *WidgetTester) Pump() error {
	t.dispatchMu.Lock()
	dispatches := t.dispatches
	t.dispatches = nil
	t.dispatchMu.Unlock()
	for _, fn := range dispatches {
		fn()
	}

	animation.StepTickers()

	t.buildOwner.FlushBuild()

	if t.rootRender == nil {
		if provider, ok := t.root.(interface{ RenderObject() layout.RenderObject }); ok {
			t.rootRender = provider.RenderObject()
		}
	}
	if t.rootRender != nil {
		pipeline := t.buildOwner.Pipeline()
		constraints := layout.Tight(t.size)
		pipeline.FlushLayoutForRoot(t.rootRender, constraints)
		for scheduler.HasLayoutCallbacks() {
			scheduler.FlushLayoutCallbacks()
			t.buildOwner.FlushBuild()
			pipeline.FlushLayoutForRoot(t.rootRender, constraints)
		}

		pipeline.FlushPaint()
	}

	scheduler.FlushPostFrameCallbacks()
	return nil
}

// PumpFrames runs count frames, advancing the fake clock by interval before
// each one. Use this to drive periodic tickers deterministically.
func (t *WidgetTester) PumpFrames(count int, interval time.Duration) error {
	for i := 0; i < count; i++ {
		t.clock.Advance(interval)
		if err := t.Pump(); err != nil {
			return err
		}
	}
	return nil
}

// PumpAndSettle runs frames until the framework is idle or the timeout is
// reached. Each frame advances the fake clock by 16ms. A widget with an
// always-active ticker never settles; drive it with PumpFrames instead.
func (t *WidgetTester) PumpAndSettle(timeout time.Duration) error {
	const frameDuration = 16 * time.Millisecond
	var elapsed time.Duration
	for elapsed < timeout {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.needsWork() {
			return nil
		}
		t.clock.Advance(frameDuration)
		elapsed += frameDuration
	}
	return ErrSettleTimeout
}

func (t *WidgetTester) needsWork() bool {
	t.dispatchMu.Lock()
	pending := len(t.dispatches) > 0
	t.dispatchMu.Unlock()
	return pending ||
		t.buildOwner.NeedsWork() ||
		animation.HasActiveTickers() ||
		scheduler.HasPending()
}

// Dispatch queues a callback for the next frame, mirroring engine.Dispatch.
// Safe to call from any goroutine.
func (t *WidgetTester) Dispatch(fn func()) {
	t.dispatchMu.Lock()
	t.dispatches = append(t.dispatches, fn)
	t.dispatchMu.Unlock()
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// RootRenderObject returns the root render object of the mounted tree.
func (t *WidgetTester) RootRenderObject() layout.RenderObject {
	return t.rootRender
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}

// Tap invokes the tap handler of the first element matched by finder, then
// pumps a frame so resulting state changes take effect.
func (t *WidgetTester) Tap(finder Finder) error {
	result := t.Find(finder)
	element := result.FirstOrNil()
	if element == nil {
		return fmt.Errorf("tap: no element matches %s", finder.Description())
	}
	render := extractRenderObject(element)
	handler, ok := render.(interface{ HandleTap() })
	if !ok {
		return fmt.Errorf("tap: %s is not tappable", finder.Description())
	}
	handler.HandleTap()
	return t.Pump()
}

// extractRenderObject walks from an element to find its render object.
func extractRenderObject(e core.Element) layout.RenderObject {
	if e == nil {
		return nil
	}
	if provider, ok := e.(interface{ RenderObject() layout.RenderObject }); ok {
		return provider.RenderObject()
	}
	return nil
}
