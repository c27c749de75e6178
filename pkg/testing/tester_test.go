package testing

import (
	"errors"
	stdtesting "testing"
	"time"

	"github.com/nextcore/glint/pkg/animation"
	"github.com/nextcore/glint/pkg/core"
	"github.com/nextcore/glint/pkg/platform"
	"github.com/nextcore/glint/pkg/scheduler"
	"github.com/nextcore/glint/pkg/widgets"
)

func TestPumpWidgetBuildsAndLaysOut(t *stdtesting.T) {
	tester := NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(widgets.Text{Content: "hello"}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}

	if !tester.Find(ByText("hello")).Exists() {
		t.Error("expected text in tree")
	}
	root := tester.RootRenderObject()
	if root == nil {
		t.Fatal("expected a root render object")
	}
	if size := root.Size(); size.Width != DefaultTestWidth || size.Height != DefaultTestHeight {
		t.Errorf("expected root laid out at %vx%v, got %+v", DefaultTestWidth, DefaultTestHeight, size)
	}
}

func TestWindowTitleRecording(t *stdtesting.T) {
	tester := NewWidgetTesterWithT(t)

	platform.SetWindowTitle("first")
	platform.SetWindowTitle("second")

	if got := tester.WindowTitle(); got != "second" {
		t.Errorf("expected latest title, got %q", got)
	}
	if titles := tester.WindowTitles(); len(titles) != 2 || titles[0] != "first" {
		t.Errorf("expected full title history, got %v", titles)
	}
}

func TestPumpFramesAdvancesClock(t *stdtesting.T) {
	tester := NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(widgets.Text{Content: "x"}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}

	start := tester.Clock().Now()
	if err := tester.PumpFrames(3, 16*time.Millisecond); err != nil {
		t.Fatalf("pump frames failed: %v", err)
	}
	if elapsed := tester.Clock().Now().Sub(start); elapsed != 48*time.Millisecond {
		t.Errorf("expected clock advanced 48ms, got %v", elapsed)
	}
}

func TestPumpAndSettleTimesOutWithActiveTicker(t *stdtesting.T) {
	tester := NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(widgets.Text{Content: "x"}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}

	ticker := animation.NewTicker(func(time.Duration) {})
	ticker.Start()
	defer ticker.Stop()

	err := tester.PumpAndSettle(100 * time.Millisecond)
	if !errors.Is(err, ErrSettleTimeout) {
		t.Errorf("expected ErrSettleTimeout, got %v", err)
	}
}

func TestPumpAndSettleReturnsWhenIdle(t *stdtesting.T) {
	tester := NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(widgets.Text{Content: "idle"}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Errorf("expected settle on an idle tree, got %v", err)
	}
}

func TestPumpRunsLayoutCallbacksBeforePostFrame(t *stdtesting.T) {
	tester := NewWidgetTesterWithT(t)

	var order []string
	scheduler.AddPostFrameCallback(func() { order = append(order, "post-frame") })
	scheduler.AddLayoutCallback(func() { order = append(order, "layout") })

	if err := tester.PumpWidget(widgets.Text{Content: "x"}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}

	if len(order) != 2 || order[0] != "layout" || order[1] != "post-frame" {
		t.Errorf("expected layout before post-frame, got %v", order)
	}
}

func TestDispatchRunsOnNextPump(t *stdtesting.T) {
	tester := NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(widgets.Text{Content: "x"}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}

	ran := false
	tester.Dispatch(func() { ran = true })
	if ran {
		t.Fatal("dispatch must not run inline")
	}
	if err := tester.Pump(); err != nil {
		t.Fatalf("pump failed: %v", err)
	}
	if !ran {
		t.Error("expected dispatched callback to run during pump")
	}
}

func TestTapReportsMissingTarget(t *stdtesting.T) {
	tester := NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(widgets.Text{Content: "x"}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}
	if err := tester.Tap(ByKey("missing")); err == nil {
		t.Error("expected error tapping a missing widget")
	}
}

func TestFindersLocateWidgets(t *stdtesting.T) {
	tester := NewWidgetTesterWithT(t)

	err := tester.PumpWidget(widgets.Column(
		widgets.Text{Content: "alpha"},
		widgets.Text{Content: "beta"},
		widgets.SizedBox{Width: 10, Height: 10},
	))
	if err != nil {
		t.Fatalf("pump failed: %v", err)
	}

	if got := tester.Find(ByType[widgets.Text]()).Count(); got != 2 {
		t.Errorf("expected 2 texts, got %d", got)
	}
	if !tester.Find(ByTextContaining("lph")).Exists() {
		t.Error("expected substring finder to match alpha")
	}
	if tester.Find(ByText("gamma")).Exists() {
		t.Error("expected no match for absent text")
	}
	boxes := tester.Find(ByPredicate(func(e core.Element) bool {
		_, ok := e.Widget().(widgets.SizedBox)
		return ok
	}))
	if boxes.Count() != 1 {
		t.Errorf("expected predicate to match 1 sized box, got %d", boxes.Count())
	}
}
