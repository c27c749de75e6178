package main

import (
	"testing"

	"github.com/nextcore/glint/pkg/graphics"
	glinttest "github.com/nextcore/glint/pkg/testing"
)

// The card's container pads 12px on each side, so inside the 800px test
// window the tracked box measures 776px at full width and 388px at half.
func TestWidthCardMeasuresOnFirstFrame(t *testing.T) {
	tester := glinttest.NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(WidthCard{}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}

	if !tester.Find(glinttest.ByText("Width: full (776px)")).Exists() {
		t.Error("expected measurement committed within the first frame")
	}
}

func TestWidthToggleRemeasuresWithinSameFrame(t *testing.T) {
	tester := glinttest.NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(WidthCard{}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}

	// The tap's frame relayouts the box and folds the new width back in
	// before paint, so the stale value is never observable.
	if err := tester.Tap(glinttest.ByKey("toggle-width")); err != nil {
		t.Fatalf("tap failed: %v", err)
	}
	if !tester.Find(glinttest.ByText("Width: half (388px)")).Exists() {
		t.Error("expected half-width measurement immediately after toggle")
	}

	if err := tester.Tap(glinttest.ByKey("toggle-width")); err != nil {
		t.Fatalf("tap failed: %v", err)
	}
	if !tester.Find(glinttest.ByText("Width: full (776px)")).Exists() {
		t.Error("expected full-width measurement after toggling back")
	}
}

func TestWidthCardTracksWindowResize(t *testing.T) {
	tester := glinttest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 600, Height: 400})

	if err := tester.PumpWidget(WidthCard{}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}

	if !tester.Find(glinttest.ByText("Width: full (576px)")).Exists() {
		t.Error("expected measurement against the smaller window")
	}
}
