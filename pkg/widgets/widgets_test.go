package widgets_test

import (
	"testing"

	"github.com/nextcore/glint/pkg/focus"
	"github.com/nextcore/glint/pkg/graphics"
	"github.com/nextcore/glint/pkg/layout"
	glinttest "github.com/nextcore/glint/pkg/testing"
	"github.com/nextcore/glint/pkg/widgets"
)

func TestTextMeasuresContent(t *testing.T) {
	tester := glinttest.NewWidgetTesterWithT(t)

	err := tester.PumpWidget(widgets.Column(
		widgets.Text{Content: "hi"},
		widgets.Text{Content: "a much longer line"},
	))
	if err != nil {
		t.Fatalf("pump failed: %v", err)
	}

	short := tester.Find(glinttest.ByText("hi")).RenderObject().Size()
	long := tester.Find(glinttest.ByText("a much longer line")).RenderObject().Size()

	if short.Width <= 0 || short.Height <= 0 {
		t.Errorf("expected non-zero text size, got %+v", short)
	}
	if long.Width <= short.Width {
		t.Errorf("expected longer content to measure wider: %v vs %v", long.Width, short.Width)
	}
}

func TestColumnStacksChildrenVertically(t *testing.T) {
	tester := glinttest.NewWidgetTesterWithT(t)

	// The outer column gives the inner one loose constraints so its size
	// reflects its children rather than the window.
	err := tester.PumpWidget(widgets.Column(
		widgets.Column(
			widgets.SizedBox{Width: 50, Height: 10},
			widgets.SizedBox{Width: 80, Height: 20},
		),
	))
	if err != nil {
		t.Fatalf("pump failed: %v", err)
	}

	flexes := tester.Find(glinttest.ByType[widgets.Flex]()).All()
	if len(flexes) != 2 {
		t.Fatalf("expected 2 flex elements, got %d", len(flexes))
	}
	inner := flexes[1].(interface{ RenderObject() layout.RenderObject }).RenderObject()
	if size := inner.Size(); size.Width != 80 || size.Height != 30 {
		t.Errorf("expected inner column 80x30, got %+v", size)
	}

	boxes := tester.Find(glinttest.ByType[widgets.SizedBox]()).All()
	if len(boxes) != 2 {
		t.Fatalf("expected 2 sized boxes, got %d", len(boxes))
	}
	wantY := []float64{0, 10}
	for i, box := range boxes {
		ro := box.(interface{ RenderObject() layout.RenderObject }).RenderObject()
		data, ok := ro.ParentData().(*layout.BoxParentData)
		if !ok {
			t.Fatalf("child %d: expected BoxParentData, got %T", i, ro.ParentData())
		}
		if data.Offset.Y != wantY[i] {
			t.Errorf("child %d: expected y offset %v, got %v", i, wantY[i], data.Offset.Y)
		}
	}
}

func TestBoxWidthFactor(t *testing.T) {
	tests := []struct {
		name      string
		factor    float64
		wantWidth float64
	}{
		{"full width", 1.0, 800},
		{"half width", 0.5, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := glinttest.NewWidgetTesterWithT(t)
			handle := widgets.NewBoxHandle()

			err := tester.PumpWidget(widgets.Column(widgets.Box{
				Handle:      handle,
				WidthFactor: tt.factor,
				Height:      20,
				Color:       graphics.ARGB(255, 10, 20, 30),
			}))
			if err != nil {
				t.Fatalf("pump failed: %v", err)
			}

			size, ok := handle.Size()
			if !ok {
				t.Fatal("expected a measurement after layout")
			}
			if size.Width != tt.wantWidth || size.Height != 20 {
				t.Errorf("expected %vx20, got %+v", tt.wantWidth, size)
			}
		})
	}
}

func TestBoxHandleLifecycle(t *testing.T) {
	tester := glinttest.NewWidgetTesterWithT(t)
	handle := widgets.NewBoxHandle()

	if _, ok := handle.Size(); ok {
		t.Error("unattached handle must not report a size")
	}

	if err := tester.PumpWidget(widgets.Column(widgets.Box{
		Handle: handle,
		Width:  120,
		Height: 40,
	})); err != nil {
		t.Fatalf("pump failed: %v", err)
	}
	if !handle.Attached() {
		t.Fatal("expected handle attached after mount")
	}
	if size, ok := handle.Size(); !ok || size.Width != 120 {
		t.Errorf("expected 120 wide, got %+v ok=%v", size, ok)
	}

	// Replacing the subtree unmounts the box and releases the handle.
	if err := tester.PumpWidget(widgets.Text{Content: "gone"}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}
	if handle.Attached() {
		t.Error("expected handle detached after unmount")
	}
	if _, ok := handle.Size(); ok {
		t.Error("detached handle must not report a stale size")
	}
}

func TestTappableInvokesCallback(t *testing.T) {
	tester := glinttest.NewWidgetTesterWithT(t)

	taps := 0
	err := tester.PumpWidget(widgets.Tappable{
		WidgetKey: "btn",
		OnTap:     func() { taps++ },
		Child:     widgets.Text{Content: "press"},
	})
	if err != nil {
		t.Fatalf("pump failed: %v", err)
	}

	for i := 1; i <= 2; i++ {
		if err := tester.Tap(glinttest.ByKey("btn")); err != nil {
			t.Fatalf("tap %d failed: %v", i, err)
		}
		if taps != i {
			t.Errorf("expected %d taps, got %d", i, taps)
		}
	}
}

func TestButtonTapRunsHandler(t *testing.T) {
	tester := glinttest.NewWidgetTesterWithT(t)

	pressed := false
	err := tester.PumpWidget(widgets.Button(
		"ok", "OK",
		graphics.ARGB(255, 200, 200, 200),
		graphics.TextStyle{},
		func() { pressed = true },
	))
	if err != nil {
		t.Fatalf("pump failed: %v", err)
	}

	if !tester.Find(glinttest.ByText("OK")).Exists() {
		t.Fatal("expected button label in tree")
	}
	if err := tester.Tap(glinttest.ByKey("ok")); err != nil {
		t.Fatalf("tap failed: %v", err)
	}
	if !pressed {
		t.Error("expected handler to run")
	}
}

func TestFocusableAttachesNodeForLifetime(t *testing.T) {
	tester := glinttest.NewWidgetTesterWithT(t)
	node := focus.NewFocusNode()

	node.RequestFocus()
	if node.HasPrimaryFocus() {
		t.Fatal("detached node must ignore focus requests")
	}

	err := tester.PumpWidget(widgets.Focusable{
		Node:  node,
		Child: widgets.Text{Content: "field"},
	})
	if err != nil {
		t.Fatalf("pump failed: %v", err)
	}
	if !node.IsAttached() {
		t.Fatal("expected node attached while mounted")
	}

	node.RequestFocus()
	if !node.HasPrimaryFocus() {
		t.Error("expected node to take focus once attached")
	}

	if err := tester.PumpWidget(widgets.Text{Content: "other"}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}
	if node.IsAttached() {
		t.Error("expected node detached after unmount")
	}
	if node.HasPrimaryFocus() {
		t.Error("expected focus released after unmount")
	}
}
