package engine

import (
	"testing"

	"github.com/nextcore/glint/pkg/core"
	"github.com/nextcore/glint/pkg/graphics"
	"github.com/nextcore/glint/pkg/scheduler"
	"github.com/nextcore/glint/pkg/widgets"
)

var testSize = graphics.Size{Width: 800, Height: 600}

func resetEngine(t *testing.T) {
	t.Helper()
	ResetForTesting()
	t.Cleanup(ResetForTesting)
}

// findText walks the mounted tree for the first Text widget's content.
func findText(root core.Element) (string, bool) {
	if text, ok := root.Widget().(widgets.Text); ok {
		return text.Content, true
	}
	var content string
	var found bool
	root.VisitChildren(func(child core.Element) bool {
		if found {
			return false
		}
		content, found = findText(child)
		return !found
	})
	return content, found
}

func TestStepFrameMountsApp(t *testing.T) {
	resetEngine(t)

	SetApp(widgets.Text{Content: "hello"})
	StepFrame(testSize)

	if app.root == nil {
		t.Fatal("expected root mounted after a frame")
	}
	if content, ok := findText(app.root); !ok || content != "hello" {
		t.Errorf("expected app widget in tree, got %q found=%v", content, ok)
	}
	if size := app.rootRender.Size(); size != testSize {
		t.Errorf("expected root laid out to window size, got %+v", size)
	}
	if NeedsFrame() {
		t.Error("expected no further work after a settled frame")
	}
}

func TestStepFrameWithoutAppShowsFallback(t *testing.T) {
	resetEngine(t)

	StepFrame(testSize)

	if content, ok := findText(app.root); !ok || content != "no app registered" {
		t.Errorf("expected fallback text, got %q found=%v", content, ok)
	}
}

func TestSetAppReplacesTree(t *testing.T) {
	resetEngine(t)

	SetApp(widgets.Text{Content: "first"})
	StepFrame(testSize)

	SetApp(widgets.Text{Content: "second"})
	if !NeedsFrame() {
		t.Fatal("expected frame requested after app swap")
	}
	StepFrame(testSize)

	if content, _ := findText(app.root); content != "second" {
		t.Errorf("expected swapped app, got %q", content)
	}
}

func TestDispatchRunsAtFrameStart(t *testing.T) {
	resetEngine(t)
	SetApp(widgets.Text{Content: "x"})
	StepFrame(testSize)

	ran := false
	Dispatch(func() { ran = true })
	if ran {
		t.Fatal("dispatch must defer to the next frame")
	}
	if !NeedsFrame() {
		t.Fatal("expected frame requested by dispatch")
	}
	StepFrame(testSize)
	if !ran {
		t.Error("expected dispatched callback to run")
	}
}

func TestRequestFrameIsOneShot(t *testing.T) {
	resetEngine(t)
	SetApp(widgets.Text{Content: "x"})
	StepFrame(testSize)

	RequestFrame()
	if !NeedsFrame() {
		t.Fatal("expected frame requested")
	}
	StepFrame(testSize)
	if NeedsFrame() {
		t.Error("expected request cleared after the frame")
	}
}

func TestFrameRunsLayoutCallbacksBeforePostFrame(t *testing.T) {
	resetEngine(t)
	SetApp(widgets.Text{Content: "x"})

	var order []string
	scheduler.AddPostFrameCallback(func() { order = append(order, "post-frame") })
	scheduler.AddLayoutCallback(func() { order = append(order, "layout") })

	StepFrame(testSize)

	if len(order) != 2 || order[0] != "layout" || order[1] != "post-frame" {
		t.Errorf("expected layout before post-frame, got %v", order)
	}
}
