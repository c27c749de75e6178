// Package engine drives the frame pipeline: dispatched callbacks, ticker
// steps, widget builds, layout, layout-synchronous callbacks, paint, and
// post-frame callbacks, in that order.
package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nextcore/glint/pkg/animation"
	"github.com/nextcore/glint/pkg/core"
	"github.com/nextcore/glint/pkg/errors"
	"github.com/nextcore/glint/pkg/graphics"
	"github.com/nextcore/glint/pkg/layout"
	"github.com/nextcore/glint/pkg/platform"
	"github.com/nextcore/glint/pkg/scheduler"
	"github.com/nextcore/glint/pkg/widgets"
)

// frameInterval paces the run loop at roughly 60 frames per second.
const frameInterval = 16 * time.Millisecond

// frameLock protects shared UI state across the engine package.
var frameLock sync.Mutex

var app = newAppRunner()

// RequestFrame marks the application as needing another frame.
// Safe to call from any goroutine.
func RequestFrame() {
	app.pendingFrameRequest.Store(true)
}

// NeedsFrame reports whether another frame should be processed.
func NeedsFrame() bool {
	if !frameLock.TryLock() {
		// A frame is being processed right now; keep the loop alive.
		return true
	}
	defer frameLock.Unlock()
	return app.needsFrameLocked()
}

// Dispatch schedules a callback to run on the UI thread at the start of the
// next frame. Safe to call from any goroutine. This is the only supported
// way to mutate widget state from background work.
func Dispatch(callback func()) {
	app.dispatch(callback)
}

// SetApp configures the root widget for the application.
func SetApp(root core.Widget) {
	app.setUserApp(root)
}

// StepFrame processes one frame at the given window size.
func StepFrame(size graphics.Size) {
	frameLock.Lock()
	defer frameLock.Unlock()
	app.stepFrameLocked(size)
}

// Run processes frames until the context is canceled. Frames are paced at
// the display interval and skipped entirely when nothing needs work.
func Run(ctx context.Context, size graphics.Size) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if NeedsFrame() {
				StepFrame(size)
			}
		}
	}
}

// ResetForTesting unmounts the current tree and clears all pending work.
func ResetForTesting() {
	frameLock.Lock()
	defer frameLock.Unlock()
	if app.root != nil {
		app.root.Unmount()
	}
	app = newAppRunner()
	app.buildOwner.OnNeedsFrame = RequestFrame
	scheduler.Reset()
}

type appRunner struct {
	buildOwner          *core.BuildOwner
	root                core.Element
	rootRender          layout.RenderObject
	userApp             core.Widget
	dispatchMu          sync.Mutex
	dispatchQueue       []func()
	pendingFrameRequest atomic.Bool
}

func init() {
	platform.RegisterDispatch(Dispatch)
	app.buildOwner.OnNeedsFrame = RequestFrame
}

func newAppRunner() *appRunner {
	return &appRunner{buildOwner: core.NewBuildOwner()}
}

func (a *appRunner) setUserApp(root core.Widget) {
	frameLock.Lock()
	defer frameLock.Unlock()
	a.userApp = root
	if a.root != nil {
		a.root.MarkNeedsBuild()
	}
	a.pendingFrameRequest.Store(true)
}

func (a *appRunner) dispatch(callback func()) {
	if callback == nil {
		return
	}
	a.dispatchMu.Lock()
	a.dispatchQueue = append(a.dispatchQueue, callback)
	a.dispatchMu.Unlock()
	RequestFrame()
}

func (a *appRunner) drainDispatchQueue() []func() {
	a.dispatchMu.Lock()
	callbacks := a.dispatchQueue
	a.dispatchQueue = nil
	a.dispatchMu.Unlock()
	return callbacks
}

func (a *appRunner) needsFrameLocked() bool {
	if a.root == nil {
		return true
	}
	a.dispatchMu.Lock()
	hasCallbacks := len(a.dispatchQueue) > 0
	a.dispatchMu.Unlock()
	if hasCallbacks {
		return true
	}
	if a.pendingFrameRequest.Load() {
		return true
	}
	if animation.HasActiveTickers() {
		return true
	}
	if scheduler.HasPending() {
		return true
	}
	return a.buildOwner.NeedsWork()
}

// stepFrameLocked runs the pipeline phases for one frame. The ordering is a
// contract: layout callbacks observe fresh geometry before anything paints,
// and post-frame callbacks observe a fully painted frame.
func (a *appRunner) stepFrameLocked(size graphics.Size) {
	defer errors.Recover("engine.StepFrame")

	a.pendingFrameRequest.Store(false)

	// Dispatch
	for _, callback := range a.drainDispatchQueue() {
		callback()
	}

	// Animate
	animation.StepTickers()

	// Mount root
	if a.root == nil {
		a.root = core.MountRoot(rootShell{runner: a}, a.buildOwner)
		if provider, ok := a.root.(interface{ RenderObject() layout.RenderObject }); ok {
			a.rootRender = provider.RenderObject()
		}
		if a.rootRender != nil {
			pipeline := a.buildOwner.Pipeline()
			pipeline.ScheduleLayout(a.rootRender)
			pipeline.SchedulePaint(a.rootRender)
		}
	}

	// Build
	a.buildOwner.FlushBuild()

	if a.rootRender == nil {
		if provider, ok := a.root.(interface{ RenderObject() layout.RenderObject }); ok {
			a.rootRender = provider.RenderObject()
		}
		if a.rootRender == nil {
			return
		}
	}

	pipeline := a.buildOwner.Pipeline()

	// Layout, then layout-synchronous callbacks before paint. Callbacks may
	// dirty the tree again, so build and layout re-flush until stable.
	pipeline.FlushLayoutForRoot(a.rootRender, layout.Tight(size))
	for scheduler.HasLayoutCallbacks() {
		scheduler.FlushLayoutCallbacks()
		a.buildOwner.FlushBuild()
		pipeline.FlushLayoutForRoot(a.rootRender, layout.Tight(size))
	}

	// Paint
	pipeline.FlushPaint()

	// Post-frame callbacks observe the painted frame. New frame work they
	// schedule lands in the next frame.
	scheduler.FlushPostFrameCallbacks()
}

// rootShell is the synthetic widget mounted above the user's app.
type rootShell struct {
	core.StatelessBase
	runner *appRunner
}

func (r rootShell) Build(ctx core.BuildContext) core.Widget {
	if r.runner == nil || r.runner.userApp == nil {
		return widgets.Text{Content: "no app registered"}
	}
	return r.runner.userApp
}
