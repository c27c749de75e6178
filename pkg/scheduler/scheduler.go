// Package scheduler owns the per-frame effect queues.
//
// Two queues exist, with a fixed relative order inside a frame:
//
//   - Layout callbacks run after the layout pass and before paint. Use them
//     to read committed geometry (element sizes, positions) and fold it back
//     into state before the user can observe the frame.
//   - Post-frame callbacks run after paint, at the end of the frame. Use
//     them for side effects that only need the frame to have committed, such
//     as syncing an external artifact.
//
// Both the engine and the widget tester drain these queues at the same
// points of their frame loop, so a layout callback scheduled alongside a
// post-frame callback always observably completes first.
package scheduler

import "sync"

var (
	mu                 sync.Mutex
	layoutCallbacks    []func()
	postFrameCallbacks []func()
)

// AddLayoutCallback schedules fn to run after the next layout pass, before
// paint. Callbacks are one-shot; schedule again to run on a later frame.
func AddLayoutCallback(fn func()) {
	if fn == nil {
		return
	}
	mu.Lock()
	layoutCallbacks = append(layoutCallbacks, fn)
	mu.Unlock()
}

// AddPostFrameCallback schedules fn to run after the next frame's paint.
// Callbacks are one-shot.
func AddPostFrameCallback(fn func()) {
	if fn == nil {
		return
	}
	mu.Lock()
	postFrameCallbacks = append(postFrameCallbacks, fn)
	mu.Unlock()
}

// FlushLayoutCallbacks runs and clears the pending layout callbacks.
// Callbacks scheduled while flushing run in the same flush, so a callback
// chain settles within one frame.
func FlushLayoutCallbacks() {
	flush(&layoutCallbacks)
}

// FlushPostFrameCallbacks runs and clears the pending post-frame callbacks.
func FlushPostFrameCallbacks() {
	flush(&postFrameCallbacks)
}

// HasLayoutCallbacks reports whether layout callbacks are pending.
func HasLayoutCallbacks() bool {
	mu.Lock()
	defer mu.Unlock()
	return len(layoutCallbacks) > 0
}

// HasPending reports whether either queue holds callbacks.
func HasPending() bool {
	mu.Lock()
	defer mu.Unlock()
	return len(layoutCallbacks) > 0 || len(postFrameCallbacks) > 0
}

// Reset drops all pending callbacks. Tests use this to isolate cases.
func Reset() {
	mu.Lock()
	layoutCallbacks = nil
	postFrameCallbacks = nil
	mu.Unlock()
}

func flush(queue *[]func()) {
	for {
		mu.Lock()
		pending := *queue
		*queue = nil
		mu.Unlock()
		if len(pending) == 0 {
			return
		}
		for _, fn := range pending {
			fn()
		}
	}
}
