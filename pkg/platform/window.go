package platform

import (
	"log"
	"sync"
)

// WindowDelegate receives window-level host requests.
type WindowDelegate interface {
	// SetTitle replaces the host window (or browser tab) title.
	SetTitle(title string)
}

// logWindowDelegate logs title changes when no host is attached.
type logWindowDelegate struct{}

func (logWindowDelegate) SetTitle(title string) {
	log.Printf("window title: %s", title)
}

var (
	windowMu       sync.RWMutex
	windowDelegate WindowDelegate = logWindowDelegate{}
)

// SetWindowDelegate installs the host window delegate. Pass nil to restore
// the logging default. Returns the previous delegate so tests can restore it.
func SetWindowDelegate(d WindowDelegate) WindowDelegate {
	windowMu.Lock()
	defer windowMu.Unlock()
	prev := windowDelegate
	if d == nil {
		windowDelegate = logWindowDelegate{}
	} else {
		windowDelegate = d
	}
	return prev
}

// SetWindowTitle routes a title change to the registered delegate.
func SetWindowTitle(title string) {
	windowMu.RLock()
	d := windowDelegate
	windowMu.RUnlock()
	d.SetTitle(title)
}
