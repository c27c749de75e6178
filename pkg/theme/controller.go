package theme

import (
	"github.com/sasha-s/go-deadlock"
)

// Controller is the theme store: it owns the current mode and is its single
// writer. Reads and the Toggle mutation both happen on the UI thread; the
// listener list itself is guarded because subscriptions may be registered
// from anywhere.
type Controller struct {
	mu        deadlock.Mutex
	mode      Mode
	listeners map[int]func()
	nextID    int
}

// NewController creates a controller starting in the given mode.
func NewController(initial Mode) *Controller {
	return &Controller{mode: initial}
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Data returns the shared palette for the current mode.
func (c *Controller) Data() *ThemeData {
	return DataForMode(c.Mode())
}

// Toggle flips the mode and notifies listeners. Total over the two-valued
// mode domain; N toggles from light land on light exactly when N is even.
func (c *Controller) Toggle() {
	c.mu.Lock()
	c.mode = c.mode.Toggle()
	listeners := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// AddListener subscribes to mode changes and returns an unsubscribe
// function. It satisfies core.Listenable.
func (c *Controller) AddListener(listener func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listeners == nil {
		c.listeners = make(map[int]func())
	}
	id := c.nextID
	c.nextID++
	c.listeners[id] = listener
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.listeners, id)
	}
}

// Dispose drops all listeners.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = nil
}
