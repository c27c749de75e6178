package core

import (
	"sync"

	"github.com/nextcore/glint/pkg/errors"
)

// ErrorWidgetBuilder produces a fallback widget for a failed build.
type ErrorWidgetBuilder func(err *errors.BuildError) Widget

var (
	errorWidgetMu      sync.RWMutex
	errorWidgetBuilder ErrorWidgetBuilder
)

// SetErrorWidgetBuilder installs a global fallback builder used when a
// widget's Build panics. Pass nil to render nothing on failure.
func SetErrorWidgetBuilder(builder ErrorWidgetBuilder) {
	errorWidgetMu.Lock()
	defer errorWidgetMu.Unlock()
	errorWidgetBuilder = builder
}

// GetErrorWidgetBuilder returns the installed fallback builder, or nil.
func GetErrorWidgetBuilder() ErrorWidgetBuilder {
	errorWidgetMu.RLock()
	defer errorWidgetMu.RUnlock()
	return errorWidgetBuilder
}
