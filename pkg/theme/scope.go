package theme

import (
	"reflect"

	"github.com/nextcore/glint/pkg/core"
)

// Scope distributes the current theme and its toggle operation to any
// descendant that asks for them, without explicit parameter threading.
// Descendants that never call Of or UseTheme are not rebuilt on mode
// changes.
type Scope struct {
	core.InheritedBase
	Data   *ThemeData
	Toggle func()
	Child  core.Widget
}

// ChildWidget returns the subtree below the scope.
func (s Scope) ChildWidget() core.Widget { return s.Child }

// UpdateShouldNotify reports whether dependents must rebuild. Palettes are
// memoized per mode, so a pointer comparison is exact.
func (s Scope) UpdateShouldNotify(old core.InheritedWidget) bool {
	prev, ok := old.(Scope)
	if !ok {
		return true
	}
	return s.Data != prev.Data
}

var scopeType = reflect.TypeOf(Scope{})

// Of returns the nearest distributed ThemeData and registers the calling
// context as a dependent. Falls back to the light palette when no Scope is
// above the context.
func Of(ctx core.BuildContext) *ThemeData {
	inherited := ctx.DependOnInherited(scopeType)
	if scope, ok := inherited.(Scope); ok && scope.Data != nil {
		return scope.Data
	}
	return LightTheme()
}

// UseTheme returns the distributed theme data together with the toggle
// operation. The toggle is a no-op func when no Scope is present.
func UseTheme(ctx core.BuildContext) (*ThemeData, func()) {
	inherited := ctx.DependOnInherited(scopeType)
	if scope, ok := inherited.(Scope); ok && scope.Data != nil {
		toggle := scope.Toggle
		if toggle == nil {
			toggle = func() {}
		}
		return scope.Data, toggle
	}
	return LightTheme(), func() {}
}
