// Package core provides the widget and element framework.
package core

import "reflect"

// Widget is the immutable configuration for a piece of UI.
type Widget interface {
	// CreateElement instantiates the element that will host this widget.
	CreateElement() Element
	// Key identifies the widget for matching across rebuilds. Nil means
	// match by type only.
	Key() any
}

// StatelessWidget builds its subtree purely from its own configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns mutable state held in a separate State object.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// InheritedWidget broadcasts a value to any descendant that registers a
// dependency via BuildContext.DependOnInherited. Descendants that never
// register are not rebuilt when the value changes.
type InheritedWidget interface {
	Widget
	// ChildWidget returns the subtree below the inherited widget.
	ChildWidget() Widget
	// UpdateShouldNotify reports whether dependents must be rebuilt after
	// the widget was replaced by a new configuration.
	UpdateShouldNotify(old InheritedWidget) bool
}

// State holds mutable data for a StatefulWidget across rebuilds.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	Dispose()
	DidChangeDependencies()
	DidUpdateWidget(old StatefulWidget)
}

// BuildContext is the element-side handle passed to Build methods.
type BuildContext interface {
	// Widget returns the widget currently hosted by this context's element.
	Widget() Widget
	// DependOnInherited finds the nearest InheritedWidget of the given type
	// and registers the calling element as a dependent. Returns nil if no
	// such ancestor exists.
	DependOnInherited(inheritedType reflect.Type) any
	// FindAncestor walks up the element tree to the first ancestor matching
	// the predicate, or nil.
	FindAncestor(predicate func(Element) bool) Element
}

// Element is an instantiated widget in the tree.
type Element interface {
	BuildContext
	Depth() int
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	RebuildIfNeeded()
	MarkNeedsBuild()
	VisitChildren(visitor func(Element) bool)
}

// Listenable is anything that notifies registered listeners on change.
// AddListener returns an unsubscribe function.
type Listenable interface {
	AddListener(listener func()) func()
}

// Disposable releases resources when no longer needed.
type Disposable interface {
	Dispose()
}

// MountRoot inflates a widget as the root of a new element tree.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	element := inflateWidget(widget, owner)
	if element != nil {
		element.Mount(nil, nil)
	}
	return element
}
