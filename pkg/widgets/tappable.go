package widgets

import (
	"github.com/nextcore/glint/pkg/core"
	"github.com/nextcore/glint/pkg/graphics"
	"github.com/nextcore/glint/pkg/layout"
)

// Tappable wraps a child widget with a tap callback. The callback runs any
// state mutation it wants; Tappable itself never schedules a rebuild.
type Tappable struct {
	core.RenderObjectBase
	WidgetKey any
	OnTap     func()
	Child     core.Widget
}

// Key returns the widget key, letting tests target a specific Tappable.
func (t Tappable) Key() any {
	return t.WidgetKey
}

func (t Tappable) ChildWidget() core.Widget {
	return t.Child
}

func (t Tappable) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	tap := &renderTappable{onTap: t.OnTap}
	tap.SetSelf(tap)
	return tap
}

func (t Tappable) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if tap, ok := renderObject.(*renderTappable); ok {
		tap.onTap = t.OnTap
	}
}

type renderTappable struct {
	layout.RenderBoxBase
	child layout.RenderObject
	onTap func()
}

// HandleTap invokes the tap callback, if any.
func (r *renderTappable) HandleTap() {
	if r.onTap != nil {
		r.onTap()
	}
}

// HitTest reports whether the position falls inside this tappable.
func (r *renderTappable) HitTest(position graphics.Offset) bool {
	return layout.WithinBounds(position, r.Size())
}

func (r *renderTappable) SetChild(child layout.RenderObject) {
	r.child = child
	r.MarkNeedsLayout()
}

func (r *renderTappable) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderTappable) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{}))
		return
	}
	r.child.Layout(constraints, true)
	r.child.SetParentData(&layout.BoxParentData{})
	r.SetSize(constraints.Constrain(r.child.Size()))
}
