package widgets

import (
	"github.com/nextcore/glint/pkg/core"
	"github.com/nextcore/glint/pkg/graphics"
	"github.com/nextcore/glint/pkg/layout"
)

// Container paints a background color behind its child with optional
// uniform padding.
type Container struct {
	core.RenderObjectBase
	Color   graphics.Color
	Padding float64
	Child   core.Widget
}

func (c Container) ChildWidget() core.Widget {
	return c.Child
}

func (c Container) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderContainer{color: c.Color, padding: c.Padding}
	box.SetSelf(box)
	return box
}

func (c Container) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	box, ok := renderObject.(*renderContainer)
	if !ok {
		return
	}
	if box.color != c.Color {
		box.color = c.Color
		box.MarkNeedsPaint()
	}
	if box.padding != c.Padding {
		box.padding = c.Padding
		box.MarkNeedsLayout()
	}
}

type renderContainer struct {
	layout.RenderBoxBase
	child   layout.RenderObject
	color   graphics.Color
	padding float64
}

// Color returns the current background color. Tests assert on it.
func (r *renderContainer) Color() graphics.Color {
	return r.color
}

func (r *renderContainer) SetChild(child layout.RenderObject) {
	r.child = child
	r.MarkNeedsLayout()
}

func (r *renderContainer) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderContainer) PerformLayout() {
	constraints := r.Constraints()

	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{
			Width:  r.padding * 2,
			Height: r.padding * 2,
		}))
		return
	}

	r.child.Layout(constraints.Deflate(r.padding*2, r.padding*2), true)
	childSize := r.child.Size()
	r.child.SetParentData(&layout.BoxParentData{
		Offset: graphics.Offset{X: r.padding, Y: r.padding},
	})
	r.SetSize(constraints.Constrain(graphics.Size{
		Width:  childSize.Width + r.padding*2,
		Height: childSize.Height + r.padding*2,
	}))
}
