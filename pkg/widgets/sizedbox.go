package widgets

import (
	"github.com/nextcore/glint/pkg/core"
	"github.com/nextcore/glint/pkg/graphics"
	"github.com/nextcore/glint/pkg/layout"
)

// SizedBox constrains its child to a specific width and/or height.
// A zero dimension defers to the child's size (or collapses when there is
// no child), so SizedBox doubles as a spacer via [HSpace] and [VSpace].
type SizedBox struct {
	core.RenderObjectBase
	Width  float64
	Height float64
	Child  core.Widget
}

func (s SizedBox) ChildWidget() core.Widget {
	return s.Child
}

func (s SizedBox) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderSizedBox{width: s.Width, height: s.Height}
	box.SetSelf(box)
	return box
}

func (s SizedBox) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderSizedBox); ok {
		if box.width != s.Width || box.height != s.Height {
			box.width = s.Width
			box.height = s.Height
			box.MarkNeedsLayout()
			box.MarkNeedsPaint()
		}
	}
}

type renderSizedBox struct {
	layout.RenderBoxBase
	child  layout.RenderObject
	width  float64
	height float64
}

func (r *renderSizedBox) SetChild(child layout.RenderObject) {
	r.child = child
	r.MarkNeedsLayout()
}

func (r *renderSizedBox) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderSizedBox) PerformLayout() {
	constraints := r.Constraints()

	childConstraints := constraints
	if r.width > 0 {
		childConstraints.MinWidth = r.width
		childConstraints.MaxWidth = r.width
	}
	if r.height > 0 {
		childConstraints.MinHeight = r.height
		childConstraints.MaxHeight = r.height
	}

	size := graphics.Size{Width: r.width, Height: r.height}
	if r.child != nil {
		r.child.Layout(childConstraints, true)
		childSize := r.child.Size()
		if r.width <= 0 {
			size.Width = childSize.Width
		}
		if r.height <= 0 {
			size.Height = childSize.Height
		}
		r.child.SetParentData(&layout.BoxParentData{})
	}

	r.SetSize(constraints.Constrain(size))
}
