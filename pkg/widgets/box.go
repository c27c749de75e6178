package widgets

import (
	"github.com/nextcore/glint/pkg/core"
	"github.com/nextcore/glint/pkg/graphics"
	"github.com/nextcore/glint/pkg/layout"
)

// BoxHandle is an opaque reference to the render object of a Box. It lets
// code outside the build phase read the box's laid-out geometry, typically
// from a layout callback. Before the box mounts, and after it unmounts,
// Size reports no measurement.
type BoxHandle struct {
	render *renderBox
}

// NewBoxHandle returns a handle not yet attached to any box.
func NewBoxHandle() *BoxHandle {
	return &BoxHandle{}
}

// Size returns the size from the most recent layout pass. The second return
// is false while the handle is unattached or the box has not laid out yet.
func (h *BoxHandle) Size() (graphics.Size, bool) {
	if h == nil || h.render == nil {
		return graphics.Size{}, false
	}
	if h.render.NeedsLayout() {
		return graphics.Size{}, false
	}
	return h.render.Size(), true
}

// Attached reports whether the handle currently points at a mounted box.
func (h *BoxHandle) Attached() bool {
	return h != nil && h.render != nil
}

// Box is a styled rectangle with optional fixed dimensions, a fill color,
// and an optional handle for reading its laid-out size after the fact.
// WidthFactor, when positive, sizes the box to that fraction of the maximum
// width offered by the parent and takes precedence over Width.
type Box struct {
	core.RenderObjectBase
	WidgetKey   any
	Handle      *BoxHandle
	Width       float64
	WidthFactor float64
	Height      float64
	Color       graphics.Color
	Child       core.Widget
}

func (b Box) Key() any {
	return b.WidgetKey
}

func (b Box) ChildWidget() core.Widget {
	return b.Child
}

func (b Box) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderBox{width: b.Width, widthFactor: b.WidthFactor, height: b.Height, color: b.Color}
	box.SetSelf(box)
	box.attachHandle(b.Handle)
	return box
}

func (b Box) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	box, ok := renderObject.(*renderBox)
	if !ok {
		return
	}
	if box.width != b.Width || box.widthFactor != b.WidthFactor || box.height != b.Height {
		box.width = b.Width
		box.widthFactor = b.WidthFactor
		box.height = b.Height
		box.MarkNeedsLayout()
	}
	if box.color != b.Color {
		box.color = b.Color
		box.MarkNeedsPaint()
	}
	box.attachHandle(b.Handle)
}

type renderBox struct {
	layout.RenderBoxBase
	child       layout.RenderObject
	handle      *BoxHandle
	width       float64
	widthFactor float64
	height      float64
	color       graphics.Color
}

func (r *renderBox) attachHandle(handle *BoxHandle) {
	if r.handle == handle {
		return
	}
	if r.handle != nil {
		r.handle.render = nil
	}
	r.handle = handle
	if handle != nil {
		handle.render = r
	}
}

// Dispose releases the handle when the element unmounts so stale reads
// report no measurement instead of a dead size.
func (r *renderBox) Dispose() {
	r.attachHandle(nil)
}

func (r *renderBox) Color() graphics.Color {
	return r.color
}

func (r *renderBox) SetChild(child layout.RenderObject) {
	r.child = child
	r.MarkNeedsLayout()
}

func (r *renderBox) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderBox) PerformLayout() {
	constraints := r.Constraints()

	width := r.width
	if r.widthFactor > 0 {
		width = constraints.MaxWidth * r.widthFactor
	}

	childConstraints := constraints
	if width > 0 {
		childConstraints.MinWidth = width
		childConstraints.MaxWidth = width
	}
	if r.height > 0 {
		childConstraints.MinHeight = r.height
		childConstraints.MaxHeight = r.height
	}

	if r.child != nil {
		r.child.Layout(childConstraints, true)
		r.child.SetParentData(&layout.BoxParentData{})
	}

	size := graphics.Size{Width: width, Height: r.height}
	if r.child != nil {
		childSize := r.child.Size()
		if size.Width == 0 {
			size.Width = childSize.Width
		}
		if size.Height == 0 {
			size.Height = childSize.Height
		}
	}
	r.SetSize(constraints.Constrain(size))
}
