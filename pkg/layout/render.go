package layout

import "github.com/nextcore/glint/pkg/graphics"

// RenderObject handles layout and painting for one node of the render tree.
type RenderObject interface {
	Layout(constraints Constraints, parentUsesSize bool)
	Size() graphics.Size
	ParentData() any
	SetParentData(data any)
	MarkNeedsLayout()
	MarkNeedsPaint()
	SetOwner(owner *PipelineOwner)
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	VisitChildren(visitor func(RenderObject))
}

// BoxParentData stores the offset assigned to a child by its parent.
type BoxParentData struct {
	Offset graphics.Offset
}

// RenderBoxBase provides base behavior for render boxes. Concrete render
// objects embed it, call SetSelf, and implement PerformLayout.
type RenderBoxBase struct {
	size             graphics.Size
	parentData       any
	owner            *PipelineOwner
	self             RenderObject
	parent           RenderObject
	depth            int
	relayoutBoundary RenderObject
	needsLayout      bool
	needsPaint       bool
	constraints      Constraints
}

// Size returns the size set by the last layout pass.
func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// SetSize records the size computed by PerformLayout. A size change marks
// the node for repaint.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.MarkNeedsPaint()
}

// ParentData returns the parent-assigned data for this render box.
func (r *RenderBoxBase) ParentData() any {
	return r.parentData
}

// SetParentData assigns parent-controlled data to this render box.
func (r *RenderBoxBase) SetParentData(data any) {
	r.parentData = data
}

// SetOwner assigns the pipeline owner for scheduling layout and paint.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) {
	r.owner = owner
}

// SetSelf registers the concrete render object for scheduling. New render
// objects always need an initial layout and paint.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true
	r.needsPaint = true
}

// Self returns the concrete render object registered via SetSelf.
func (r *RenderBoxBase) Self() RenderObject {
	return r.self
}

// Parent returns the parent render object.
func (r *RenderBoxBase) Parent() RenderObject {
	return r.parent
}

// SetParent sets the parent render object and recomputes depth. Boundary and
// constraint caches are cleared so a reparented node lays out fresh.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	if r.parent == parent {
		return
	}
	r.parent = parent
	if parent == nil {
		r.depth = 0
	} else if getter, ok := parent.(interface{ Depth() int }); ok {
		r.depth = getter.Depth() + 1
	} else {
		r.depth = 1
	}
	r.relayoutBoundary = nil
	r.constraints = Constraints{}
	r.needsLayout = true
	r.needsPaint = true
}

// Depth returns the tree depth (root = 0).
func (r *RenderBoxBase) Depth() int {
	return r.depth
}

// RelayoutBoundary returns the cached nearest relayout boundary.
func (r *RenderBoxBase) RelayoutBoundary() RenderObject {
	return r.relayoutBoundary
}

// NeedsLayout reports whether this render box needs layout.
func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout
}

// NeedsPaint reports whether this render box needs painting.
func (r *RenderBoxBase) NeedsPaint() bool {
	return r.needsPaint
}

// ClearNeedsPaint marks this render object as painted.
func (r *RenderBoxBase) ClearNeedsPaint() {
	r.needsPaint = false
}

// Constraints returns the last received constraints.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

// MarkNeedsLayout marks this node dirty and walks up to the nearest relayout
// boundary, which gets scheduled with the pipeline owner. Every node along
// the walk is flagged so the boundary's layout pass reaches the node that
// actually changed.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.needsLayout {
		return
	}
	r.needsLayout = true

	if r.owner == nil || r.self == nil {
		return
	}
	if r.relayoutBoundary == r.self {
		r.owner.ScheduleLayout(r.self)
		return
	}
	if r.parent != nil {
		r.parent.MarkNeedsLayout()
		return
	}
	// Not yet connected to a parent; schedule self so initial layout happens.
	r.owner.ScheduleLayout(r.self)
}

// MarkNeedsPaint marks this node and its ancestors up to the root for paint.
func (r *RenderBoxBase) MarkNeedsPaint() {
	r.needsPaint = true
	if r.owner == nil || r.self == nil {
		return
	}
	if r.parent != nil {
		r.parent.MarkNeedsPaint()
		return
	}
	r.owner.SchedulePaint(r.self)
}

// Layout determines the relayout boundary, skips clean subtrees whose
// constraints are unchanged, and delegates to the concrete PerformLayout.
func (r *RenderBoxBase) Layout(constraints Constraints, parentUsesSize bool) {
	shouldBeBoundary := constraints.IsTight() || r.parent == nil || !parentUsesSize
	if shouldBeBoundary {
		r.relayoutBoundary = r.self
	} else if r.parent != nil {
		if getter, ok := r.parent.(interface{ RelayoutBoundary() RenderObject }); ok {
			r.relayoutBoundary = getter.RelayoutBoundary()
		}
	}

	// Unchanged subtrees don't re-layout.
	if !r.needsLayout && r.constraints == constraints {
		return
	}

	r.constraints = constraints
	r.needsLayout = false

	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// SetParentOnChild wires a child render object to a parent and marks both
// sides for layout when the relationship changes.
func SetParentOnChild(child, parent RenderObject) {
	if child == nil {
		return
	}
	getter, _ := child.(interface{ Parent() RenderObject })
	setter, ok := child.(interface{ SetParent(RenderObject) })
	if !ok {
		return
	}
	current := RenderObject(nil)
	if getter != nil {
		current = getter.Parent()
	}
	if current == parent {
		return
	}
	setter.SetParent(parent)
	if current != nil {
		current.MarkNeedsLayout()
	}
	if parent != nil {
		parent.MarkNeedsLayout()
	}
}

// WithinBounds checks whether a position falls inside the given size.
func WithinBounds(position graphics.Offset, size graphics.Size) bool {
	return position.X >= 0 && position.Y >= 0 && position.X <= size.Width && position.Y <= size.Height
}
