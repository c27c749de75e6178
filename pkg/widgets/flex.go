package widgets

import (
	"github.com/nextcore/glint/pkg/core"
	"github.com/nextcore/glint/pkg/graphics"
	"github.com/nextcore/glint/pkg/layout"
)

// Axis selects the main direction of a Flex.
type Axis int

const (
	// AxisVertical stacks children top to bottom.
	AxisVertical Axis = iota
	// AxisHorizontal places children left to right.
	AxisHorizontal
)

// Flex lays out children along one axis, sizing itself to the sum of its
// children on the main axis and the largest child on the cross axis.
// [Column] and [Row] are the conventional constructors.
type Flex struct {
	core.RenderObjectBase
	Direction Axis
	Children  []core.Widget
}

// Column stacks children vertically.
func Column(children ...core.Widget) Flex {
	return Flex{Direction: AxisVertical, Children: children}
}

// Row places children horizontally.
func Row(children ...core.Widget) Flex {
	return Flex{Direction: AxisHorizontal, Children: children}
}

func (f Flex) ChildWidgets() []core.Widget {
	return f.Children
}

func (f Flex) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	flex := &renderFlex{direction: f.Direction}
	flex.SetSelf(flex)
	return flex
}

func (f Flex) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if flex, ok := renderObject.(*renderFlex); ok && flex.direction != f.Direction {
		flex.direction = f.Direction
		flex.MarkNeedsLayout()
	}
}

type renderFlex struct {
	layout.RenderBoxBase
	children  []layout.RenderObject
	direction Axis
}

func (r *renderFlex) SetChildren(children []layout.RenderObject) {
	r.children = children
	r.MarkNeedsLayout()
}

func (r *renderFlex) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

func (r *renderFlex) PerformLayout() {
	constraints := r.Constraints()
	childConstraints := layout.Constraints{
		MaxWidth:  constraints.MaxWidth,
		MaxHeight: constraints.MaxHeight,
	}

	var mainExtent, crossExtent float64
	for _, child := range r.children {
		child.Layout(childConstraints, true)
		size := child.Size()

		var offset graphics.Offset
		if r.direction == AxisVertical {
			offset = graphics.Offset{Y: mainExtent}
			mainExtent += size.Height
			crossExtent = max(crossExtent, size.Width)
		} else {
			offset = graphics.Offset{X: mainExtent}
			mainExtent += size.Width
			crossExtent = max(crossExtent, size.Height)
		}
		child.SetParentData(&layout.BoxParentData{Offset: offset})
	}

	size := graphics.Size{Width: crossExtent, Height: mainExtent}
	if r.direction == AxisHorizontal {
		size = graphics.Size{Width: mainExtent, Height: crossExtent}
	}
	r.SetSize(constraints.Constrain(size))
}
