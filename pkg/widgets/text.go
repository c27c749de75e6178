// Package widgets provides the widget vocabulary built on the core element
// framework and the layout pipeline.
package widgets

import (
	"github.com/nextcore/glint/pkg/core"
	"github.com/nextcore/glint/pkg/graphics"
	"github.com/nextcore/glint/pkg/layout"
)

// Text displays a single-line string with one style.
type Text struct {
	core.RenderObjectBase
	// Content is the text string to display.
	Content string
	// Style controls the font size and color.
	Style graphics.TextStyle
}

func (t Text) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	text := &renderText{text: t.Content, style: t.Style}
	text.SetSelf(text)
	return text
}

func (t Text) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if text, ok := renderObject.(*renderText); ok {
		if text.text != t.Content || text.style != t.Style {
			text.text = t.Content
			text.style = t.Style
			text.MarkNeedsLayout()
			text.MarkNeedsPaint()
		}
	}
}

type renderText struct {
	layout.RenderBoxBase
	text  string
	style graphics.TextStyle
}

func (r *renderText) PerformLayout() {
	measured := graphics.MeasureText(r.text, r.style)
	r.SetSize(r.Constraints().Constrain(measured))
}
