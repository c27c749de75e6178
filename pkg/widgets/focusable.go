package widgets

import (
	"github.com/nextcore/glint/pkg/core"
	"github.com/nextcore/glint/pkg/focus"
)

// Focusable registers a FocusNode with the focus manager for the lifetime of
// the widget. The node only accepts focus requests while the widget is
// mounted; requests against a detached node are silently ignored.
type Focusable struct {
	core.StatefulBase
	Node  *focus.FocusNode
	Child core.Widget
}

func (f Focusable) CreateState() core.State {
	return &focusableState{}
}

type focusableState struct {
	core.StateBase
	node *focus.FocusNode
}

func (s *focusableState) InitState() {
	widget := s.Element().Widget().(Focusable)
	s.node = widget.Node
	if s.node == nil {
		s.node = focus.NewFocusNode()
	}
	manager := focus.GetFocusManager()
	manager.Attach(s.node)
	s.OnDispose(func() {
		manager.Detach(s.node)
	})
}

func (s *focusableState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	widget := s.Element().Widget().(Focusable)
	if widget.Node == nil || widget.Node == s.node {
		return
	}
	manager := focus.GetFocusManager()
	manager.Detach(s.node)
	s.node = widget.Node
	manager.Attach(s.node)
}

func (s *focusableState) Build(ctx core.BuildContext) core.Widget {
	return s.Element().Widget().(Focusable).Child
}
