package focus

import "testing"

// detachAll removes every node a test attached so cases stay isolated.
func detachAll(t *testing.T, nodes ...*FocusNode) {
	t.Helper()
	manager := GetFocusManager()
	for _, node := range nodes {
		manager.Detach(node)
	}
}

func TestRequestFocusBeforeAttachIsNoOp(t *testing.T) {
	node := NewFocusNode()

	node.RequestFocus()

	if node.HasPrimaryFocus() {
		t.Error("detached node must not take focus")
	}
	if GetFocusManager().PrimaryFocus == node {
		t.Error("manager must not point at a detached node")
	}
}

func TestRequestFocusAfterAttach(t *testing.T) {
	node := NewFocusNode()
	manager := GetFocusManager()
	manager.Attach(node)
	defer detachAll(t, node)

	var changes []bool
	node.OnFocusChange = func(hasFocus bool) { changes = append(changes, hasFocus) }

	node.RequestFocus()

	if !node.HasPrimaryFocus() {
		t.Error("attached node should take focus")
	}
	if manager.PrimaryFocus != node {
		t.Error("manager should point at the focused node")
	}
	if len(changes) != 1 || !changes[0] {
		t.Errorf("expected one gained-focus notification, got %v", changes)
	}
}

func TestDetachMovesFocusAway(t *testing.T) {
	first := NewFocusNode()
	second := NewFocusNode()
	manager := GetFocusManager()
	manager.Attach(first)
	manager.Attach(second)
	defer detachAll(t, first, second)

	first.RequestFocus()
	manager.Detach(first)

	if first.HasPrimaryFocus() {
		t.Error("detached node must lose focus")
	}
	if manager.PrimaryFocus == first {
		t.Error("manager must not keep a detached primary focus")
	}

	// A detached node cannot regain focus.
	first.RequestFocus()
	if manager.PrimaryFocus == first {
		t.Error("request on detached node must be ignored")
	}
}

func TestUnfocus(t *testing.T) {
	node := NewFocusNode()
	manager := GetFocusManager()
	manager.Attach(node)
	defer detachAll(t, node)

	node.RequestFocus()
	node.Unfocus()

	if node.HasPrimaryFocus() {
		t.Error("expected focus cleared")
	}
	if manager.PrimaryFocus != nil {
		t.Error("expected no primary focus")
	}
}

func TestMoveFocusWraps(t *testing.T) {
	first := NewFocusNode()
	second := NewFocusNode()
	third := NewFocusNode()
	manager := GetFocusManager()
	manager.Attach(first)
	manager.Attach(second)
	manager.Attach(third)
	defer detachAll(t, first, second, third)

	first.RequestFocus()

	if !manager.MoveFocus(1) || manager.PrimaryFocus != second {
		t.Error("expected focus to move to second")
	}
	if !manager.MoveFocus(1) || manager.PrimaryFocus != third {
		t.Error("expected focus to move to third")
	}
	if !manager.MoveFocus(1) || manager.PrimaryFocus != first {
		t.Error("expected focus to wrap back to first")
	}
	if !manager.MoveFocus(-1) || manager.PrimaryFocus != third {
		t.Error("expected backwards move to wrap to third")
	}
}

func TestMoveFocusSkipsIneligibleNodes(t *testing.T) {
	first := NewFocusNode()
	blocked := NewFocusNode()
	blocked.CanRequestFocus = false
	third := NewFocusNode()
	manager := GetFocusManager()
	manager.Attach(first)
	manager.Attach(blocked)
	manager.Attach(third)
	defer detachAll(t, first, blocked, third)

	first.RequestFocus()

	if !manager.MoveFocus(1) || manager.PrimaryFocus != third {
		t.Errorf("expected focus to skip the blocked node, got %v", manager.PrimaryFocus)
	}
}
