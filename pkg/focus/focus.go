// Package focus provides imperative focus management.
//
// A FocusNode is a direct handle to a focusable element in the render tree.
// Requesting focus is a pure side channel: it never schedules a rebuild, and
// it silently no-ops while the node's element is not mounted.
package focus

// FocusNode represents a focusable element in the tree.
type FocusNode struct {
	CanRequestFocus bool
	DebugLabel      string

	// OnFocusChange is invoked whenever this node gains or loses primary
	// focus.
	OnFocusChange func(hasFocus bool)

	attached        bool
	hasPrimaryFocus bool
}

// NewFocusNode returns a node that may request focus once attached.
func NewFocusNode() *FocusNode {
	return &FocusNode{CanRequestFocus: true}
}

// canReceiveFocus reports whether the node can receive focus right now.
// Detached nodes never can: the element they point at is not on screen.
func (n *FocusNode) canReceiveFocus() bool {
	return n != nil && n.CanRequestFocus && n.attached
}

// IsAttached reports whether the node is attached to a mounted element.
func (n *FocusNode) IsAttached() bool {
	return n != nil && n.attached
}

// HasPrimaryFocus reports whether this node is the primary focus.
func (n *FocusNode) HasPrimaryFocus() bool {
	return n.hasPrimaryFocus
}

// RequestFocus requests that this node receive primary focus.
// A no-op when the node is detached or cannot request focus.
func (n *FocusNode) RequestFocus() {
	if !n.canReceiveFocus() {
		return
	}
	GetFocusManager().setPrimaryFocus(n)
}

// Unfocus removes focus from this node if it has primary focus.
func (n *FocusNode) Unfocus() {
	manager := GetFocusManager()
	if manager.PrimaryFocus == n {
		manager.setPrimaryFocus(nil)
	}
}

// setFocusState updates the focus flag and notifies the callback.
func (n *FocusNode) setFocusState(hasFocus bool) {
	n.hasPrimaryFocus = hasFocus
	if n.OnFocusChange != nil {
		n.OnFocusChange(hasFocus)
	}
}

// FocusManager manages the global focus state.
type FocusManager struct {
	PrimaryFocus *FocusNode

	nodes []*FocusNode // attachment order
}

var focusManager = &FocusManager{}

// GetFocusManager returns the singleton focus manager.
func GetFocusManager() *FocusManager {
	return focusManager
}

// Attach registers a node as mounted. Called by the element hosting the
// focusable render object.
func (m *FocusManager) Attach(node *FocusNode) {
	if node == nil || node.attached {
		return
	}
	node.attached = true
	m.nodes = append(m.nodes, node)
}

// Detach unregisters a node. Focus moves away if the node held it.
func (m *FocusManager) Detach(node *FocusNode) {
	if node == nil || !node.attached {
		return
	}
	node.attached = false
	for i, candidate := range m.nodes {
		if candidate == node {
			m.nodes = append(m.nodes[:i], m.nodes[i+1:]...)
			break
		}
	}
	if m.PrimaryFocus == node {
		m.setPrimaryFocus(nil)
	}
}

// MoveFocus moves focus by delta positions through the attached nodes,
// wrapping around. Returns false when no node can take focus.
func (m *FocusManager) MoveFocus(delta int) bool {
	count := len(m.nodes)
	if count == 0 {
		return false
	}

	currentIndex := -1
	for i, node := range m.nodes {
		if node == m.PrimaryFocus {
			currentIndex = i
			break
		}
	}

	for step := 1; step <= count; step++ {
		nextIndex := wrapIndex(currentIndex+delta*step, count)
		candidate := m.nodes[nextIndex]
		if candidate.canReceiveFocus() {
			m.setPrimaryFocus(candidate)
			return true
		}
	}
	return false
}

// setPrimaryFocus updates the primary focus to the given node.
func (m *FocusManager) setPrimaryFocus(node *FocusNode) {
	if m.PrimaryFocus == node {
		return
	}
	if m.PrimaryFocus != nil {
		m.PrimaryFocus.setFocusState(false)
	}
	m.PrimaryFocus = node
	if node != nil {
		node.setFocusState(true)
	}
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
