// Package focus provides keyboard focus management and focus-visible
// tracking for Facet widgets.
package focus

import "github.com/go-drift/facet/pkg/host"

// Modality is the input modality of the most recent user interaction. The
// shell updates it from raw input events; widgets update it from the events
// they handle. Focus acquired under keyboard modality is rendered visible.
type Modality int

const (
	// ModalityPointer indicates the last interaction was pointer-driven.
	ModalityPointer Modality = iota
	// ModalityKeyboard indicates the last interaction was key-driven.
	ModalityKeyboard
)

// Node represents a focusable element.
type Node struct {
	// CanRequestFocus gates RequestFocus. A disabled control keeps its node
	// but the widget may leave this true so disabling does not alter
	// focusability already in place.
	CanRequestFocus bool

	// DebugLabel identifies the node in diagnostics.
	DebugLabel string

	// Host is the host node this focus node belongs to, used by the
	// focus-visible tracker to project visibility. Optional.
	Host *host.Node

	// OnFocusChange fires when the node gains or loses primary focus.
	OnFocusChange func(hasFocus bool)

	hasFocus bool
}

// HasFocus reports whether this node holds primary focus.
func (n *Node) HasFocus() bool { return n.hasFocus }

// RequestFocus requests that this node receive primary focus.
func (n *Node) RequestFocus() {
	if n == nil || !n.CanRequestFocus {
		return
	}
	GetManager().setPrimaryFocus(n)
}

// Unfocus removes focus from this node if it has primary focus.
func (n *Node) Unfocus() {
	m := GetManager()
	if m.PrimaryFocus == n {
		m.setPrimaryFocus(nil)
	}
}

func (n *Node) setFocusState(hasFocus bool) {
	n.hasFocus = hasFocus
	if n.OnFocusChange != nil {
		n.OnFocusChange(hasFocus)
	}
}

// Manager owns the global focus state.
type Manager struct {
	PrimaryFocus *Node

	modality  Modality
	listeners map[int]func(old, next *Node)
	nextID    int
}

var manager = &Manager{listeners: make(map[int]func(old, next *Node))}

// GetManager returns the singleton focus manager.
func GetManager() *Manager { return manager }

// Modality returns the current input modality.
func (m *Manager) Modality() Modality { return m.modality }

// SetModality records the input modality of the latest interaction.
func (m *Manager) SetModality(mod Modality) { m.modality = mod }

// AddChangeListener registers a callback fired after primary focus moves.
// Returns an unsubscribe function.
func (m *Manager) AddChangeListener(fn func(old, next *Node)) func() {
	if fn == nil {
		return func() {}
	}
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() { delete(m.listeners, id) }
}

func (m *Manager) setPrimaryFocus(node *Node) {
	if m.PrimaryFocus == node {
		return
	}
	old := m.PrimaryFocus
	if old != nil {
		old.setFocusState(false)
	}
	m.PrimaryFocus = node
	if node != nil {
		node.setFocusState(true)
	}
	for _, fn := range m.listeners {
		fn(old, node)
	}
}

// VisibleAttribute is set on a host node while its focus should be visibly
// indicated (focus acquired via keyboard).
const VisibleAttribute = "data-focus-visible"

// VisibleTracker projects keyboard-acquired focus onto observed host nodes.
//
// Observe a node for the widget's lifetime and Unobserve it on disposal.
// While an observed focus node holds primary focus under keyboard modality,
// its host node carries [VisibleAttribute].
type VisibleTracker struct {
	observed    map[*Node]struct{}
	unsubscribe func()
}

// NewVisibleTracker creates a tracker subscribed to the focus manager.
func NewVisibleTracker() *VisibleTracker {
	t := &VisibleTracker{observed: make(map[*Node]struct{})}
	t.unsubscribe = GetManager().AddChangeListener(t.onFocusChange)
	return t
}

// Observe starts tracking the node.
func (t *VisibleTracker) Observe(n *Node) {
	if n == nil {
		return
	}
	t.observed[n] = struct{}{}
	// Focus may already be on the node when observation begins.
	if n.HasFocus() {
		t.project(n)
	}
}

// Unobserve stops tracking the node and clears any visible indication.
func (t *VisibleTracker) Unobserve(n *Node) {
	if n == nil {
		return
	}
	delete(t.observed, n)
	t.clear(n)
}

// Dispose unsubscribes the tracker from the focus manager.
func (t *VisibleTracker) Dispose() {
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
	for n := range t.observed {
		t.clear(n)
	}
	t.observed = make(map[*Node]struct{})
}

func (t *VisibleTracker) onFocusChange(old, next *Node) {
	if old != nil {
		t.clear(old)
	}
	if next != nil {
		if _, ok := t.observed[next]; ok {
			t.project(next)
		}
	}
}

func (t *VisibleTracker) project(n *Node) {
	if n.Host == nil {
		return
	}
	if GetManager().Modality() == ModalityKeyboard {
		n.Host.SetAttribute(VisibleAttribute, "")
	}
}

func (t *VisibleTracker) clear(n *Node) {
	if n.Host != nil {
		n.Host.RemoveAttribute(VisibleAttribute)
	}
}
