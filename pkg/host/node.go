// Package host provides the retained-node contract between a headless widget
// and the shell that renders it.
//
// A widget never draws. It mutates [Node] state (style, hidden flag,
// attributes) and the embedding shell projects those mutations into whatever
// surface it owns. The shell in turn forwards measurements back through the
// node's MeasureFunc.
package host

import "fmt"

// Dimension is a style length: either a fixed pixel value or the intrinsic
// "auto" size resolved by the shell's layout.
type Dimension struct {
	px   float64
	auto bool
}

// Auto is the intrinsic-size dimension.
var Auto = Dimension{auto: true}

// Px returns a fixed pixel dimension.
func Px(v float64) Dimension {
	return Dimension{px: v}
}

// IsAuto reports whether the dimension is the intrinsic "auto" size.
func (d Dimension) IsAuto() bool { return d.auto }

// Px returns the pixel value. Only meaningful when IsAuto is false.
func (d Dimension) Px() float64 { return d.px }

func (d Dimension) String() string {
	if d.auto {
		return "auto"
	}
	return fmt.Sprintf("%gpx", d.px)
}

// Style holds the mutable style state a widget writes to a node.
type Style struct {
	// Height is the node's height. Defaults to Auto.
	Height Dimension
	// Opacity ranges 0 to 1. Defaults to 1.
	Opacity float64
}

// Node is a retained element owned by the host shell.
//
// Widgets mutate nodes; the shell renders them. A node's style and hidden
// flag must only be written by the single widget that owns the node (and the
// animation runner that widget drives) — the shell treats them as read-only.
type Node struct {
	id    string
	style Style

	hidden bool
	attrs  map[string]string

	// MeasureFunc reports the node's scroll height: the intrinsic height of
	// its content regardless of the current style height. Supplied by the
	// shell after layout. Nil means the node measures as zero.
	MeasureFunc func() float64
}

// NewNode creates a node with the given id. Style defaults to height auto,
// opacity 1, not hidden.
func NewNode(id string) *Node {
	return &Node{
		id:    id,
		style: Style{Height: Auto, Opacity: 1},
		attrs: make(map[string]string),
	}
}

// ID returns the node's identifier.
func (n *Node) ID() string { return n.id }

// Style returns the current style.
func (n *Node) Style() Style { return n.style }

// SetHeight sets the style height.
func (n *Node) SetHeight(h Dimension) { n.style.Height = h }

// SetOpacity sets the style opacity.
func (n *Node) SetOpacity(o float64) { n.style.Opacity = o }

// Hidden reports whether the node is removed from the visible tree.
func (n *Node) Hidden() bool { return n.hidden }

// SetHidden sets the hidden flag and mirrors it into the "hidden" attribute
// so attribute-level consumers see the same visibility as the shell.
func (n *Node) SetHidden(hidden bool) {
	n.hidden = hidden
	if hidden {
		n.attrs["hidden"] = ""
	} else {
		delete(n.attrs, "hidden")
	}
}

// ScrollHeight returns the node's measured intrinsic content height.
func (n *Node) ScrollHeight() float64 {
	if n.MeasureFunc == nil {
		return 0
	}
	return n.MeasureFunc()
}

// SetAttribute sets a string attribute on the node.
func (n *Node) SetAttribute(name, value string) {
	n.attrs[name] = value
}

// RemoveAttribute deletes an attribute.
func (n *Node) RemoveAttribute(name string) {
	delete(n.attrs, name)
}

// Attribute returns an attribute value and whether it is present.
func (n *Node) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// HasAttribute reports whether an attribute is present.
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.attrs[name]
	return ok
}
