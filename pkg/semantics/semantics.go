// Package semantics describes widget state to assistive technology.
//
// Widgets hold their accessible state as [Properties] (a role plus a flag
// bitset) and project it onto host nodes as ARIA attributes. Projection is
// synchronous: it is recomputed in full whenever the state it derives from
// changes, so the accessibility tree never lags the widget.
package semantics

// Flag is a bitset of boolean semantic states.
type Flag uint32

const (
	// FlagExpanded marks a disclosure-style control as open.
	FlagExpanded Flag = 1 << iota
	// FlagDisabled marks a control that does not accept interaction.
	FlagDisabled
	// FlagHidden marks content removed from the accessibility tree.
	FlagHidden
	// FlagFocusable marks a node that accepts keyboard focus.
	FlagFocusable
)

// Has reports whether all bits in other are set.
func (f Flag) Has(other Flag) bool { return f&other == other }

// Set returns f with the bits in other set.
func (f Flag) Set(other Flag) Flag { return f | other }

// Clear returns f with the bits in other cleared.
func (f Flag) Clear(other Flag) Flag { return f &^ other }

// Role defines the semantic role of a node.
type Role int

const (
	// RoleNone is the absence of an explicit role.
	RoleNone Role = iota
	// RoleButton is an activatable control.
	RoleButton
	// RoleRegion is a labelled content region.
	RoleRegion
)

func (r Role) String() string {
	switch r {
	case RoleButton:
		return "button"
	case RoleRegion:
		return "region"
	default:
		return ""
	}
}

// Properties is the semantic description of one node.
type Properties struct {
	// Label is the accessible name.
	Label string
	// Role is the node's semantic role.
	Role Role
	// Flags holds the boolean states.
	Flags Flag
}

// IsEmpty reports whether the properties carry no semantic information.
func (p Properties) IsEmpty() bool {
	return p.Label == "" && p.Role == RoleNone && p.Flags == 0
}
