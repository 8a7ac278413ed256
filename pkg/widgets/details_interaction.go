package widgets

import "github.com/go-drift/facet/pkg/focus"

// Key identifies the header key presses the widget responds to. The shell
// maps its own key events onto these before forwarding.
type Key int

const (
	// KeyEnter activates the header, toggling the widget.
	KeyEnter Key = iota
	// KeySpace activates the header, toggling the widget.
	KeySpace
	// KeyArrowUp forces the widget closed.
	KeyArrowUp
	// KeyArrowDown forces the widget open.
	KeyArrowDown
	// KeyArrowLeft forces the widget closed.
	KeyArrowLeft
	// KeyArrowRight forces the widget open.
	KeyArrowRight
)

// HandleSummaryClick handles pointer activation of the header: toggle by
// current state, then move keyboard focus to the header. Disabled widgets
// ignore the click entirely.
func (d *Details) HandleSummaryClick() {
	focus.GetManager().SetModality(focus.ModalityPointer)
	if d.disabled || d.disposed {
		return
	}
	d.Toggle()
	d.focusNode.RequestFocus()
}

// HandleSummaryKey handles a key press on the focused header. It returns
// true when the key was consumed, in which case the shell must suppress the
// key's default action (notably Space's scroll).
func (d *Details) HandleSummaryKey(k Key) bool {
	focus.GetManager().SetModality(focus.ModalityKeyboard)
	switch k {
	case KeyEnter, KeySpace:
		if !d.disabled && !d.disposed {
			d.Toggle()
		}
		return true
	case KeyArrowUp, KeyArrowLeft:
		if !d.disabled && !d.disposed {
			d.Hide()
		}
		return true
	case KeyArrowDown, KeyArrowRight:
		if !d.disabled && !d.disposed {
			d.Show()
		}
		return true
	default:
		return false
	}
}
