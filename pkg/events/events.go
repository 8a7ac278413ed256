// Package events provides the lifecycle event protocol for Facet widgets:
// a listener registry with synchronous dispatch and DOM-style cancellation.
//
// Cancellable events are dispatched before the emitting widget mutates any
// state. The emitter inspects the cancelled result immediately, so a
// listener that calls [Event.PreventDefault] observes no state or visual
// change at all.
package events

// Type identifies an event by name.
type Type string

// Event is passed to listeners during dispatch.
type Event struct {
	// Type is the event's name.
	Type Type
	// Target names the emitting widget instance.
	Target string

	cancelable       bool
	defaultPrevented bool
}

// Cancelable reports whether PreventDefault has any effect.
func (e *Event) Cancelable() bool { return e.cancelable }

// PreventDefault cancels the action the event announces. No-op on
// non-cancelable events.
func (e *Event) PreventDefault() {
	if e.cancelable {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether a listener cancelled the event.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Listener receives dispatched events.
type Listener func(*Event)

// Emitter dispatches events to registered listeners, synchronously and in
// registration order. An Emitter must only be used from the frame loop; it
// is not safe for concurrent use.
type Emitter struct {
	target    string
	listeners map[Type][]listenerEntry
	nextID    int
}

type listenerEntry struct {
	id int
	fn Listener
}

// NewEmitter creates an emitter whose events carry the given target name.
func NewEmitter(target string) *Emitter {
	return &Emitter{
		target:    target,
		listeners: make(map[Type][]listenerEntry),
	}
}

// AddListener registers a listener for the event type. Returns an
// unsubscribe function.
func (em *Emitter) AddListener(t Type, fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	id := em.nextID
	em.nextID++
	em.listeners[t] = append(em.listeners[t], listenerEntry{id: id, fn: fn})
	return func() {
		entries := em.listeners[t]
		for i, entry := range entries {
			if entry.id == id {
				em.listeners[t] = append(entries[:i], entries[i+1:]...)
				return
			}
		}
	}
}

// Emit dispatches a non-cancelable event.
func (em *Emitter) Emit(t Type) {
	em.dispatch(&Event{Type: t, Target: em.target})
}

// EmitCancelable dispatches a cancelable event and reports whether a
// listener cancelled it. The dispatch is fully synchronous: when
// EmitCancelable returns, every listener has run.
func (em *Emitter) EmitCancelable(t Type) (cancelled bool) {
	e := &Event{Type: t, Target: em.target, cancelable: true}
	em.dispatch(e)
	return e.defaultPrevented
}

// RemoveAll drops every listener. Called on widget disposal.
func (em *Emitter) RemoveAll() {
	em.listeners = make(map[Type][]listenerEntry)
}

func (em *Emitter) dispatch(e *Event) {
	// Copy so a listener may unsubscribe itself (or others) mid-dispatch.
	entries := append([]listenerEntry(nil), em.listeners[e.Type]...)
	for _, entry := range entries {
		entry.fn(e)
	}
}
