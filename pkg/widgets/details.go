// Package widgets contains Facet's interactive controls.
package widgets

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-drift/facet/pkg/animation"
	"github.com/go-drift/facet/pkg/errors"
	"github.com/go-drift/facet/pkg/events"
	"github.com/go-drift/facet/pkg/focus"
	"github.com/go-drift/facet/pkg/host"
	"github.com/go-drift/facet/pkg/semantics"
	"github.com/go-drift/facet/pkg/theme"
)

// Lifecycle events emitted by Details. The will-* events are cancelable:
// calling PreventDefault in a listener aborts the transition before any
// state or visual change.
const (
	// EventWillShow announces an opening transition about to start.
	EventWillShow events.Type = "facet-will-show"
	// EventAfterShow fires once the opening transition has settled.
	EventAfterShow events.Type = "facet-after-show"
	// EventWillHide announces a closing transition about to start.
	EventWillHide events.Type = "facet-will-hide"
	// EventAfterHide fires once the closing transition has settled.
	EventAfterHide events.Type = "facet-after-hide"
)

// Phase is the transition controller's state.
//
//	           Show()                    animation settles
//	Closed ─────────────► Opening ──────────────────────► Open
//	   ▲                     │                              │
//	   │   animation settles │ cancelled or superseded      │ Hide()
//	   └───── Closing ◄──────┴──────────────────────────────┘
//
// The machine is cyclic for the widget's lifetime; there is no terminal
// phase.
type Phase int

const (
	// PhaseClosed means the content is hidden and no transition is running.
	PhaseClosed Phase = iota
	// PhaseOpening means the opening transition is in flight.
	PhaseOpening
	// PhaseOpen means the content is visible and settled.
	PhaseOpen
	// PhaseClosing means the closing transition is in flight.
	PhaseClosing
)

func (p Phase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseOpening:
		return "opening"
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Outcome reports how a Show or Hide request resolved.
type Outcome int

const (
	// OutcomeCompleted means the transition ran and settled.
	OutcomeCompleted Outcome = iota
	// OutcomeNoop means a guard precondition made the request a no-op:
	// not yet initialized, already in the target state, or disabled.
	OutcomeNoop
	// OutcomeCancelled means a will-show/will-hide listener cancelled the
	// transition before it started.
	OutcomeCancelled
	// OutcomeSuperseded means a newer request stopped this transition's
	// animation mid-flight.
	OutcomeSuperseded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeNoop:
		return "noop"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeSuperseded:
		return "superseded"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Completion resolves when a Show or Hide request settles.
type Completion struct {
	done     chan struct{}
	outcome  Outcome
	resolved bool
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// Done returns a channel closed when the request has settled.
func (c *Completion) Done() <-chan struct{} { return c.done }

// Settled reports whether the request has settled.
func (c *Completion) Settled() bool { return c.resolved }

// Outcome returns how the request resolved. Only meaningful after Done.
func (c *Completion) Outcome() Outcome { return c.outcome }

func (c *Completion) resolve(o Outcome) {
	if c.resolved {
		return
	}
	c.resolved = true
	c.outcome = o
	close(c.done)
}

// DetailsConfig configures a Details widget at construction.
type DetailsConfig struct {
	// Summary is the header's display text and accessible label.
	Summary string
	// Open starts the widget open.
	Open bool
	// Disabled starts the widget disabled.
	Disabled bool
	// Registry resolves the widget's transitions. Nil uses the process-wide
	// registry, which carries the default show/hide transitions.
	Registry *animation.Registry
	// Tracker receives the header for focus-visible observation. Nil gives
	// the widget its own tracker, disposed with it.
	Tracker *focus.VisibleTracker
	// ContentMeasure reports the content's scroll height. Supplied by the
	// shell; the widget substitutes it for auto keyframe heights.
	ContentMeasure func() float64
}

var nextDetailsID atomic.Int64

var registerDefaultsOnce sync.Once

// Details is a disclosure control: a focusable header that shows and hides
// an associated content region with an animated transition.
//
// Details is headless. It owns two [host.Node] values the embedding shell
// renders, and the shell forwards pointer and key input through
// [Details.HandleSummaryClick] and [Details.HandleSummaryKey].
//
// The open flag is authoritative and mutated only by the transition
// protocol in Show and Hide; external writes go through [Details.SetOpen],
// which validates against current state before invoking the protocol, so
// re-entrant or redundant requests collapse to no-ops.
type Details struct {
	id      string
	header  *host.Node
	content *host.Node

	focusNode  *focus.Node
	tracker    *focus.VisibleTracker
	ownTracker bool
	emitter    *events.Emitter
	registry   *animation.Registry

	summary     string
	open        bool
	disabled    bool
	initialized bool
	phase       Phase
	disposed    bool
}

// NewDetails creates a Details widget. The widget starts uninitialized:
// Show and Hide are silent no-ops until the shell has completed its first
// layout pass and called [Details.Initialize].
func NewDetails(cfg DetailsConfig) *Details {
	registerDefaultsOnce.Do(func() {
		theme.DefaultDetailsTheme().Register(animation.Defaults())
	})

	id := fmt.Sprintf("details-%d", nextDetailsID.Add(1))
	d := &Details{
		id:       id,
		header:   host.NewNode(id + "-header"),
		content:  host.NewNode(id + "-content"),
		emitter:  events.NewEmitter(id),
		registry: cfg.Registry,
		summary:  cfg.Summary,
		open:     cfg.Open,
		disabled: cfg.Disabled,
		phase:    PhaseClosed,
	}
	if d.registry == nil {
		d.registry = animation.Defaults()
	}
	if cfg.Open {
		d.phase = PhaseOpen
	}
	d.content.MeasureFunc = cfg.ContentMeasure

	d.focusNode = &focus.Node{
		CanRequestFocus: true,
		DebugLabel:      id,
		Host:            d.header,
	}
	d.tracker = cfg.Tracker
	if d.tracker == nil {
		d.tracker = focus.NewVisibleTracker()
		d.ownTracker = true
	}
	d.tracker.Observe(d.focusNode)

	d.project()
	return d
}

// ID returns the widget's component id, unique for the process lifetime.
func (d *Details) ID() string { return d.id }

// Header returns the header host node.
func (d *Details) Header() *host.Node { return d.header }

// Content returns the content host node. Its style and hidden flag are
// owned by the transition protocol; the shell must treat them as read-only.
func (d *Details) Content() *host.Node { return d.content }

// FocusNode returns the header's focus node.
func (d *Details) FocusNode() *focus.Node { return d.focusNode }

// Open reports the authoritative open state.
func (d *Details) Open() bool { return d.open }

// Disabled reports whether the widget ignores open and close requests.
func (d *Details) Disabled() bool { return d.disabled }

// Summary returns the header text.
func (d *Details) Summary() string { return d.summary }

// Initialized reports whether the first layout pass has completed.
func (d *Details) Initialized() bool { return d.initialized }

// Phase returns the transition controller's current state.
func (d *Details) Phase() Phase { return d.phase }

// AddEventListener registers a lifecycle event listener. Returns an
// unsubscribe function.
func (d *Details) AddEventListener(t events.Type, fn events.Listener) func() {
	return d.emitter.AddListener(t, fn)
}

// Initialize marks the first layout pass complete and settles the content
// node into its initial state. Called by the shell exactly once, after the
// content's measurements are available. Show and Hide calls made before
// Initialize are dropped.
func (d *Details) Initialize() {
	if d.initialized || d.disposed {
		return
	}
	d.initialized = true
	d.content.SetHidden(!d.open)
	d.content.SetHeight(host.Auto)
	d.content.SetOpacity(1)
	if d.open {
		d.phase = PhaseOpen
	} else {
		d.phase = PhaseClosed
	}
	d.project()
}

// Show opens the widget with the registered show transition.
//
// The returned completion settles when the transition (and its after-show
// event) completes, or immediately when a guard makes the call a no-op or a
// will-show listener cancels it. A second Show while already open is a
// no-op and does not restart the animation.
func (d *Details) Show() *Completion {
	c := newCompletion()
	if !d.initialized || d.open || d.disabled || d.disposed {
		c.resolve(OutcomeNoop)
		return c
	}

	// Reflect the open property first, the way an external watcher would
	// have; the cancellation path below compensates by reverting it.
	d.open = true
	if d.emitter.EmitCancelable(EventWillShow) {
		d.open = false
		c.resolve(OutcomeCancelled)
		return c
	}
	// A will-show listener may have re-entered the state machine; if the
	// open flag no longer holds, the nested call owns the node now.
	if !d.open {
		c.resolve(OutcomeSuperseded)
		return c
	}

	// Clean slate: a closing transition still in flight settles unfinished
	// here, before this one touches the node.
	animation.StopRunning(d.content)

	d.content.SetHidden(false)
	d.phase = PhaseOpening
	d.project()

	t, err := d.registry.Resolve(d.content, theme.TransitionDetailsShow)
	if err != nil {
		d.reportTransition("details.Show", err)
		d.finishShow(c)
		return c
	}
	t = t.ResolveAuto(d.content.ScrollHeight())

	handle := animation.Run(d.content, t)
	handle.OnComplete(func(finished bool) {
		if !finished {
			c.resolve(OutcomeSuperseded)
			return
		}
		d.finishShow(c)
	})
	return c
}

// Hide closes the widget with the registered hide transition. Guards and
// cancellation mirror [Details.Show].
func (d *Details) Hide() *Completion {
	c := newCompletion()
	if !d.initialized || !d.open || d.disabled || d.disposed {
		c.resolve(OutcomeNoop)
		return c
	}

	d.open = false
	if d.emitter.EmitCancelable(EventWillHide) {
		d.open = true
		c.resolve(OutcomeCancelled)
		return c
	}
	if d.open {
		c.resolve(OutcomeSuperseded)
		return c
	}

	animation.StopRunning(d.content)

	d.phase = PhaseClosing
	d.project()

	t, err := d.registry.Resolve(d.content, theme.TransitionDetailsHide)
	if err != nil {
		d.reportTransition("details.Hide", err)
		d.finishHide(c)
		return c
	}
	t = t.ResolveAuto(d.content.ScrollHeight())

	handle := animation.Run(d.content, t)
	handle.OnComplete(func(finished bool) {
		if !finished {
			c.resolve(OutcomeSuperseded)
			return
		}
		d.finishHide(c)
	})
	return c
}

// Toggle opens a closed widget and closes an open one.
func (d *Details) Toggle() *Completion {
	if d.open {
		return d.Hide()
	}
	return d.Show()
}

// finishShow settles the node after a completed (or snapped) opening
// transition. Height is pinned back to auto so later content growth is
// accommodated without replaying the animation.
func (d *Details) finishShow(c *Completion) {
	d.content.SetHeight(host.Auto)
	d.content.SetOpacity(1)
	d.phase = PhaseOpen
	d.emitter.Emit(EventAfterShow)
	c.resolve(OutcomeCompleted)
}

func (d *Details) finishHide(c *Completion) {
	d.content.SetHidden(true)
	d.content.SetHeight(host.Auto)
	d.content.SetOpacity(1)
	d.phase = PhaseClosed
	d.emitter.Emit(EventAfterHide)
	c.resolve(OutcomeCompleted)
}

// SetOpen reflects an external write of the open property into the state
// machine. The validation against current state is the re-entrancy guard:
// a watcher writing the value the widget already holds is a no-op.
func (d *Details) SetOpen(open bool) {
	if open == d.open {
		return
	}
	if open {
		d.Show()
	} else {
		d.Hide()
	}
}

// SetDisabled updates the disabled state. Disabling does not revoke focus
// already held by the header; it only blocks activation.
func (d *Details) SetDisabled(disabled bool) {
	if disabled == d.disabled {
		return
	}
	d.disabled = disabled
	d.project()
}

// SetSummary updates the header text.
func (d *Details) SetSummary(summary string) {
	if summary == d.summary {
		return
	}
	d.summary = summary
	d.project()
}

// SetTransitionOverride installs an instance-level transition that takes
// precedence over the registry default for name.
func (d *Details) SetTransitionOverride(name string, t animation.Transition) {
	d.registry.SetOverride(d.content, name, t)
}

// Dispose releases the widget: stops any running animation, drops event
// listeners, and releases focus observation. The widget must not be used
// afterwards.
func (d *Details) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	animation.StopRunning(d.content)
	d.registry.ClearOverrides(d.content)
	d.tracker.Unobserve(d.focusNode)
	if d.ownTracker {
		d.tracker.Dispose()
	}
	d.focusNode.Unfocus()
	d.emitter.RemoveAll()
}

// Semantics returns the current semantic properties of the header and
// content nodes, for assistive consumers that read the flag bitset rather
// than the projected attributes.
func (d *Details) Semantics() (header, content semantics.Properties) {
	disc := d.disclosure()
	return disc.HeaderProperties(), disc.ContentProperties(d.content.Hidden())
}

func (d *Details) disclosure() semantics.Disclosure {
	return semantics.Disclosure{
		Expanded: d.open,
		Disabled: d.disabled,
		Label:    d.summary,
	}
}

// project recomputes the accessibility projection from current state.
func (d *Details) project() {
	d.disclosure().Apply(d.header, d.content)
}

func (d *Details) reportTransition(op string, err error) {
	errors.Report(&errors.FacetError{
		Op:     op,
		Kind:   errors.KindTransition,
		Err:    err,
		Widget: d.id,
	})
}
