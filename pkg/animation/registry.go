package animation

import (
	"fmt"
	"sync"

	"github.com/go-drift/facet/pkg/host"
)

// ErrUnknownTransition is returned by [Registry.Resolve] when a name has
// neither an owner override nor a registered default.
var ErrUnknownTransition = fmt.Errorf("animation: unknown transition")

// Registry resolves transition names to [Transition] values.
//
// Widgets receive a registry at construction. Each registry carries its own
// defaults plus per-owner overrides; [Defaults] is the process-wide instance
// used when a widget is constructed without one, so cross-instance theming
// registers there.
type Registry struct {
	mu        sync.Mutex
	defaults  map[string]Transition
	overrides map[*host.Node]map[string]Transition

	reducedMotion bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defaults:  make(map[string]Transition),
		overrides: make(map[*host.Node]map[string]Transition),
	}
}

// defaultRegistry is the process-wide registry.
var defaultRegistry = NewRegistry()

// Defaults returns the process-wide registry.
func Defaults() *Registry { return defaultRegistry }

// RegisterDefault stores the transition as the default for name, replacing
// any previous default.
func (r *Registry) RegisterDefault(name string, t Transition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaults[name] = t
}

// SetOverride stores an owner-level transition that takes precedence over
// the default for name when resolved for that owner.
func (r *Registry) SetOverride(owner *host.Node, name string, t Transition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := r.overrides[owner]
	if m == nil {
		m = make(map[string]Transition)
		r.overrides[owner] = m
	}
	m[name] = t
}

// ClearOverrides removes all owner-level overrides for the node. Called when
// the owning widget is disposed so the registry does not retain dead nodes.
func (r *Registry) ClearOverrides(owner *host.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.overrides, owner)
}

// SetReducedMotion toggles reduced-motion resolution. When set, resolved
// transitions keep their keyframes but play with zero duration, so state
// machines and events behave identically while motion collapses to a snap.
func (r *Registry) SetReducedMotion(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reducedMotion = enabled
}

// Resolve returns the transition registered for name, preferring an owner
// override. It returns ErrUnknownTransition (wrapped with the name) when the
// name is not registered.
func (r *Registry) Resolve(owner *host.Node, name string) (Transition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.overrides[owner][name]
	if !ok {
		t, ok = r.defaults[name]
	}
	if !ok {
		return Transition{}, fmt.Errorf("%w: %q", ErrUnknownTransition, name)
	}
	if r.reducedMotion {
		t.Timing.Duration = 0
	}
	return t, nil
}
