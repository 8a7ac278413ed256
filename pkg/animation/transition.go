package animation

import (
	"time"

	"github.com/go-drift/facet/pkg/host"
)

// Keyframe is a single point in a transition: the style values the animated
// node should hold at that point.
//
// Height may be [host.Auto]. The keyframe system cannot interpolate to an
// intrinsic size, so callers must substitute a measured pixel height for Auto
// before running — see [Transition.ResolveAuto].
type Keyframe struct {
	Height  host.Dimension
	Opacity float64
}

// Timing describes how a transition's keyframes are played.
type Timing struct {
	// Duration is the total play time. Zero or negative snaps to the final
	// keyframe on the first frame.
	Duration time.Duration
	// Easing is a CSS-style easing name resolved via [CurveByName].
	Easing string
}

// Transition is a named animation: keyframes plus timing. Transitions are
// plain values; registering or overriding one stores a copy.
type Transition struct {
	Keyframes []Keyframe
	Timing    Timing
}

// IsZero reports whether the transition carries no keyframes.
func (t Transition) IsZero() bool { return len(t.Keyframes) == 0 }

// ResolveAuto returns a copy of the transition with every Auto height
// keyframe replaced by the given measured pixel height.
//
// The measured value is the owner node's scroll height at the moment the
// transition starts. This measurement step is what lets a declarative
// keyframe animate to content-determined size.
func (t Transition) ResolveAuto(measured float64) Transition {
	resolved := t
	resolved.Keyframes = make([]Keyframe, len(t.Keyframes))
	for i, kf := range t.Keyframes {
		if kf.Height.IsAuto() {
			kf.Height = host.Px(measured)
		}
		resolved.Keyframes[i] = kf
	}
	return resolved
}
