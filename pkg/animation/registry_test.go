package animation

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/facet/pkg/host"
)

func TestRegistry_ResolveDefault(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterDefault("fade", heightTransition(0, 1, time.Second))

	got, err := reg.Resolve(host.NewNode("n"), "fade")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.Timing.Duration != time.Second {
		t.Errorf("Expected duration 1s, got %v", got.Timing.Duration)
	}
}

func TestRegistry_UnknownTransition(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Resolve(host.NewNode("n"), "missing")
	if !errors.Is(err, ErrUnknownTransition) {
		t.Fatalf("Expected ErrUnknownTransition, got %v", err)
	}
}

func TestRegistry_OverrideTakesPrecedence(t *testing.T) {
	reg := NewRegistry()
	owner := host.NewNode("owner")
	other := host.NewNode("other")
	reg.RegisterDefault("fade", heightTransition(0, 1, time.Second))
	reg.SetOverride(owner, "fade", heightTransition(0, 1, 2*time.Second))

	got, err := reg.Resolve(owner, "fade")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.Timing.Duration != 2*time.Second {
		t.Errorf("Override not applied: got %v", got.Timing.Duration)
	}

	got, err = reg.Resolve(other, "fade")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.Timing.Duration != time.Second {
		t.Errorf("Other owner saw the override: got %v", got.Timing.Duration)
	}
}

func TestRegistry_ClearOverrides(t *testing.T) {
	reg := NewRegistry()
	owner := host.NewNode("owner")
	reg.RegisterDefault("fade", heightTransition(0, 1, time.Second))
	reg.SetOverride(owner, "fade", heightTransition(0, 1, 2*time.Second))
	reg.ClearOverrides(owner)

	got, err := reg.Resolve(owner, "fade")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.Timing.Duration != time.Second {
		t.Errorf("Expected default after ClearOverrides, got %v", got.Timing.Duration)
	}
}

func TestRegistry_ReducedMotionZeroesDuration(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterDefault("fade", heightTransition(0, 1, time.Second))
	reg.SetReducedMotion(true)

	got, err := reg.Resolve(host.NewNode("n"), "fade")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.Timing.Duration != 0 {
		t.Errorf("Expected zero duration under reduced motion, got %v", got.Timing.Duration)
	}
	if len(got.Keyframes) != 2 {
		t.Errorf("Reduced motion dropped keyframes: %d", len(got.Keyframes))
	}

	reg.SetReducedMotion(false)
	got, _ = reg.Resolve(host.NewNode("n"), "fade")
	if got.Timing.Duration != time.Second {
		t.Errorf("Expected restored duration, got %v", got.Timing.Duration)
	}
}

func TestCurveByName(t *testing.T) {
	if CurveByName("linear")(0.5) != 0.5 {
		t.Error("linear curve should be identity")
	}
	if CurveByName("unknown-easing")(0.25) != 0.25 {
		t.Error("unknown easing should degrade to linear")
	}
	eased := CurveByName("ease-in")(0.5)
	if eased >= 0.5 {
		t.Errorf("ease-in at 0.5 should be below 0.5, got %f", eased)
	}
	for _, name := range []string{"ease", "ease-in", "ease-out", "ease-in-out"} {
		fn := CurveByName(name)
		if fn(0) != 0 || fn(1) != 1 {
			t.Errorf("%s curve does not preserve endpoints", name)
		}
	}
}
