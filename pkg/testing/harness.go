// Package testing provides deterministic test support for Facet widgets:
// a fake animation clock and a frame pump that drives transitions to
// completion without real time.
package testing

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-drift/facet/pkg/animation"
)

// FramePeriod is the simulated frame interval used by Pump.
const FramePeriod = 16 * time.Millisecond

// ErrSettleTimeout is returned when Settle exceeds its frame budget.
var ErrSettleTimeout = errors.New("Settle timed out: animations did not settle")

// Harness drives the animation frame loop against a fake clock.
//
// A test creates one harness, starts transitions, and pumps frames until
// they settle. Because tickers run synchronously inside StepTickers, every
// widget side effect of a frame has happened by the time Pump returns.
type Harness struct {
	clock     *FakeClock
	prevClock animation.Clock
}

// NewHarness creates a harness and installs its fake clock as the animation
// clock. Call Cleanup when done, or use NewHarnessWithT.
func NewHarness() *Harness {
	clk := NewFakeClock()
	return &Harness{
		clock:     clk,
		prevClock: animation.SetClock(clk),
	}
}

// NewHarnessWithT creates a harness that restores the animation clock via
// t.Cleanup. This is the recommended constructor for tests.
func NewHarnessWithT(t *testing.T) *Harness {
	h := NewHarness()
	t.Cleanup(h.Cleanup)
	return h
}

// Cleanup restores the previous animation clock.
func (h *Harness) Cleanup() {
	animation.SetClock(h.prevClock)
}

// Clock returns the fake clock.
func (h *Harness) Clock() *FakeClock { return h.clock }

// Pump advances the clock by d and runs one frame.
func (h *Harness) Pump(d time.Duration) {
	h.clock.Advance(d)
	animation.StepTickers()
}

// Settle pumps frames until no tickers remain active, up to maxFrames.
// Returns ErrSettleTimeout if animations are still running afterwards.
func (h *Harness) Settle(maxFrames int) error {
	for i := 0; i < maxFrames; i++ {
		if !animation.HasActiveTickers() {
			return nil
		}
		h.Pump(FramePeriod)
	}
	if animation.HasActiveTickers() {
		return ErrSettleTimeout
	}
	return nil
}

// MustSettle is Settle with a default budget, failing the test on timeout.
func (h *Harness) MustSettle(t *testing.T) {
	t.Helper()
	if err := h.Settle(1000); err != nil {
		t.Fatal(err)
	}
}

// FakeClock is the controllable time source the harness installs as the
// animation clock. All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
