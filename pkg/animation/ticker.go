// Package animation is the animation service for Facet widgets.
//
// The service has three layers:
//
//   - [Ticker] and [StepTickers]: the frame-loop timing primitive. The
//     embedding shell calls StepTickers once per frame; tests drive it with a
//     fake clock.
//
//   - [Transition] and [Registry]: named transitions (keyframes plus timing)
//     with process-wide defaults and per-owner overrides, resolved by name at
//     the moment a widget starts animating.
//
//   - [Run] and [StopRunning]: execute a transition against a [host.Node],
//     returning a [Handle] that resolves when the animation finishes or is
//     stopped.
//
// Scheduling is single-threaded and cooperative: all ticker callbacks run on
// the frame loop, so widget code observes animation completion without locks.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by the frame loop via [StepTickers]. Most code should use [Run]
// rather than a bare Ticker.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool { return t.isActive }

// StepTickers advances all active tickers. Called once per frame by the
// shell's frame loop, or by the test harness pump.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy so callbacks can start or stop tickers without deadlocking.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			elapsed := Now().Sub(ticker.start)
			ticker.callback(elapsed)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
