package animation

import (
	"sync"
	"time"

	"github.com/go-drift/facet/pkg/host"
)

var (
	runningMu sync.Mutex
	running   = make(map[*host.Node][]*Handle)
)

// Handle tracks one running animation on a node.
//
// A handle settles exactly once: either finished (the final keyframe was
// reached) or stopped (interrupted by [StopRunning]). Completion callbacks
// run on the frame loop, or synchronously from [Run]/[StopRunning] when the
// animation settles inside that call.
type Handle struct {
	node       *host.Node
	ticker     *Ticker
	done       chan struct{}
	settled    bool
	finished   bool
	onComplete []func(finished bool)
}

// Done returns a channel closed when the animation settles.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Settled reports whether the animation has settled.
func (h *Handle) Settled() bool { return h.settled }

// Finished reports whether the animation settled by reaching its final
// keyframe. False while running and after an interruption.
func (h *Handle) Finished() bool { return h.settled && h.finished }

// OnComplete registers a callback invoked when the animation settles, with
// finished reporting whether the final keyframe was reached. If the handle
// has already settled the callback runs immediately.
func (h *Handle) OnComplete(fn func(finished bool)) {
	if fn == nil {
		return
	}
	if h.settled {
		fn(h.finished)
		return
	}
	h.onComplete = append(h.onComplete, fn)
}

func (h *Handle) settle(finished bool) {
	if h.settled {
		return
	}
	h.settled = true
	h.finished = finished
	if h.ticker != nil {
		h.ticker.Stop()
		h.ticker = nil
	}
	removeRunning(h)
	close(h.done)
	callbacks := h.onComplete
	h.onComplete = nil
	for _, fn := range callbacks {
		fn(finished)
	}
}

// Run plays a transition against the node, writing interpolated height and
// opacity each frame, and returns a handle that settles on completion.
//
// Keyframes must be pixel-resolved (see [Transition.ResolveAuto]); a
// remaining Auto height animates as zero. An empty transition or a
// non-positive duration applies the final keyframe and settles finished
// before Run returns.
func Run(node *host.Node, t Transition) *Handle {
	h := &Handle{node: node, done: make(chan struct{})}

	if t.IsZero() {
		h.settle(true)
		return h
	}

	final := t.Keyframes[len(t.Keyframes)-1]
	if t.Timing.Duration <= 0 {
		applyKeyframe(node, final)
		h.settle(true)
		return h
	}

	curve := CurveByName(t.Timing.Easing)
	addRunning(h)

	h.ticker = NewTicker(func(elapsed time.Duration) {
		progress := float64(elapsed) / float64(t.Timing.Duration)
		if progress >= 1 {
			applyKeyframe(node, final)
			h.settle(true)
			return
		}
		applyKeyframe(node, sampleKeyframes(t.Keyframes, curve(progress)))
	})
	h.ticker.Start()
	return h
}

// StopRunning stops every animation currently running on the node. Each
// stopped handle settles unfinished before StopRunning returns, so a caller
// may start a new animation immediately without two writers racing on the
// node's style.
func StopRunning(node *host.Node) {
	runningMu.Lock()
	handles := append([]*Handle(nil), running[node]...)
	runningMu.Unlock()
	for _, h := range handles {
		h.settle(false)
	}
}

// sampleKeyframes interpolates the keyframe track at eased progress t in
// [0, 1].
func sampleKeyframes(frames []Keyframe, t float64) Keyframe {
	if len(frames) == 1 {
		return frames[0]
	}
	pos := t * float64(len(frames)-1)
	i := int(pos)
	if i >= len(frames)-1 {
		return frames[len(frames)-1]
	}
	frac := pos - float64(i)
	a, b := frames[i], frames[i+1]
	return Keyframe{
		Height:  host.Px(lerp(a.Height.Px(), b.Height.Px(), frac)),
		Opacity: lerp(a.Opacity, b.Opacity, frac),
	}
}

func applyKeyframe(node *host.Node, kf Keyframe) {
	node.SetHeight(kf.Height)
	node.SetOpacity(kf.Opacity)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func addRunning(h *Handle) {
	runningMu.Lock()
	running[h.node] = append(running[h.node], h)
	runningMu.Unlock()
}

func removeRunning(h *Handle) {
	runningMu.Lock()
	handles := running[h.node]
	for i, other := range handles {
		if other == h {
			running[h.node] = append(handles[:i], handles[i+1:]...)
			break
		}
	}
	if len(running[h.node]) == 0 {
		delete(running, h.node)
	}
	runningMu.Unlock()
}
