package listsync

import (
	"sync"
	"time"

	"github.com/onesocial/cli/pkg/clock"
)

// DefaultDebounce is used when a Gate is built with a non-positive delay.
const DefaultDebounce = 400 * time.Millisecond

// Gate delays an effect until its input has been quiet for the configured
// delay. Scheduling again before the delay elapses replaces the pending
// value, so only the last one reaches the effect.
type Gate[T any] struct {
	mu      sync.Mutex
	clock   clock.Clock
	delay   time.Duration
	effect  func(T)
	timer   clock.Timer
	pending T
	armed   bool
	// gen guards against a timer that already started firing when it was
	// replaced or stopped.
	gen     uint64
	stopped bool
}

// NewGate builds a Gate that runs effect on c after delay of quiet.
func NewGate[T any](c clock.Clock, delay time.Duration, effect func(T)) *Gate[T] {
	if c == nil {
		c = clock.Real()
	}
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Gate[T]{clock: c, delay: delay, effect: effect}
}

// Delay returns the gate's default delay.
func (g *Gate[T]) Delay() time.Duration { return g.delay }

// Schedule replaces any pending value with v and restarts the wait. A
// non-positive delay uses the gate default. Returns false after Stop.
func (g *Gate[T]) Schedule(v T, delay time.Duration) bool {
	if delay <= 0 {
		delay = g.delay
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return false
	}
	g.disarm()
	g.gen++
	gen := g.gen
	g.pending = v
	g.armed = true
	g.timer = g.clock.AfterFunc(delay, func() { g.fire(gen) })
	return true
}

// Cancel drops the pending value, if any.
func (g *Gate[T]) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.disarm()
	g.gen++
}

// Flush runs the effect now with the pending value. It reports whether a
// value was pending.
func (g *Gate[T]) Flush() bool {
	g.mu.Lock()
	if !g.armed || g.stopped {
		g.mu.Unlock()
		return false
	}
	v := g.pending
	g.disarm()
	g.gen++
	g.mu.Unlock()

	g.effect(v)
	return true
}

// Stop cancels the pending value and refuses further scheduling.
func (g *Gate[T]) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.disarm()
	g.gen++
	g.stopped = true
}

// Pending reports whether a value is waiting to fire.
func (g *Gate[T]) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.armed
}

// disarm must be called with mu held.
func (g *Gate[T]) disarm() {
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	var zero T
	g.pending = zero
	g.armed = false
}

func (g *Gate[T]) fire(gen uint64) {
	g.mu.Lock()
	if gen != g.gen || !g.armed || g.stopped {
		g.mu.Unlock()
		return
	}
	v := g.pending
	var zero T
	g.pending = zero
	g.armed = false
	g.timer = nil
	g.mu.Unlock()

	g.effect(v)
}
