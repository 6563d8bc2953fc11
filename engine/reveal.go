package engine

import (
	"sync"
	"time"

	"linegraph/clock"
)

const (
	TickRevealPeriod  = 600 * time.Millisecond
	PointRevealPeriod = 2500 * time.Millisecond
)

// Inactive is the counter value of a Reveal that isn't running.
const Inactive = -1

// Reveal is a looping counter advanced by a repeating timer. It owns exactly one counter and at most one timer.
// Every Start bumps a generation so a callback from an earlier run can't touch the counter.
type Reveal struct {
	clock    clock.Clock
	period   time.Duration
	initial  int
	advance  func(int) int
	onChange func()

	mu         sync.Mutex
	counter    int
	timer      clock.Timer
	generation uint64
}

func newReveal(c clock.Clock, period time.Duration, initial int, advance func(int) int, onChange func()) *Reveal {
	if onChange == nil {
		onChange = func() {}
	}
	return &Reveal{
		clock:    c,
		period:   period,
		initial:  initial,
		advance:  advance,
		onChange: onChange,
		counter:  Inactive,
	}
}

// NewTickReveal counts from 0 up to totalTicks, one per 600ms, then wraps back to 0. Ticks with index < counter
// are shown.
func NewTickReveal(c clock.Clock, totalTicks int, onChange func()) *Reveal {
	return newReveal(c, TickRevealPeriod, 0, func(prev int) int {
		if prev >= totalTicks {
			return 0
		}
		return prev + 1
	}, onChange)
}

// NewPointReveal starts on point 0 and moves to the next point every 2500ms, wrapping to 0 after the last one.
func NewPointReveal(c clock.Clock, pointCount int, onChange func()) *Reveal {
	return newReveal(c, PointRevealPeriod, 0, func(prev int) int {
		if prev >= pointCount-1 {
			return 0
		}
		return prev + 1
	}, onChange)
}

// Start resets the counter and (re)starts the timer.
func (r *Reveal) Start() {
	r.mu.Lock()
	r.stopLocked()
	r.counter = r.initial
	r.generation++
	generation := r.generation
	r.timer = r.clock.Every(r.period, func() { r.fire(generation) })
	r.mu.Unlock()
}

// Stop cancels the timer and sets the counter back to Inactive.
func (r *Reveal) Stop() {
	r.mu.Lock()
	r.stopLocked()
	r.mu.Unlock()
}

func (r *Reveal) stopLocked() {
	r.generation++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.counter = Inactive
}

func (r *Reveal) fire(generation uint64) {
	r.mu.Lock()
	if generation != r.generation || r.timer == nil {
		// stale
		r.mu.Unlock()
		return
	}
	r.counter = r.advance(r.counter)
	r.mu.Unlock()

	r.onChange()
}

func (r *Reveal) Counter() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counter
}

func (r *Reveal) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timer != nil
}
