// Package clock schedules the repeating callbacks that drive chart animations. Real uses time.Ticker; Manual
// is advanced by hand so animation tests don't sleep.
package clock

import (
	"sync"
	"time"
)

// Timer is a handle to a repeating callback.
type Timer interface {
	// Stop cancels the timer. It's safe to call more than once. A callback that was already firing may still
	// finish, so owners must drop stale fires themselves.
	Stop()
}

type Clock interface {
	// Every calls fn every d until the returned Timer is stopped.
	Every(d time.Duration, fn func()) Timer
}

type Real struct{}

func (Real) Every(d time.Duration, fn func()) Timer {
	t := &realTimer{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type realTimer struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *realTimer) run(fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			select {
			case <-t.done:
				return
			default:
			}
			fn()
		}
	}
}

func (t *realTimer) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}
