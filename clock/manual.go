package clock

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Clock whose time only moves when Advance is called. Callbacks run synchronously on the caller's
// goroutine, in due order.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

func NewManual() *Manual {
	return &Manual{}
}

type manualTimer struct {
	clock   *Manual
	seq     int
	period  time.Duration
	next    time.Duration
	fn      func()
	stopped bool
}

func (m *Manual) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		panic("clock: non-positive period")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{
		clock:  m,
		seq:    m.seq,
		period: d,
		next:   m.now + d,
		fn:     fn,
	}
	m.timers = append(m.timers, t)
	return t
}

// Now is the time elapsed since the clock was created.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Active counts timers that haven't been stopped.
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// Advance moves time forward by d, firing every callback that falls due on the way.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		t := m.nextDue(target)
		if t == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = t.next
		t.next += t.period
		fn := t.fn
		m.mu.Unlock()

		fn()
	}
}

func (m *Manual) nextDue(target time.Duration) *manualTimer {
	due := make([]*manualTimer, 0, len(m.timers))
	for _, t := range m.timers {
		if !t.stopped && t.next <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].next == due[j].next {
			return due[i].seq < due[j].seq
		}
		return due[i].next < due[j].next
	})
	return due[0]
}

func (t *manualTimer) Stop() {
	m := t.clock
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	for i, other := range m.timers {
		if other == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			break
		}
	}
}
