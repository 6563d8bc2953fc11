package events

import "sync"

type Kind string

const (
	// Navigated means the session changed dataset, step or view.
	Navigated Kind = "navigated"
	// Frame means an animation advanced and the chart should be redrawn.
	Frame Kind = "frame"
)

type Event struct {
	SessionID string
	Kind      Kind
	Timestamp int
}

type EventHub struct {
	mu   sync.Mutex
	subs map[int]chan *Event
	next int
}

func NewHub() *EventHub {
	return &EventHub{subs: map[int]chan *Event{}}
}

// Subscribe registers a listener. Call cancel to unsubscribe, it closes the channel.
func (h *EventHub) Subscribe() (int, <-chan *Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan *Event, 16)
	h.subs[id] = ch
	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[id]; ok {
			close(c)
			delete(h.subs, id)
		}
	}
	return id, ch, cancel
}

// Broadcast never blocks: a subscriber whose buffer is full misses the event. Every event means "redraw", so a
// missed one is covered by the next.
func (h *EventHub) Broadcast(event *Event) {
	h.mu.Lock()
	for _, ch := range h.subs {
		select {
		case ch <- h.copy(event):
		default:
		}
	}
	h.mu.Unlock()
}

func (h *EventHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *EventHub) copy(e *Event) *Event {
	return &Event{e.SessionID, e.Kind, e.Timestamp}
}
