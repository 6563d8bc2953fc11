package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastReachesSubscribers(t *testing.T) {
	h := NewHub()
	_, a, cancelA := h.Subscribe()
	defer cancelA()
	_, b, cancelB := h.Subscribe()
	defer cancelB()

	h.Broadcast(&Event{SessionID: "s1", Kind: Frame, Timestamp: 10})

	for _, ch := range []<-chan *Event{a, b} {
		e := <-ch
		assert.Equal(t, &Event{SessionID: "s1", Kind: Frame, Timestamp: 10}, e)
	}
}

func TestBroadcastDoesNotBlockWhenFull(t *testing.T) {
	h := NewHub()
	_, ch, cancel := h.Subscribe()
	defer cancel()

	for i := 0; i < 100; i++ {
		h.Broadcast(&Event{Kind: Frame, Timestamp: i})
	}
	assert.Len(t, ch, cap(ch))
}

func TestCancelClosesChannel(t *testing.T) {
	h := NewHub()
	_, ch, cancel := h.Subscribe()
	require.Equal(t, 1, h.Subscribers())

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, h.Subscribers())

	h.Broadcast(&Event{Kind: Navigated})
}
