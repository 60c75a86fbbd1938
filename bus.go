package rectedit

import "errors"

// ErrNotListening is returned by Bus.Unsubscribe when the handle does
// not correspond to a currently registered callback (already
// unsubscribed, zero-value, or from another bus).
var ErrNotListening = errors.New("rectedit: callback not listening")

// Handle identifies a registered callback so it can be unsubscribed.
// Function values are not comparable in Go, so subscription identity
// lives in the handle rather than the callback itself.
type Handle struct {
	id    uint64
	event EventType
}

type listener struct {
	id uint64
	fn func(Event)
}

// Bus dispatches events to registered callbacks.
//
//   - Single-threaded, synchronous dispatch
//   - Multiple callbacks (including duplicates) may listen for one type
//   - Callbacks are invoked in registration order
//   - Notify iterates a snapshot: a callback that subscribes or
//     unsubscribes during dispatch affects the next Notify, not the
//     current one
//
// A Bus is owned by its Editor; it is not safe for concurrent use.
type Bus struct {
	listeners map[EventType][]listener
	nextID    uint64
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{listeners: make(map[EventType][]listener)}
}

// Listen appends fn to the callback list for event type t and returns a
// handle for unsubscribing. O(1) amortized.
func (b *Bus) Listen(t EventType, fn func(Event)) Handle {
	b.nextID++
	b.listeners[t] = append(b.listeners[t], listener{id: b.nextID, fn: fn})
	return Handle{id: b.nextID, event: t}
}

// Unsubscribe removes the callback identified by h. Returns
// ErrNotListening if the handle is spent or was never registered here.
func (b *Bus) Unsubscribe(h Handle) error {
	s := b.listeners[h.event]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			b.listeners[h.event] = s[:len(s)-1]
			return nil
		}
	}
	return ErrNotListening
}

// Notify synchronously invokes every callback currently registered for
// the event's type, in registration order. The listener list is
// snapshotted before dispatch, so mid-dispatch mutation is safe.
func (b *Bus) Notify(ev Event) {
	s := b.listeners[ev.Type()]
	if len(s) == 0 {
		return
	}
	snapshot := make([]listener, len(s))
	copy(snapshot, s)
	for _, l := range snapshot {
		l.fn(ev)
	}
}

// ListenerCount returns the number of callbacks registered for t.
func (b *Bus) ListenerCount(t EventType) int {
	return len(b.listeners[t])
}
