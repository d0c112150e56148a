package event

// Handler receives a dispatched event.
type Handler func(Event)

// Bus is a synchronous publish-subscribe dispatcher. Emit delivers to the
// listeners of the event's type in subscription order before returning.
// The world is single-threaded and frame-stepped, so no locking is needed.
type Bus struct {
	listeners [typeCount][]Handler
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for one event type.
func (b *Bus) Subscribe(t Type, h Handler) {
	if t < 0 || t >= typeCount || h == nil {
		return
	}
	b.listeners[t] = append(b.listeners[t], h)
}

// Emit dispatches ev to all handlers subscribed to its type.
func (b *Bus) Emit(ev Event) {
	if ev.Type < 0 || ev.Type >= typeCount {
		return
	}
	for _, h := range b.listeners[ev.Type] {
		h(ev)
	}
}
