package engine

// EventHandler processes specific event types
// Handlers implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously after the emitting operation has completed
	HandleEvent(event GameEvent)

	// EventTypes returns the event types this handler processes
	// The router uses this for registration
	EventTypes() []EventType
}

// EventRouter dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the goroutine that owns the Session
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Events pushed while dispatching are delivered in the same drain
type EventRouter struct {
	handlers    map[EventType][]EventHandler
	queue       []GameEvent
	dispatching bool
}

// NewEventRouter creates an empty router
func NewEventRouter() *EventRouter {
	return &EventRouter{
		handlers: make(map[EventType][]EventHandler),
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Push queues an event for the next DispatchAll
func (r *EventRouter) Push(ev GameEvent) {
	r.queue = append(r.queue, ev)
}

// Pending returns the number of queued events
func (r *EventRouter) Pending() int {
	return len(r.queue)
}

// DispatchAll drains the queue in FIFO order
// Re-entrant calls from inside a handler return immediately; the outer
// drain delivers anything they queued
func (r *EventRouter) DispatchAll() {
	if r.dispatching {
		return
	}
	r.dispatching = true
	defer func() { r.dispatching = false }()

	for len(r.queue) > 0 {
		ev := r.queue[0]
		r.queue = r.queue[1:]
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	r.queue = nil
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *EventRouter) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}

// handlerFunc adapts a function to EventHandler
type handlerFunc struct {
	fn    func(GameEvent)
	types []EventType
}

func (h handlerFunc) HandleEvent(ev GameEvent) { h.fn(ev) }

func (h handlerFunc) EventTypes() []EventType { return h.types }

// HandlerFunc wraps fn as a handler for the given types, or for every type
// when none are listed
func HandlerFunc(fn func(GameEvent), types ...EventType) EventHandler {
	if len(types) == 0 {
		types = AllEventTypes()
	}
	return handlerFunc{fn: fn, types: types}
}

// AllEventTypes lists every event type
func AllEventTypes() []EventType {
	out := make([]EventType, 0, eventTypeCount)
	for t := EventType(0); t < eventTypeCount; t++ {
		out = append(out, t)
	}
	return out
}
