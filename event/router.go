package event

// Handler processes specific event types
// Sinks implement this interface to receive routed events
type Handler interface {
	// HandleEvent is called synchronously during dispatch
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches queued events to registered handlers
// Handlers for one type run in registration order
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
}

func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// DispatchAll consumes pending events and routes them in FIFO order
// Returns the number of events consumed
func (r *Router) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	return len(events)
}

// HandlerFunc adapts a function to Handler for the given types
type HandlerFunc struct {
	Types []EventType
	Fn    func(GameEvent)
}

func (f HandlerFunc) HandleEvent(ev GameEvent) { f.Fn(ev) }

func (f HandlerFunc) EventTypes() []EventType { return f.Types }
