package ui

// Handler is a callback registered on an Event slot.
type Handler func(args ...any)

// Event is a named signal slot supporting handler registration. Handlers
// run synchronously, in subscription order, on the goroutine that calls
// Emit. The zero value is ready to use.
type Event struct {
	handlers []Handler
}

func (e *Event) Subscribe(h Handler) {
	if h == nil {
		return
	}
	e.handlers = append(e.handlers, h)
}

func (e *Event) Emit(args ...any) {
	for _, h := range e.handlers {
		h(args...)
	}
}

func (e *Event) HandlerCount() int {
	return len(e.handlers)
}
