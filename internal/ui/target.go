package ui

// Property is a single named settable slot on a Target.
type Property interface {
	Get() any
	Set(value any) error
}

// Target describes a configurable component through an explicit capability
// set: named properties and named event slots. Components declare their
// members up front instead of being introspected at runtime.
type Target interface {
	Property(name string) (Property, bool)
	Event(name string) (*Event, bool)
}

// Prop builds a Property from a getter and setter pair.
func Prop(get func() any, set func(any) error) Property {
	return funcProperty{get: get, set: set}
}

type funcProperty struct {
	get func() any
	set func(any) error
}

func (p funcProperty) Get() any        { return p.get() }
func (p funcProperty) Set(v any) error { return p.set(v) }

// Caps is a reusable Target implementation. Components embed it and
// declare their members in the constructor.
type Caps struct {
	props  map[string]Property
	events map[string]*Event
}

func (c *Caps) DefineProperty(name string, p Property) {
	if c.props == nil {
		c.props = make(map[string]Property)
	}
	c.props[name] = p
}

// DefineEvent declares a named event slot and returns it for emitting.
func (c *Caps) DefineEvent(name string) *Event {
	if c.events == nil {
		c.events = make(map[string]*Event)
	}
	ev := &Event{}
	c.events[name] = ev
	return ev
}

func (c *Caps) Property(name string) (Property, bool) {
	p, ok := c.props[name]
	return p, ok
}

func (c *Caps) Event(name string) (*Event, bool) {
	ev, ok := c.events[name]
	return ev, ok
}
