package ui

import "fmt"

// Options maps member names to literal values or event handlers.
type Options map[string]any

// SetOptions applies opts to target. A key naming an event slot registers
// the supplied handler on it; a key naming a property assigns the value.
// Every key must name a declared member of the target, otherwise the whole
// operation fails. Iteration order is unspecified; the first failure wins.
func SetOptions(target Target, opts Options) error {
	if target == nil {
		return ErrNilTarget
	}
	for key, val := range opts {
		if ev, ok := target.Event(key); ok {
			h, ok := asHandler(val)
			if !ok {
				return fmt.Errorf("%w: event %q needs a handler, got %T", ErrBadValue, key, val)
			}
			ev.Subscribe(h)
			continue
		}
		prop, ok := target.Property(key)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownOption, key)
		}
		if err := prop.Set(val); err != nil {
			return fmt.Errorf("option %q: %w", key, err)
		}
	}
	return nil
}

func asHandler(v any) (Handler, bool) {
	switch h := v.(type) {
	case Handler:
		return h, true
	case func(args ...any):
		return h, true
	case func():
		return func(...any) { h() }, true
	}
	return nil, false
}
