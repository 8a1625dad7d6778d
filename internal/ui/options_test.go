package ui

import (
	"errors"
	"testing"
)

type fakeGauge struct {
	Caps
	level   float64
	changed *Event
}

func newFakeGauge() *fakeGauge {
	g := &fakeGauge{}
	g.DefineProperty("level", Prop(
		func() any { return g.level },
		func(v any) error {
			f, ok := v.(float64)
			if !ok {
				return ErrBadValue
			}
			g.level = f
			return nil
		},
	))
	g.changed = g.DefineEvent("changed")
	return g
}

func TestSetOptionsAssignsProperty(t *testing.T) {
	g := newFakeGauge()

	if err := SetOptions(g, Options{"level": 0.75}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.level != 0.75 {
		t.Errorf("expected level 0.75, got %f", g.level)
	}
}

func TestSetOptionsRoutesHandlerToEvent(t *testing.T) {
	g := newFakeGauge()

	var got []any
	err := SetOptions(g, Options{
		"changed": func(args ...any) { got = args },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g.changed.Emit(1.5)
	if len(got) != 1 || got[0] != 1.5 {
		t.Errorf("handler not invoked with emitted args, got %v", got)
	}
}

func TestSetOptionsUnknownKey(t *testing.T) {
	g := newFakeGauge()

	err := SetOptions(g, Options{"missingProp": 1})
	if !errors.Is(err, ErrUnknownOption) {
		t.Errorf("expected ErrUnknownOption, got %v", err)
	}
	if !errors.Is(err, ErrPrecondition) {
		t.Errorf("expected error to wrap ErrPrecondition, got %v", err)
	}
}

func TestSetOptionsNilTarget(t *testing.T) {
	if err := SetOptions(nil, Options{"level": 1.0}); !errors.Is(err, ErrNilTarget) {
		t.Errorf("expected ErrNilTarget, got %v", err)
	}
}

func TestSetOptionsEventNeedsHandler(t *testing.T) {
	g := newFakeGauge()

	if err := SetOptions(g, Options{"changed": 42}); !errors.Is(err, ErrBadValue) {
		t.Errorf("expected ErrBadValue, got %v", err)
	}
}

func TestSetOptionsBadPropertyValue(t *testing.T) {
	g := newFakeGauge()

	if err := SetOptions(g, Options{"level": "high"}); !errors.Is(err, ErrBadValue) {
		t.Errorf("expected ErrBadValue, got %v", err)
	}
}

func TestEventSubscriptionOrder(t *testing.T) {
	var ev Event
	var order []int
	ev.Subscribe(func(...any) { order = append(order, 1) })
	ev.Subscribe(func(...any) { order = append(order, 2) })
	ev.Subscribe(nil)
	ev.Emit()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("expected handlers in subscription order, got %v", order)
	}
	if ev.HandlerCount() != 2 {
		t.Errorf("expected nil handler to be ignored, count %d", ev.HandlerCount())
	}
}
