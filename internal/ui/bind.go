package ui

import (
	"fmt"

	"github.com/san-kum/simview/internal/format"
)

// Bind wires the control with the given id to an initial value and a
// change callback. The initial value is applied according to the control's
// kind. Range controls additionally get a live value label, named
// "<id>-value", inserted immediately after them and kept in sync on every
// input event; suffix is appended to the label text. onInput receives the
// kind-appropriate current value after each user edit.
func Bind(doc Document, id string, initial any, onInput func(any), suffix string) error {
	el := doc.ElementByID(id)
	if el == nil {
		return fmt.Errorf("%w: %q", ErrNoSuchElement, id)
	}
	if err := el.SetValue(initial); err != nil {
		return fmt.Errorf("bind %q: %w", id, err)
	}

	var label Label
	if el.Kind() == KindRange {
		label = doc.CreateLabel(id + "-value")
		label.SetText(labelText(el.Value(), suffix))
		doc.InsertAfter(el, label)
	}

	el.Input().Subscribe(func(args ...any) {
		v := el.Value()
		if label != nil {
			label.SetText(labelText(v, suffix))
		}
		if onInput != nil {
			onInput(v)
		}
	})
	return nil
}

func labelText(v any, suffix string) string {
	if f, ok := v.(float64); ok {
		return format.Format(f, 2) + suffix
	}
	return fmt.Sprint(v) + suffix
}
