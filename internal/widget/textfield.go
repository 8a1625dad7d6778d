package widget

import (
	"fmt"

	"github.com/san-kum/simview/internal/ui"
)

// TextField is a free text control.
type TextField struct {
	ui.Caps
	id    string
	title string
	text  string
	input *ui.Event
}

func NewTextField(id, title, text string) *TextField {
	t := &TextField{id: id, title: title, text: text}
	t.DefineProperty("text", ui.Prop(
		func() any { return t.text },
		func(v any) error { return t.SetValue(v) },
	))
	t.input = t.DefineEvent("input")
	return t
}

func (t *TextField) ID() string       { return t.id }
func (t *TextField) Kind() ui.Kind    { return ui.KindText }
func (t *TextField) Value() any       { return t.text }
func (t *TextField) Text() string     { return t.text }
func (t *TextField) Input() *ui.Event { return t.input }

func (t *TextField) SetValue(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: text field %q wants string, got %T", ui.ErrBadValue, t.id, v)
	}
	t.text = s
	return nil
}

// Commit replaces the text (keyboard entry) and fires the input event.
func (t *TextField) Commit(s string) {
	t.text = s
	t.input.Emit(t.text)
}

func (t *TextField) view(focused bool, editing bool, buf string) string {
	val := t.text
	if editing {
		val = buf + "▋"
	}
	if focused {
		return cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-14s", t.title)) + magenta.Render(val)
	}
	return "  " + dim.Render(fmt.Sprintf("%-14s", t.title)) + dim.Render(val)
}
