package widget

import (
	"fmt"

	"github.com/san-kum/simview/internal/ui"
)

// Checkbox is a boolean toggle control.
type Checkbox struct {
	ui.Caps
	id      string
	title   string
	checked bool
	input   *ui.Event
}

func NewCheckbox(id, title string, checked bool) *Checkbox {
	c := &Checkbox{id: id, title: title, checked: checked}
	c.DefineProperty("checked", ui.Prop(
		func() any { return c.checked },
		func(v any) error { return c.SetValue(v) },
	))
	c.input = c.DefineEvent("input")
	return c
}

func (c *Checkbox) ID() string       { return c.id }
func (c *Checkbox) Kind() ui.Kind    { return ui.KindCheckbox }
func (c *Checkbox) Value() any       { return c.checked }
func (c *Checkbox) Checked() bool    { return c.checked }
func (c *Checkbox) Input() *ui.Event { return c.input }

func (c *Checkbox) SetValue(v any) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("%w: checkbox %q wants bool, got %T", ui.ErrBadValue, c.id, v)
	}
	c.checked = b
	return nil
}

// Toggle flips the box and fires the input event.
func (c *Checkbox) Toggle() {
	c.checked = !c.checked
	c.input.Emit(c.checked)
}

func (c *Checkbox) view(focused bool) string {
	mark := "[ ]"
	if c.checked {
		mark = "[x]"
	}
	if focused {
		return cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-14s", c.title)) + magenta.Render(mark)
	}
	return "  " + dim.Render(fmt.Sprintf("%-14s", c.title)) + dim.Render(mark)
}
