package widget

import (
	"fmt"

	"github.com/san-kum/simview/internal/ui"
)

// Select is a fixed-options list control. Its value is the selected index.
type Select struct {
	ui.Caps
	id      string
	title   string
	options []string
	index   int
	input   *ui.Event
}

func NewSelect(id, title string, options ...string) *Select {
	s := &Select{id: id, title: title, options: options}
	s.DefineProperty("index", ui.Prop(
		func() any { return s.index },
		func(v any) error { return s.SetValue(v) },
	))
	s.input = s.DefineEvent("input")
	return s
}

func (s *Select) ID() string        { return s.id }
func (s *Select) Kind() ui.Kind     { return ui.KindSelect }
func (s *Select) Value() any        { return s.index }
func (s *Select) Index() int        { return s.index }
func (s *Select) Options() []string { return s.options }
func (s *Select) Input() *ui.Event  { return s.input }

func (s *Select) Selected() string {
	if s.index < 0 || s.index >= len(s.options) {
		return ""
	}
	return s.options[s.index]
}

// SetValue accepts an option index or an option name.
func (s *Select) SetValue(v any) error {
	switch val := v.(type) {
	case int:
		if val < 0 || val >= len(s.options) {
			return fmt.Errorf("%w: select %q index %d out of range", ui.ErrBadValue, s.id, val)
		}
		s.index = val
		return nil
	case string:
		for i, opt := range s.options {
			if opt == val {
				s.index = i
				return nil
			}
		}
		return fmt.Errorf("%w: select %q has no option %q", ui.ErrBadValue, s.id, val)
	}
	return fmt.Errorf("%w: select %q wants an index or option name, got %T", ui.ErrBadValue, s.id, v)
}

// Cycle moves the selection by delta with wrap-around and fires the input
// event.
func (s *Select) Cycle(delta int) {
	if len(s.options) == 0 {
		return
	}
	s.index = (s.index + delta + len(s.options)) % len(s.options)
	s.input.Emit(s.index)
}

func (s *Select) view(focused bool) string {
	opt := s.Selected()
	if focused {
		return cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-14s", s.title)) + magenta.Render("◂ "+opt+" ▸")
	}
	return "  " + dim.Render(fmt.Sprintf("%-14s", s.title)) + dim.Render(opt)
}
