package widget

import (
	"fmt"
	"strings"

	"github.com/san-kum/simview/internal/geom"
	"github.com/san-kum/simview/internal/ui"
)

// Slider is a numeric range control. Values are clamped to [min, max].
type Slider struct {
	ui.Caps
	id    string
	title string
	min   float64
	max   float64
	step  float64
	val   float64
	input *ui.Event
}

func NewSlider(id, title string, min, max, step float64) *Slider {
	s := &Slider{id: id, title: title, min: min, max: max, step: step, val: min}
	s.DefineProperty("value", ui.Prop(
		func() any { return s.val },
		func(v any) error { return s.SetValue(v) },
	))
	s.DefineProperty("step", ui.Prop(
		func() any { return s.step },
		func(v any) error {
			f, ok := toFloat(v)
			if !ok {
				return fmt.Errorf("%w: slider %q step wants a number, got %T", ui.ErrBadValue, s.id, v)
			}
			s.step = f
			return nil
		},
	))
	s.input = s.DefineEvent("input")
	return s
}

func (s *Slider) ID() string       { return s.id }
func (s *Slider) Kind() ui.Kind    { return ui.KindRange }
func (s *Slider) Value() any       { return s.val }
func (s *Slider) Float() float64   { return s.val }
func (s *Slider) Min() float64     { return s.min }
func (s *Slider) Max() float64     { return s.max }
func (s *Slider) Input() *ui.Event { return s.input }

func (s *Slider) SetValue(v any) error {
	f, ok := toFloat(v)
	if !ok {
		return fmt.Errorf("%w: slider %q wants a number, got %T", ui.ErrBadValue, s.id, v)
	}
	s.val = geom.Clamp(f, s.min, s.max)
	return nil
}

// Adjust moves the slider by dir steps and fires the input event.
func (s *Slider) Adjust(dir int) {
	s.val = geom.Clamp(s.val+float64(dir)*s.step, s.min, s.max)
	s.input.Emit(s.val)
}

// Commit sets the value directly (keyboard entry) and fires the input event.
func (s *Slider) Commit(v float64) {
	s.val = geom.Clamp(v, s.min, s.max)
	s.input.Emit(s.val)
}

func (s *Slider) bar(width int) string {
	span := s.max - s.min
	if span <= 0 {
		span = 1
	}
	pos := int((s.val - s.min) / span * float64(width-1))
	if pos < 0 {
		pos = 0
	}
	if pos > width-1 {
		pos = width - 1
	}
	return strings.Repeat("─", pos) + "●" + strings.Repeat("─", width-1-pos)
}

func (s *Slider) view(focused bool) string {
	if focused {
		return cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-14s", s.title)) + magenta.Render(s.bar(20))
	}
	return "  " + dim.Render(fmt.Sprintf("%-14s", s.title)) + dimmer.Render(s.bar(20))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
