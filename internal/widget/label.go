package widget

import (
	"fmt"

	"github.com/san-kum/simview/internal/ui"
)

// Label is a read-mostly text element, used for the live value readouts
// inserted after sliders. It fires no input events of its own.
type Label struct {
	id    string
	text  string
	input ui.Event
}

func NewLabel(id, text string) *Label {
	return &Label{id: id, text: text}
}

func (l *Label) ID() string       { return l.id }
func (l *Label) Kind() ui.Kind    { return ui.KindLabel }
func (l *Label) Value() any       { return l.text }
func (l *Label) Text() string     { return l.text }
func (l *Label) SetText(s string) { l.text = s }
func (l *Label) Input() *ui.Event { return &l.input }

func (l *Label) SetValue(v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: label %q wants string, got %T", ui.ErrBadValue, l.id, v)
	}
	l.text = s
	return nil
}

func (l *Label) view() string {
	return "    " + dimmer.Render(l.text)
}
