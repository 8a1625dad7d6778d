package widget

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/simview/internal/ui"
)

// Panel is an ordered column of controls addressable by id. It implements
// ui.Document and handles focus traversal and keyboard editing.
type Panel struct {
	title   string
	items   []ui.Element
	byID    map[string]ui.Element
	focus   int
	editing bool
	editBuf string
}

func NewPanel(title string, items ...ui.Element) *Panel {
	p := &Panel{title: title, byID: make(map[string]ui.Element)}
	for _, el := range items {
		p.Add(el)
	}
	return p
}

func (p *Panel) Add(el ui.Element) {
	p.items = append(p.items, el)
	p.byID[el.ID()] = el
	// Keep the cursor off leading labels.
	if p.items[p.focus].Kind() == ui.KindLabel && el.Kind() != ui.KindLabel {
		p.focus = len(p.items) - 1
	}
}

func (p *Panel) Elements() []ui.Element { return p.items }

func (p *Panel) ElementByID(id string) ui.Element {
	return p.byID[id]
}

// Query resolves a selector of the form "#id" or a bare id.
func (p *Panel) Query(selector string) ui.Element {
	return p.byID[strings.TrimPrefix(selector, "#")]
}

func (p *Panel) CreateLabel(id string) ui.Label {
	return NewLabel(id, "")
}

// InsertAfter places el immediately after ref in the render order. An
// unknown ref appends.
func (p *Panel) InsertAfter(ref, el ui.Element) {
	p.byID[el.ID()] = el
	for i, it := range p.items {
		if it == ref {
			p.items = append(p.items[:i+1], append([]ui.Element{el}, p.items[i+1:]...)...)
			if p.focus > i {
				p.focus++
			}
			return
		}
	}
	p.items = append(p.items, el)
}

// Editing reports whether an inline edit buffer is open; callers should
// not steal keys from the panel while it is.
func (p *Panel) Editing() bool { return p.editing }

// Focused returns the control under the cursor, never a label.
func (p *Panel) Focused() ui.Element {
	if p.focus < 0 || p.focus >= len(p.items) {
		return nil
	}
	return p.items[p.focus]
}

func (p *Panel) moveFocus(dir int) {
	if len(p.items) == 0 {
		return
	}
	i := p.focus
	for range p.items {
		i += dir
		if i < 0 || i >= len(p.items) {
			return
		}
		if p.items[i].Kind() != ui.KindLabel {
			p.focus = i
			return
		}
	}
}

// HandleKey processes one key press. Up/down move focus, left/right adjust
// sliders and selects, space toggles checkboxes, enter starts or commits
// inline editing on sliders and text fields.
func (p *Panel) HandleKey(msg tea.KeyMsg) {
	if p.editing {
		p.editKey(msg)
		return
	}

	el := p.Focused()
	switch msg.String() {
	case "up", "k":
		p.moveFocus(-1)
	case "down", "j":
		p.moveFocus(1)
	case "left", "h":
		switch c := el.(type) {
		case *Slider:
			c.Adjust(-1)
		case *Select:
			c.Cycle(-1)
		}
	case "right", "l":
		switch c := el.(type) {
		case *Slider:
			c.Adjust(1)
		case *Select:
			c.Cycle(1)
		}
	case " ":
		if c, ok := el.(*Checkbox); ok {
			c.Toggle()
		}
	case "enter":
		switch c := el.(type) {
		case *Checkbox:
			c.Toggle()
		case *Select:
			c.Cycle(1)
		case *Slider:
			p.editing = true
			p.editBuf = fmt.Sprintf("%.2f", c.Float())
		case *TextField:
			p.editing = true
			p.editBuf = c.Text()
		}
	}
}

func (p *Panel) editKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "enter":
		switch c := p.Focused().(type) {
		case *Slider:
			if v, err := strconv.ParseFloat(p.editBuf, 64); err == nil {
				c.Commit(v)
			}
		case *TextField:
			c.Commit(p.editBuf)
		}
		p.editing = false
		p.editBuf = ""
	case "escape", "esc":
		p.editing = false
		p.editBuf = ""
	case "backspace":
		if len(p.editBuf) > 0 {
			p.editBuf = p.editBuf[:len(p.editBuf)-1]
		}
	default:
		s := msg.String()
		if len(s) != 1 {
			return
		}
		if _, isText := p.Focused().(*TextField); isText {
			p.editBuf += s
			return
		}
		c := s[0]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' {
			p.editBuf += s
		}
	}
}

func (p *Panel) View() string {
	var b strings.Builder

	b.WriteString("\n      " + cyan.Render(p.title) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 34)) + "\n\n")

	for i, el := range p.items {
		focused := i == p.focus
		var row string
		switch c := el.(type) {
		case *Checkbox:
			row = c.view(focused)
		case *Slider:
			row = c.view(focused)
		case *Select:
			row = c.view(focused)
		case *TextField:
			row = c.view(focused, focused && p.editing, p.editBuf)
		case *Label:
			row = c.view()
		default:
			row = dim.Render(el.ID())
		}
		b.WriteString("      " + row + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  space toggle") + "\n")
	return b.String()
}
