package widget

import (
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/simview/internal/ui"
)

func testPanel() *Panel {
	return NewPanel("test",
		NewCheckbox("trail", "show trail", false),
		NewSlider("theta", "initial angle", -3, 3, 0.1),
		NewSelect("theme", "theme", "dark", "light"),
		NewTextField("title", "title", ""),
	)
}

func TestBindCheckbox(t *testing.T) {
	p := testPanel()

	var got any
	err := ui.Bind(p, "trail", true, func(v any) { got = v }, "")
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	cb := p.ElementByID("trail").(*Checkbox)
	if !cb.Checked() {
		t.Error("expected initial value to set checked state")
	}

	cb.Toggle()
	if got != false {
		t.Errorf("expected callback with false after toggle, got %v", got)
	}
}

func TestBindSliderCreatesLabel(t *testing.T) {
	p := testPanel()

	if err := ui.Bind(p, "theta", 0.5, nil, " rad"); err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	el := p.ElementByID("theta-value")
	if el == nil {
		t.Fatal("expected a value label next to the slider")
	}
	label := el.(ui.Label)
	if !strings.HasSuffix(label.Text(), " rad") {
		t.Errorf("expected suffix in label text, got %q", label.Text())
	}

	// Label sits immediately after the slider in render order.
	items := p.Elements()
	for i, it := range items {
		if it.ID() == "theta" {
			if i+1 >= len(items) || items[i+1].ID() != "theta-value" {
				t.Error("label not inserted directly after slider")
			}
		}
	}
}

func TestBindSliderSyncsLabelAndCallback(t *testing.T) {
	p := testPanel()

	var got []float64
	err := ui.Bind(p, "theta", 1.0, func(v any) { got = append(got, v.(float64)) }, "°")
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	s := p.ElementByID("theta").(*Slider)
	before := p.ElementByID("theta-value").(ui.Label).Text()

	s.Adjust(1)
	after := p.ElementByID("theta-value").(ui.Label).Text()

	if len(got) != 1 || got[0] <= 1.0 {
		t.Errorf("expected callback with increased value, got %v", got)
	}
	if before == after {
		t.Error("expected label text to change with the slider")
	}
	if !strings.HasSuffix(after, "°") {
		t.Errorf("expected suffix preserved, got %q", after)
	}
}

func TestBindSelectAndText(t *testing.T) {
	p := testPanel()

	var idx any
	if err := ui.Bind(p, "theme", 1, func(v any) { idx = v }, ""); err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	sel := p.ElementByID("theme").(*Select)
	if sel.Index() != 1 {
		t.Errorf("expected initial index 1, got %d", sel.Index())
	}
	sel.Cycle(1)
	if idx != 0 {
		t.Errorf("expected wrap-around to index 0, got %v", idx)
	}

	var text any
	if err := ui.Bind(p, "title", "pendulum", func(v any) { text = v }, ""); err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	tf := p.ElementByID("title").(*TextField)
	if tf.Text() != "pendulum" {
		t.Errorf("expected initial text applied, got %q", tf.Text())
	}
	tf.Commit("lab")
	if text != "lab" {
		t.Errorf("expected callback with committed text, got %v", text)
	}
}

func TestBindMissingID(t *testing.T) {
	p := testPanel()

	err := ui.Bind(p, "nope", 1.0, nil, "")
	if !errors.Is(err, ui.ErrNoSuchElement) {
		t.Errorf("expected ErrNoSuchElement, got %v", err)
	}
}

func TestBindWrongInitialType(t *testing.T) {
	p := testPanel()

	err := ui.Bind(p, "trail", "yes", nil, "")
	if !errors.Is(err, ui.ErrBadValue) {
		t.Errorf("expected ErrBadValue, got %v", err)
	}
}

func TestGetElement(t *testing.T) {
	p := testPanel()

	el, err := ui.GetElement(p, "#theta")
	if err != nil || el.ID() != "theta" {
		t.Fatalf("expected slider for #theta, got %v, %v", el, err)
	}

	same, err := ui.GetElement(p, el)
	if err != nil || same != el {
		t.Errorf("expected element handle to pass through, got %v, %v", same, err)
	}

	if _, err := ui.GetElement(p, "#missing"); !errors.Is(err, ui.ErrNoSuchElement) {
		t.Errorf("expected ErrNoSuchElement, got %v", err)
	}
	if _, err := ui.GetElement(p, 42); !errors.Is(err, ui.ErrPrecondition) {
		t.Errorf("expected ErrPrecondition for bad selector type, got %v", err)
	}
}
