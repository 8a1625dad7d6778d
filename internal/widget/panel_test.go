package widget

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/simview/internal/config"
	"github.com/san-kum/simview/internal/ui"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPanelFocusSkipsLabels(t *testing.T) {
	p := testPanel()
	if err := ui.Bind(p, "theta", 0.5, nil, ""); err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	// trail -> theta -> (label skipped) -> theme
	p.HandleKey(key("down"))
	if p.Focused().ID() != "theta" {
		t.Fatalf("expected focus on theta, got %s", p.Focused().ID())
	}
	p.HandleKey(key("down"))
	if p.Focused().ID() != "theme" {
		t.Errorf("expected focus to skip the value label, got %s", p.Focused().ID())
	}
	p.HandleKey(key("up"))
	if p.Focused().ID() != "theta" {
		t.Errorf("expected focus back on theta, got %s", p.Focused().ID())
	}
}

func TestPanelInitialFocusSkipsLeadingLabel(t *testing.T) {
	p := NewPanel("test",
		NewLabel("heading", "controls"),
		NewCheckbox("trail", "show trail", false),
	)
	if p.Focused().ID() != "trail" {
		t.Errorf("expected initial focus on trail, got %s", p.Focused().ID())
	}
}

func TestPanelInsertKeepsFocusedControl(t *testing.T) {
	p := testPanel()
	p.HandleKey(key("down")) // theta
	p.HandleKey(key("down")) // theme
	before := p.Focused().ID()

	p.InsertAfter(p.ElementByID("theta"), NewLabel("theta-value", "0.50"))
	if p.Focused().ID() != before {
		t.Errorf("expected focus to stay on %s, got %s", before, p.Focused().ID())
	}
}

func TestPanelKeysDriveControls(t *testing.T) {
	p := testPanel()

	p.HandleKey(key(" "))
	if !p.ElementByID("trail").(*Checkbox).Checked() {
		t.Error("expected space to toggle checkbox")
	}

	p.HandleKey(key("down"))
	s := p.ElementByID("theta").(*Slider)
	start := s.Float()
	p.HandleKey(key("right"))
	if s.Float() <= start {
		t.Error("expected right to increase slider value")
	}
	p.HandleKey(key("left"))
	p.HandleKey(key("left"))
	if s.Float() >= start {
		t.Error("expected left to decrease slider value")
	}
}

func TestPanelSliderEditing(t *testing.T) {
	p := testPanel()
	p.HandleKey(key("down")) // focus theta

	p.HandleKey(key("enter"))
	for i := 0; i < 10; i++ {
		p.HandleKey(key("backspace"))
	}
	for _, c := range "1.5" {
		p.HandleKey(key(string(c)))
	}
	p.HandleKey(key("enter"))

	s := p.ElementByID("theta").(*Slider)
	if s.Float() != 1.5 {
		t.Errorf("expected committed value 1.5, got %f", s.Float())
	}
}

func TestPanelSliderClamps(t *testing.T) {
	p := testPanel()
	s := p.ElementByID("theta").(*Slider)

	if err := s.SetValue(99.0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if s.Float() != s.Max() {
		t.Errorf("expected clamp to max %f, got %f", s.Max(), s.Float())
	}
}

func TestApplyProfile(t *testing.T) {
	p := testPanel()

	prof := config.DefaultProfile()
	prof.Controls = map[string]any{
		"trail": true,
		"theta": 1.0,
		"theme": "light",
	}
	if err := ApplyProfile(p, prof); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if !p.ElementByID("trail").(*Checkbox).Checked() {
		t.Error("expected trail checked")
	}
	if p.ElementByID("theta").(*Slider).Float() != 1.0 {
		t.Error("expected theta 1.0")
	}
	if p.ElementByID("theme").(*Select).Selected() != "light" {
		t.Error("expected theme light")
	}
}

func TestApplyProfileUnknownControl(t *testing.T) {
	p := testPanel()

	prof := config.DefaultProfile()
	prof.Controls = map[string]any{"bogus": 1}

	err := ApplyProfile(p, prof)
	if !errors.Is(err, ui.ErrPrecondition) {
		t.Errorf("expected precondition violation, got %v", err)
	}
}

func TestCollectProfileSkipsLabels(t *testing.T) {
	p := testPanel()
	if err := ui.Bind(p, "theta", 0.5, nil, ""); err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	prof := CollectProfile(p, "snap")
	if prof.Name != "snap" {
		t.Errorf("expected name snap, got %s", prof.Name)
	}
	if _, ok := prof.Controls["theta-value"]; ok {
		t.Error("expected labels excluded from profile")
	}
	if prof.Controls["theta"] != 0.5 {
		t.Errorf("expected theta 0.5, got %v", prof.Controls["theta"])
	}
}
