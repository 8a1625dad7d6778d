package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/simview/internal/config"
	"github.com/san-kum/simview/internal/format"
	"github.com/san-kum/simview/internal/geom"
	"github.com/san-kum/simview/internal/sim"
	"github.com/san-kum/simview/internal/ui"
	"github.com/san-kum/simview/internal/widget"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
)

type state int

const (
	statePanel state = iota
	stateSim
)

type params struct {
	theta   float64
	omega   float64
	damping float64
	dt      float64
	trail   bool
	title   string
	theme   int
}

type model struct {
	state state
	panel *widget.Panel
	par   *params

	pendulum *sim.Pendulum
	simState sim.State
	simTime  float64
	paused   bool
	speed    float64
	accum    float64
	trail    []geom.Point
	history  []float64
	status   string

	width  int
	height int
}

const profileSavePath = "simview.yaml"

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func newModel(prof *config.Profile) (model, error) {
	panel := widget.NewPanel("s i m v i e w",
		widget.NewSlider("theta", "initial angle", -3.1, 3.1, 0.1),
		widget.NewSlider("omega", "initial speed", -5, 5, 0.1),
		widget.NewSlider("damping", "damping", 0, 1, 0.05),
		widget.NewSlider("dt", "timestep", 0.001, 0.05, 0.001),
		widget.NewCheckbox("trail", "show trail", true),
		widget.NewSelect("theme", "theme", "dark", "light"),
		widget.NewTextField("title", "run title", "pendulum"),
	)

	m := model{
		state:  statePanel,
		panel:  panel,
		speed:  1.0,
		width:  80,
		height: 24,
		par: &params{
			theta:   fval(prof, "theta", 0.5),
			omega:   fval(prof, "omega", 0),
			damping: fval(prof, "damping", 0.1),
			dt:      fval(prof, "dt", 0.01),
			trail:   bval(prof, "trail", true),
			title:   "pendulum",
		},
	}

	themeInit := any(0)
	if prof != nil && prof.Theme != "" {
		themeInit = prof.Theme
	}

	binds := []struct {
		id      string
		initial any
		onInput func(any)
		suffix  string
	}{
		{"theta", m.par.theta, func(v any) { m.par.theta = v.(float64) }, " rad"},
		{"omega", m.par.omega, func(v any) { m.par.omega = v.(float64) }, " rad/s"},
		{"damping", m.par.damping, func(v any) { m.par.damping = v.(float64) }, ""},
		{"dt", m.par.dt, func(v any) { m.par.dt = v.(float64) }, " s"},
		{"trail", m.par.trail, func(v any) { m.par.trail = v.(bool) }, ""},
		{"theme", themeInit, func(v any) { m.par.theme = v.(int) }, ""},
		{"title", m.par.title, func(v any) { m.par.title = v.(string) }, ""},
	}
	for _, b := range binds {
		if err := ui.Bind(panel, b.id, b.initial, b.onInput, b.suffix); err != nil {
			return model{}, err
		}
	}

	// Profile values go through the option mechanism so a misspelled
	// control id aborts startup instead of being swallowed.
	if prof != nil {
		if err := widget.ApplyProfile(panel, prof); err != nil {
			return model{}, err
		}
		m.syncFromPanel()
	}
	return m, nil
}

func fval(prof *config.Profile, id string, def float64) float64 {
	if prof == nil {
		return def
	}
	switch v := prof.Controls[id].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

func bval(prof *config.Profile, id string, def bool) bool {
	if prof == nil {
		return def
	}
	if v, ok := prof.Controls[id].(bool); ok {
		return v
	}
	return def
}

// syncFromPanel re-reads every control after a profile is applied, since
// programmatic sets do not fire input events.
func (m *model) syncFromPanel() {
	m.par.theta = m.panel.ElementByID("theta").Value().(float64)
	m.par.omega = m.panel.ElementByID("omega").Value().(float64)
	m.par.damping = m.panel.ElementByID("damping").Value().(float64)
	m.par.dt = m.panel.ElementByID("dt").Value().(float64)
	m.par.trail = m.panel.ElementByID("trail").Value().(bool)
	m.par.theme = m.panel.ElementByID("theme").Value().(int)
	m.par.title = m.panel.ElementByID("title").Value().(string)
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateSim {
			return m, nil
		}
		if !m.paused {
			// Fractional speeds accumulate across ticks, so x0.25
			// advances one step every fourth frame.
			m.accum += m.speed
			steps := int(m.accum)
			m.accum -= float64(steps)
			for i := 0; i < steps; i++ {
				m.step()
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == statePanel {
		if !m.panel.Editing() {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "s":
				m.start()
				m.state = stateSim
				m.status = ""
				return m, tea.Batch(tea.ClearScreen, tick())
			case "w":
				prof := widget.CollectProfile(m.panel, m.par.title)
				prof.Theme = m.panel.ElementByID("theme").(*widget.Select).Selected()
				if err := config.Save(profileSavePath, prof); err != nil {
					m.status = "save failed: " + err.Error()
				} else {
					m.status = "saved " + profileSavePath
				}
				return m, nil
			}
		}
		m.panel.HandleKey(msg)
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = statePanel
		m.trail = nil
		m.history = nil
		return m, tea.ClearScreen
	case " ", "p":
		m.paused = !m.paused
	case "r":
		m.start()
		return m, tea.ClearScreen
	case "+", "=":
		m.speed = math.Min(m.speed*2, 16)
	case "-", "_":
		m.speed = math.Max(m.speed/2, 0.25)
	}
	return m, nil
}

func (m *model) start() {
	m.pendulum = sim.NewPendulum()
	m.pendulum.Damping = m.par.damping
	m.simState = sim.State{m.par.theta, m.par.omega}
	m.simTime = 0
	m.paused = false
	m.speed = 1.0
	m.accum = 0
	m.trail = m.trail[:0]
	m.history = m.history[:0]
}

func (m *model) step() {
	m.simState = sim.Step(m.pendulum, m.simState, m.simTime, m.par.dt)
	m.simTime += m.par.dt

	m.trail = append(m.trail, m.bob())
	if len(m.trail) > 100 {
		m.trail = m.trail[1:]
	}
	m.history = append(m.history, m.simState[0])
	if len(m.history) > 60 {
		m.history = m.history[1:]
	}
}

// bob returns the pendulum bob position in canvas coordinates.
func (m model) bob() geom.Point {
	cw, ch := m.canvasSize()
	pivot := geom.NewPoint(float64(cw)/2, 2, 0)
	length := float64(ch) * 0.65
	theta := m.simState[0]
	return geom.NewPoint(
		pivot.X+length*math.Sin(theta),
		pivot.Y+length*math.Cos(theta),
		0,
	)
}

func (m model) canvasSize() (int, int) {
	cw := m.width - 6
	ch := m.height - 10
	if cw < 50 {
		cw = 50
	}
	if ch < 12 {
		ch = 12
	}
	return cw, ch
}

func (m model) View() string {
	if m.state == statePanel {
		var b strings.Builder
		b.WriteString(m.panel.View())
		b.WriteString(dim.Render("      s start   w save   q quit") + "\n")
		if m.status != "" {
			b.WriteString(dim.Render("      "+m.status) + "\n")
		}
		return b.String()
	}
	return m.viewSim()
}

func (m model) viewSim() string {
	cw, ch := m.canvasSize()

	canvas := make([][]rune, ch)
	for i := range canvas {
		canvas[i] = make([]rune, cw)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	pivot := geom.NewPoint(float64(cw)/2, 2, 0)
	bob := m.bob()

	if m.par.trail {
		for i := 1; i < len(m.trail); i++ {
			// Faster segments get heavier marks.
			c := '·'
			if geom.Distance(m.trail[i-1], m.trail[i]) > 0.8 {
				c = '●'
			}
			set(canvas, int(m.trail[i].X), int(m.trail[i].Y), c, cw, ch)
		}
	}

	// Rod drawn as interpolated points from pivot to bob.
	steps := int(geom.Distance(pivot, bob))
	for i := 1; i < steps; i++ {
		p := geom.Interpolate(pivot, bob, float64(i)/float64(steps))
		set(canvas, int(p.X), int(p.Y), '│', cw, ch)
	}
	set(canvas, int(pivot.X), int(pivot.Y), '▼', cw, ch)
	set(canvas, int(bob.X), int(bob.Y), '⬤', cw, ch)

	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("running")
	if m.paused {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s  %s\n\n",
		statusIcon, cyan.Render(m.par.title), statusText,
		dim.Render(fmt.Sprintf("t=%ss  x%s", format.Format(m.simTime, 1), format.Format(m.speed, 2)))))

	for _, row := range canvas {
		b.WriteString("   " + string(row) + "\n")
	}

	b.WriteString(fmt.Sprintf("\n   %s %s°  %s %s  %s %s\n",
		dim.Render("angle"), white.Render(format.Format(geom.Angle(pivot, bob), 0)),
		dim.Render("θ"), white.Render(format.Format(m.simState[0], 2)),
		dim.Render("E"), white.Render(format.Format(m.pendulum.Energy(m.simState), 3))))

	if len(m.history) > 1 {
		b.WriteString(fmt.Sprintf("   %s %s\n", dim.Render("θ"), cyan.Render(sparkline(m.history, 24))))
	}

	b.WriteString("\n" + dim.Render("   space pause  ±speed  r reset  q back") + "\n")
	return b.String()
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		idx := int(geom.Clamp((data[i*step]-minVal)/rang*7, 0, 7))
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

func set(canvas [][]rune, x, y int, c rune, w, h int) {
	if x >= 0 && x < w && y >= 0 && y < h {
		canvas[y][x] = c
	}
}

// Run starts the interactive tool. A nil profile uses defaults.
func Run(prof *config.Profile) error {
	m, err := newModel(prof)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
