package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/donut/internal/torus"
)

const (
	defaultFrameRate = 30
	maxSpeed         = 8
	historyCapacity  = 120
)

type TickMsg time.Time

// Model is the bubbletea model behind the tui command: one renderer, a
// frame per tick, keyboard control over pause, speed and mode.
type Model struct {
	renderer  *torus.Renderer
	frame     string
	running   bool
	speed     int
	frameRate int
	frames    int
	fps       float64
	lastTick  time.Time
	renderMs  []float64
	showHelp  bool
}

// NewModel wraps r. A frame rate of zero uses 30 frames per second.
func NewModel(r *torus.Renderer, frameRate int) Model {
	if frameRate <= 0 {
		frameRate = defaultFrameRate
	}
	return Model{
		renderer:  r,
		frame:     r.Render(),
		running:   true,
		speed:     1,
		frameRate: frameRate,
		renderMs:  make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles keys and ticks. Window size messages are ignored; the
// grid keeps its configured size.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.renderer.SetRotation(torus.Rotation{})
			m.frame = m.renderer.Render()
		case "m":
			m.toggleMode()
		case "+", "=":
			if m.speed < maxSpeed {
				m.speed++
			}
		case "-", "_":
			if m.speed > 1 {
				m.speed--
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		now := time.Time(msg)
		if !m.lastTick.IsZero() {
			if dt := now.Sub(m.lastTick).Seconds(); dt > 0 {
				m.fps = 1 / dt
			}
		}
		m.lastTick = now
		if m.running {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

// advance steps speed times and renders the resulting rotation.
func (m *Model) advance() {
	for i := 0; i < m.speed; i++ {
		m.renderer.Step()
	}
	start := time.Now()
	m.frame = m.renderer.Render()
	m.record(time.Since(start))
	m.frames++
}

func (m *Model) record(d time.Duration) {
	if len(m.renderMs) == historyCapacity {
		m.renderMs = append(m.renderMs[:0], m.renderMs[1:]...)
	}
	m.renderMs = append(m.renderMs, float64(d)/float64(time.Millisecond))
}

// toggleMode swaps baseline and optimized, keeping the rotation.
func (m *Model) toggleMode() {
	cfg := m.renderer.Config()
	if cfg.Mode == torus.Optimized {
		cfg.Mode = torus.Baseline
	} else {
		cfg.Mode = torus.Optimized
	}
	r, err := torus.NewRenderer(cfg)
	if err != nil {
		torus.Logger().Warn("mode switch failed", "err", err)
		return
	}
	r.SetRotation(m.renderer.Rotation())
	m.renderer = r
	m.frame = r.Render()
}

func (m Model) View() string {
	status := StatusRunning.Render("RUNNING")
	if !m.running {
		status = StatusPaused.Render("PAUSED")
	}

	rot := m.renderer.Rotation()
	var s strings.Builder
	s.WriteString(HeaderStyle.Render("DONUT") + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(MetricLabel.Render("Mode") + MetricValue.Render(string(m.renderer.Mode())) + "\n")
	s.WriteString(MetricLabel.Render("A") + MetricValue.Render(fmt.Sprintf("%.2f", rot.A)) + "\n")
	s.WriteString(MetricLabel.Render("B") + MetricValue.Render(fmt.Sprintf("%.2f", rot.B)) + "\n")
	s.WriteString(MetricLabel.Render("Speed") + MetricValue.Render(fmt.Sprintf("%dx", m.speed)) + "\n")
	s.WriteString(MetricLabel.Render("Frames") + MetricValue.Render(fmt.Sprintf("%d", m.frames)) + "\n")
	s.WriteString(MetricLabel.Render("FPS") + MetricValue.Render(fmt.Sprintf("%.1f", m.fps)) + "\n")
	if len(m.renderMs) > 1 {
		chart := asciigraph.Plot(m.renderMs, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("render ms"))
		s.WriteString("\n" + chart + "\n")
	}
	s.WriteString(KeyHint.Render("\nSP:Pause R:Reset M:Mode\n+/-:Speed ?:Help Q:Quit"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, CanvasStyle.Render(m.frame), PanelStyle.Render(s.String()))
	if m.showHelp {
		return HelpBox.Render(helpText) + "\n\n" + body
	}
	return body
}

const helpText = `KEYBOARD SHORTCUTS

Space  pause/resume rotation
R      reset rotation to zero
M      switch baseline/optimized
+ / -  frames stepped per tick (1-8)
?      toggle this help
Q      quit`
