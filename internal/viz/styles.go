package viz

import "github.com/charmbracelet/lipgloss"

// Styles use weight and borders only; the torus itself is drawn without color.
var (
	CanvasStyle = lipgloss.NewStyle().Padding(1, 2)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			Padding(1, 2).
			Width(40)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)

	StatusRunning = lipgloss.NewStyle().Bold(true)
	StatusPaused  = lipgloss.NewStyle().Bold(true).Blink(true)

	MetricLabel = lipgloss.NewStyle().Faint(true).Width(10)
	MetricValue = lipgloss.NewStyle().Bold(true)

	KeyHint = lipgloss.NewStyle().Faint(true).Italic(true)

	HelpBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
)
