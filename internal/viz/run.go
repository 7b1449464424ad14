package viz

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/donut/internal/torus"
)

// Run starts the viewer on the alternate screen and blocks until it quits.
func Run(r *torus.Renderer, frameRate int) error {
	p := tea.NewProgram(NewModel(r, frameRate), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
