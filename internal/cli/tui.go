package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// RunTUI starts the interactive shell in the alternate screen.
func RunTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
