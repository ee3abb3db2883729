package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each view in the TUI.
type ViewID int

const (
	ViewSignIn ViewID = iota
	ViewStudy
	ViewQuiz
	ViewPlanner
)

// View is the interface that all TUI views implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // tab label for this view
}
