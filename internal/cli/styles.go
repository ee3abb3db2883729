package cli

import "github.com/charmbracelet/lipgloss"

// Indigo-leaning palette.
var (
	colorAccent  = lipgloss.Color("#818cf8")
	colorGreen   = lipgloss.Color("#4ade80")
	colorRed     = lipgloss.Color("#f87171")
	colorYellow  = lipgloss.Color("#fbbf24")
	colorDim     = lipgloss.Color("#64748b")
	colorFg      = lipgloss.Color("#e2e8f0")
	colorFgOnAcc = lipgloss.Color("#1e1b4b")
)

// Predefined lipgloss styles.
var (
	styleAccent = lipgloss.NewStyle().Foreground(colorAccent)
	styleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	styleRed    = lipgloss.NewStyle().Foreground(colorRed)
	styleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleFg     = lipgloss.NewStyle().Foreground(colorFg)
	styleHeader = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleBold   = lipgloss.NewStyle().Foreground(colorFg).Bold(true)

	styleTabActive = lipgloss.NewStyle().
			Foreground(colorFgOnAcc).
			Background(colorAccent).
			Bold(true).
			Padding(0, 2)
	styleTabInactive = lipgloss.NewStyle().
				Foreground(colorDim).
				Padding(0, 2)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(1, 2)
)
