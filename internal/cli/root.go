package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nuwanhe/smartsl/internal/config"
	"github.com/nuwanhe/smartsl/internal/content"
	"github.com/nuwanhe/smartsl/internal/planner"
	"github.com/nuwanhe/smartsl/internal/speech"
)

// App holds references to all services used by CLI commands and TUI views.
type App struct {
	Planner *planner.Engine
	Content content.Service
	Speech  speech.Synthesizer
	Cfg     config.Config
	Log     zerolog.Logger

	// IsInteractive reports whether stdin is attached to a terminal.
	// The bare root command only launches the TUI when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "smartsl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "smartsl",
		Short: "AI study aid for Sri Lankan students",
		Long: "smartsl generates syllabus-aligned study notes and practice quizzes,\n" +
			"reads notes aloud, and keeps your daily study schedule.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return RunTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newPlanCmd(app),
		newNotesCmd(app),
		newQuizCmd(app),
	)

	return root
}
