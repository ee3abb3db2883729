package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nuwanhe/smartsl/internal/domain"
)

func newNotesCmd(app *App) *cobra.Command {
	var (
		grade, subject, unit, lang string
		speak, plain               bool
	)

	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Generate study notes for a topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := app.Content.GenerateStudyNotes(
				context.Background(),
				domain.Grade(grade),
				domain.Subject(subject),
				unit,
				domain.Language(lang),
			)
			if err != nil {
				return err
			}

			if plain {
				fmt.Println(noteMarkdown(note))
			} else {
				fmt.Println(renderNote(note, 100))
			}

			if speak {
				// Playback failures are logged by the synthesizer; the
				// notes were already printed, so they are not fatal here.
				_ = app.Speech.Speak(cmd.Context(), note.Content)
			}
			return nil
		},
	}

	defaults := app.Cfg.Defaults
	cmd.Flags().StringVar(&grade, "grade", string(defaults.Grade), "Grade (e.g. \"Grade 10\")")
	cmd.Flags().StringVar(&subject, "subject", string(defaults.Subject), "Subject")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit / topic to cover")
	cmd.Flags().StringVar(&lang, "lang", string(defaults.Language), "Output language (en|si|ta)")
	cmd.Flags().BoolVar(&speak, "speak", false, "Read the notes aloud after printing")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print raw markdown without styling")
	_ = cmd.MarkFlagRequired("unit")

	return cmd
}
