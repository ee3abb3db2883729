package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nuwanhe/smartsl/internal/domain"
)

func newQuizCmd(app *App) *cobra.Command {
	var (
		grade, subject, unit, lang string
		showAnswers                bool
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Generate a practice quiz for a topic",
		Long: "Generates a multiple-choice paper and prints it. For an\n" +
			"interactive, scored attempt run smartsl without arguments.",
		RunE: func(cmd *cobra.Command, args []string) error {
			questions, err := app.Content.GenerateQuiz(
				context.Background(),
				domain.Grade(grade),
				domain.Subject(subject),
				unit,
				domain.Language(lang),
			)
			if err != nil {
				return err
			}

			for i, q := range questions {
				fmt.Printf("%d. %s\n", i+1, q.Question)
				for j, opt := range q.Options {
					marker := " "
					if showAnswers && j == q.CorrectAnswer {
						marker = "*"
					}
					fmt.Printf("  %s %c) %s\n", marker, 'a'+j, opt)
				}
				fmt.Println()
			}
			if !showAnswers {
				fmt.Println("Run with --show-answers to mark the correct options.")
			}
			return nil
		},
	}

	defaults := app.Cfg.Defaults
	cmd.Flags().StringVar(&grade, "grade", string(defaults.Grade), "Grade (e.g. \"Grade 10\")")
	cmd.Flags().StringVar(&subject, "subject", string(defaults.Subject), "Subject")
	cmd.Flags().StringVar(&unit, "unit", "", "Unit / topic to cover")
	cmd.Flags().StringVar(&lang, "lang", string(defaults.Language), "Output language (en|si|ta)")
	cmd.Flags().BoolVar(&showAnswers, "show-answers", false, "Mark correct options")
	_ = cmd.MarkFlagRequired("unit")

	return cmd
}
