package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nuwanhe/smartsl/internal/domain"
)

// smartslHuhTheme returns a custom huh theme using the app palette.
func smartslHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(colorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(colorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(colorFgOnAcc).Background(colorAccent).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(colorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(colorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(colorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(colorDim)

	return t
}

// topicSelection holds the grade/subject/unit/language chosen in the study
// and quiz builder forms.
type topicSelection struct {
	Grade    string
	Subject  string
	Unit     string
	Language string
}

// newTopicForm builds the shared grade/subject/unit/language form.
// sel should be pre-filled with configured defaults.
func newTopicForm(sel *topicSelection, confirmLabel string) *huh.Form {
	gradeOpts := make([]huh.Option[string], 0, len(domain.Grades))
	for _, g := range domain.Grades {
		gradeOpts = append(gradeOpts, huh.NewOption(string(g), string(g)))
	}
	subjectOpts := make([]huh.Option[string], 0, len(domain.Subjects))
	for _, s := range domain.Subjects {
		subjectOpts = append(subjectOpts, huh.NewOption(string(s), string(s)))
	}
	langOpts := make([]huh.Option[string], 0, len(domain.Languages))
	for _, l := range domain.Languages {
		langOpts = append(langOpts, huh.NewOption(l.Label(), string(l)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Grade").
				Options(gradeOpts...).
				Value(&sel.Grade),
			huh.NewSelect[string]().
				Title("Subject").
				Options(subjectOpts...).
				Value(&sel.Subject),
			huh.NewInput().
				Title("Unit / Topic").
				Placeholder("e.g. Photosynthesis").
				Value(&sel.Unit).
				Validate(validateRequired("unit")),
			huh.NewSelect[string]().
				Title("Language").
				Options(langOpts...).
				Value(&sel.Language),
			huh.NewConfirm().
				Title(confirmLabel).
				Affirmative("Generate").
				Negative("Cancel"),
		),
	).WithTheme(smartslHuhTheme()).WithShowHelp(true)
}

// newPlannerAddForm builds the subject + time form for scheduling a session.
func newPlannerAddForm(subject, timeOfDay *string) *huh.Form {
	subjectOpts := make([]huh.Option[string], 0, len(domain.Subjects))
	for _, s := range domain.Subjects {
		subjectOpts = append(subjectOpts, huh.NewOption(string(s), string(s)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Subject").
				Options(subjectOpts...).
				Value(subject),
			huh.NewInput().
				Title("Time (HH:MM)").
				Placeholder("16:00").
				Value(timeOfDay).
				Validate(validateTimeOfDay),
		),
	).WithTheme(smartslHuhTheme()).WithShowHelp(false)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateTimeOfDay(s string) error {
	_, err := domain.ParseTimeOfDay(s)
	return err
}
