package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nuwanhe/smartsl/internal/domain"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage the daily study schedule",
	}

	cmd.AddCommand(
		newPlanAddCmd(app),
		newPlanListCmd(app),
		newPlanDoneCmd(app),
		newPlanRemoveCmd(app),
	)

	return cmd
}

func newPlanAddCmd(app *App) *cobra.Command {
	var subject, at string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a study session",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := domain.ParseTimeOfDay(at)
			if err != nil {
				return err
			}
			task, err := app.Planner.AddTask(context.Background(), domain.Subject(subject), t)
			if err != nil {
				return err
			}
			fmt.Printf("Scheduled %s at %s (%s)\n", task.Subject, task.Time, shortID(task.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject to study")
	cmd.Flags().StringVar(&at, "time", "", "Time of day (HH:MM)")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show today's schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := app.Planner.ListTasks()
			if len(tasks) == 0 {
				fmt.Println("No study sessions planned yet.")
				return nil
			}
			for _, t := range tasks {
				mark := " "
				if t.Completed {
					mark = "x"
				}
				fmt.Printf("[%s] %s  %-28s %s\n", mark, t.Time, t.Subject, shortID(t.ID))
			}
			return nil
		},
	}
}

func newPlanDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a session's completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}
			return app.Planner.ToggleComplete(context.Background(), id)
		},
	}
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a session from the schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(app, args[0])
			if err != nil {
				return err
			}
			return app.Planner.RemoveTask(context.Background(), id)
		},
	}
}

// shortID trims a uuid to the first group, enough to address a task from
// the command line.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// resolveTaskID expands a short id prefix to a full task id. An exact match
// always wins; an ambiguous prefix is an error.
func resolveTaskID(app *App, prefix string) (string, error) {
	var match string
	for _, t := range app.Planner.ListTasks() {
		if t.ID == prefix {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("id %q is ambiguous", prefix)
			}
			match = t.ID
		}
	}
	if match == "" {
		// Unknown ids are a planner no-op, but the CLI tells the user.
		return "", fmt.Errorf("no task matching %q", prefix)
	}
	return match, nil
}
