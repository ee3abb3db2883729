package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nuwanhe/smartsl/internal/domain"
)

type plannerMode int

const (
	plannerModeList plannerMode = iota
	plannerModeAdd
)

// plannerView drives the Planner tab: today's schedule plus an add form.
// The planner engine persists the whole schedule on every mutation, so the
// view just re-reads the list after each change.
type plannerView struct {
	state     *SharedState
	mode      plannerMode
	tasks     []domain.StudyTask
	cursor    int
	form      *huh.Form
	subject   string
	timeOfDay string
	errMsg    string
}

func newPlannerView(state *SharedState) *plannerView {
	return &plannerView{
		state:     state,
		subject:   string(state.App.Cfg.Defaults.Subject),
		timeOfDay: "16:00",
	}
}

func (v *plannerView) ID() ViewID    { return ViewPlanner }
func (v *plannerView) Title() string { return "Planner" }

func (v *plannerView) ShortHelp() []key.Binding {
	if v.mode == plannerModeAdd {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next field")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add session")),
		key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle done")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	}
}

// CapturesInput reports that the open add form owns raw key input.
func (v *plannerView) CapturesInput() bool { return v.mode == plannerModeAdd }

func (v *plannerView) Init() tea.Cmd {
	v.tasks = v.state.App.Planner.ListTasks()
	v.clampCursor()
	if v.mode == plannerModeAdd {
		return v.form.Init()
	}
	return nil
}

func (v *plannerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if v.mode == plannerModeAdd {
		if isKey && keyMsg.Type == tea.KeyEsc {
			v.mode = plannerModeList
			return v, nil
		}
		model, cmd := v.form.Update(msg)
		if f, ok := model.(*huh.Form); ok {
			v.form = f
		}
		switch v.form.State {
		case huh.StateCompleted:
			v.mode = plannerModeList
			return v, v.addTask()
		case huh.StateAborted:
			v.mode = plannerModeList
			return v, nil
		}
		return v, cmd
	}

	if !isKey {
		return v, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.tasks)-1 {
			v.cursor++
		}
	case "a":
		v.mode = plannerModeAdd
		v.form = newPlannerAddForm(&v.subject, &v.timeOfDay)
		return v, v.form.Init()
	case " ":
		if v.cursor < len(v.tasks) {
			return v, v.toggleTask(v.tasks[v.cursor].ID)
		}
	case "x":
		if v.cursor < len(v.tasks) {
			return v, v.removeTask(v.tasks[v.cursor].ID)
		}
	}
	return v, nil
}

func (v *plannerView) addTask() tea.Cmd {
	at, err := domain.ParseTimeOfDay(v.timeOfDay)
	if err != nil {
		v.errMsg = err.Error()
		return nil
	}
	_, err = v.state.App.Planner.AddTask(context.Background(), domain.Subject(v.subject), at)
	return v.refresh(err)
}

func (v *plannerView) toggleTask(id string) tea.Cmd {
	err := v.state.App.Planner.ToggleComplete(context.Background(), id)
	return v.refresh(err)
}

func (v *plannerView) removeTask(id string) tea.Cmd {
	err := v.state.App.Planner.RemoveTask(context.Background(), id)
	return v.refresh(err)
}

func (v *plannerView) refresh(err error) tea.Cmd {
	if err != nil {
		v.errMsg = "Could not save your schedule."
	} else {
		v.errMsg = ""
	}
	v.tasks = v.state.App.Planner.ListTasks()
	v.clampCursor()
	return nil
}

func (v *plannerView) clampCursor() {
	if v.cursor >= len(v.tasks) {
		v.cursor = len(v.tasks) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *plannerView) View() string {
	if v.mode == plannerModeAdd {
		var b strings.Builder
		b.WriteString(styleBold.Render("  Schedule Study Session") + "\n\n")
		b.WriteString(v.form.View())
		return b.String()
	}

	var b strings.Builder
	b.WriteString(styleBold.Render("  Today's Schedule") + "\n\n")
	if v.errMsg != "" {
		b.WriteString(styleRed.Render("  "+v.errMsg) + "\n\n")
	}

	if len(v.tasks) == 0 {
		b.WriteString(styleDim.Render("  No study sessions planned yet. Press a to add one."))
		return b.String()
	}

	for i, t := range v.tasks {
		check := styleDim.Render("○")
		label := styleFg.Render(string(t.Subject))
		if t.Completed {
			check = styleGreen.Render("●")
			label = styleDim.Render(string(t.Subject) + " (done)")
		}
		line := fmt.Sprintf("%s %s  %s", check, styleDim.Render(string(t.Time)), label)
		if i == v.cursor {
			b.WriteString("  " + styleAccent.Render("▸ ") + line + "\n")
		} else {
			b.WriteString("    " + line + "\n")
		}
	}
	return b.String()
}
