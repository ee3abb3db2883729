package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nuwanhe/smartsl/internal/domain"
	"github.com/nuwanhe/smartsl/internal/quiz"
)

// quizAdvanceDelay is the pause after answering, long enough to read the
// correctness feedback before the next question appears.
const quizAdvanceDelay = 800 * time.Millisecond

// quizLoadedMsg carries the result of a quiz generation request.
type quizLoadedMsg struct {
	questions []domain.QuizQuestion
	err       error
}

// quizAdvanceMsg moves to the next question after the feedback pause.
type quizAdvanceMsg struct{}

// quizView drives the Quiz tab around a quiz.Machine: builder form →
// generation → sequential answering → star summary.
type quizView struct {
	state   *SharedState
	machine *quiz.Machine
	sel     topicSelection
	form    *huh.Form
	spin    spinner.Model
	prog    progress.Model
	cursor  int
	errMsg  string
}

func newQuizView(state *SharedState) *quizView {
	defaults := state.App.Cfg.Defaults
	v := &quizView{
		state:   state,
		machine: quiz.NewMachine(),
		sel: topicSelection{
			Grade:    string(defaults.Grade),
			Subject:  string(defaults.Subject),
			Language: string(defaults.Language),
		},
		spin: newSpinner(),
		prog: progress.New(progress.WithDefaultGradient()),
	}
	v.form = newTopicForm(&v.sel, "Start the quiz?")
	return v
}

func (v *quizView) ID() ViewID    { return ViewQuiz }
func (v *quizView) Title() string { return "Quiz" }

func (v *quizView) ShortHelp() []key.Binding {
	switch v.machine.Phase() {
	case quiz.PhaseInProgress:
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "choose")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "answer")),
		}
	case quiz.PhaseFinished:
		return []key.Binding{
			key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "practice more")),
		}
	default:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next field")),
		}
	}
}

// CapturesInput reports that the view owns raw key input: the open builder
// form, and the question screen where digits pick an answer rather than a tab.
func (v *quizView) CapturesInput() bool {
	switch v.machine.Phase() {
	case quiz.PhaseBuilding, quiz.PhaseInProgress:
		return true
	}
	return false
}

func (v *quizView) Init() tea.Cmd {
	switch v.machine.Phase() {
	case quiz.PhaseBuilding:
		return v.form.Init()
	case quiz.PhaseGenerating:
		// Re-entered mid-generation; restart the spinner tick chain.
		return v.spin.Tick
	}
	return nil
}

func (v *quizView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		v.prog.Width = v.state.ContentWidth() - 30
		if v.prog.Width < 10 {
			v.prog.Width = 10
		}
		return v, nil

	case quizLoadedMsg:
		if v.machine.Phase() != quiz.PhaseGenerating {
			return v, nil
		}
		if msg.err != nil {
			// State reverts to building; no partial quiz is retained.
			v.machine.Fail()
			v.errMsg = "Error generating quiz. Please try again."
			v.form = newTopicForm(&v.sel, "Start the quiz?")
			return v, v.form.Init()
		}
		if err := v.machine.Loaded(msg.questions); err != nil {
			v.machine.Fail()
			v.errMsg = "Error generating quiz. Please try again."
			v.form = newTopicForm(&v.sel, "Start the quiz?")
			return v, v.form.Init()
		}
		v.cursor = 0
		v.errMsg = ""
		return v, nil

	case quizAdvanceMsg:
		if v.machine.Phase() == quiz.PhaseInProgress {
			if err := v.machine.Advance(); err == nil {
				v.cursor = 0
			}
		}
		return v, nil

	case spinner.TickMsg:
		if v.machine.Phase() == quiz.PhaseGenerating {
			var cmd tea.Cmd
			v.spin, cmd = v.spin.Update(msg)
			return v, cmd
		}
		return v, nil

	case tea.KeyMsg:
		switch v.machine.Phase() {
		case quiz.PhaseInProgress:
			return v.handleQuestionKey(msg)
		case quiz.PhaseFinished:
			if msg.String() == "p" {
				v.machine.Reset()
				v.form = newTopicForm(&v.sel, "Start the quiz?")
				return v, v.form.Init()
			}
			return v, nil
		}
	}

	if v.machine.Phase() == quiz.PhaseBuilding {
		model, cmd := v.form.Update(msg)
		if f, ok := model.(*huh.Form); ok {
			v.form = f
		}
		switch v.form.State {
		case huh.StateCompleted:
			if err := v.machine.Start(quiz.Setup{
				Grade:    domain.Grade(v.sel.Grade),
				Subject:  domain.Subject(v.sel.Subject),
				Unit:     v.sel.Unit,
				Language: domain.Language(v.sel.Language),
			}); err != nil {
				v.errMsg = err.Error()
				v.form = newTopicForm(&v.sel, "Start the quiz?")
				return v, v.form.Init()
			}
			v.errMsg = ""
			return v, tea.Batch(v.spin.Tick, v.generateQuiz())
		case huh.StateAborted:
			v.form = newTopicForm(&v.sel, "Start the quiz?")
			return v, v.form.Init()
		}
		return v, cmd
	}

	return v, nil
}

func (v *quizView) handleQuestionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	idx, q := v.machine.Current()
	if _, answered := v.machine.AnswerFor(idx); answered {
		// Waiting out the feedback pause; input is ignored.
		return v, nil
	}

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(q.Options)-1 {
			v.cursor++
		}
	case "1", "2", "3", "4":
		v.cursor = int(msg.Runes[0] - '1')
		return v, v.selectOption(v.cursor)
	case "enter":
		return v, v.selectOption(v.cursor)
	}
	return v, nil
}

func (v *quizView) selectOption(i int) tea.Cmd {
	if err := v.machine.Answer(i); err != nil {
		return nil
	}
	if v.machine.Phase() == quiz.PhaseFinished {
		return nil
	}
	return tea.Tick(quizAdvanceDelay, func(time.Time) tea.Msg {
		return quizAdvanceMsg{}
	})
}

func (v *quizView) generateQuiz() tea.Cmd {
	app := v.state.App
	setup := v.machine.Setup()
	return func() tea.Msg {
		questions, err := app.Content.GenerateQuiz(
			context.Background(),
			setup.Grade, setup.Subject, setup.Unit, setup.Language,
		)
		return quizLoadedMsg{questions: questions, err: err}
	}
}

func (v *quizView) View() string {
	switch v.machine.Phase() {
	case quiz.PhaseGenerating:
		return "\n  " + v.spin.View() + styleDim.Render(" Generating your custom quiz...")
	case quiz.PhaseInProgress:
		return v.viewQuestion()
	case quiz.PhaseFinished:
		return v.viewSummary()
	default:
		var b strings.Builder
		b.WriteString(styleBold.Render("  Practice Quiz") + "\n\n")
		if v.errMsg != "" {
			b.WriteString(styleRed.Render("  "+v.errMsg) + "\n\n")
		}
		b.WriteString(v.form.View())
		return b.String()
	}
}

func (v *quizView) viewQuestion() string {
	idx, q := v.machine.Current()
	total := v.machine.Total()
	answer, answered := v.machine.AnswerFor(idx)

	var b strings.Builder
	fmt.Fprintf(&b, "  %s  %s\n\n",
		styleDim.Render(fmt.Sprintf("Question %d of %d", idx+1, total)),
		v.prog.ViewAs(float64(idx+1)/float64(total)),
	)
	b.WriteString("  " + styleBold.Render(q.Question) + "\n\n")

	for i, opt := range q.Options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		switch {
		case answered && i == answer && i == q.CorrectAnswer:
			b.WriteString("  " + styleGreen.Render("✓ "+line) + "\n")
		case answered && i == answer:
			b.WriteString("  " + styleRed.Render("✗ "+line) + "\n")
		case answered && i == q.CorrectAnswer:
			b.WriteString("  " + styleGreen.Render("  "+line) + "\n")
		case !answered && i == v.cursor:
			b.WriteString("  " + styleAccent.Render("▸ "+line) + "\n")
		default:
			b.WriteString("  " + styleFg.Render("  "+line) + "\n")
		}
	}

	if answered {
		if answer == q.CorrectAnswer {
			b.WriteString("\n  " + styleGreen.Render("Correct!"))
		} else {
			b.WriteString("\n  " + styleRed.Render("Not quite."))
		}
	}
	return b.String()
}

func (v *quizView) viewSummary() string {
	score := v.machine.Score()
	total := v.machine.Total()
	stars := v.machine.Stars()

	var b strings.Builder
	b.WriteString("\n  " + styleBold.Render("Excellent Work!") + "\n")
	fmt.Fprintf(&b, "  %s\n\n",
		styleDim.Render(fmt.Sprintf("You completed the %s quiz.", v.machine.Setup().Subject)))

	b.WriteString("  ")
	for i := 0; i < 5; i++ {
		if i < stars {
			b.WriteString(styleYellow.Render("★ "))
		} else {
			b.WriteString(styleDim.Render("☆ "))
		}
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  %s\n\n", styleHeader.Render(fmt.Sprintf("%d/%d", score, total)))
	b.WriteString("  " + styleDim.Render("press p to practice more"))
	return b.String()
}
