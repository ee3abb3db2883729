package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/nuwanhe/smartsl/internal/domain"
)

type studyMode int

const (
	studyModeForm studyMode = iota
	studyModeLoading
	studyModeNote
)

// notesLoadedMsg carries the result of a note generation request.
type notesLoadedMsg struct {
	note *domain.StudyNote
	err  error
}

// speakDoneMsg clears the speaking busy flag.
type speakDoneMsg struct{}

// studyView drives the Study tab: topic form → generation → rendered note.
// The note is transient: a new generation or leaving the form replaces it
// wholesale and nothing is persisted.
type studyView struct {
	state    *SharedState
	mode     studyMode
	sel      topicSelection
	form     *huh.Form
	spin     spinner.Model
	vp       viewport.Model
	note     *domain.StudyNote
	errMsg   string
	speaking bool
}

func newStudyView(state *SharedState) *studyView {
	defaults := state.App.Cfg.Defaults
	v := &studyView{
		state: state,
		sel: topicSelection{
			Grade:    string(defaults.Grade),
			Subject:  string(defaults.Subject),
			Language: string(defaults.Language),
		},
		spin: newSpinner(),
		vp:   viewport.New(0, 0),
	}
	v.form = newTopicForm(&v.sel, "Generate study notes?")
	return v
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleAccent
	return s
}

func (v *studyView) ID() ViewID    { return ViewStudy }
func (v *studyView) Title() string { return "Study" }

func (v *studyView) ShortHelp() []key.Binding {
	switch v.mode {
	case studyModeNote:
		return []key.Binding{
			key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "read aloud")),
			key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new topic")),
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		}
	default:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next field")),
		}
	}
}

// CapturesInput reports that the open form owns raw key input.
func (v *studyView) CapturesInput() bool { return v.mode == studyModeForm }

func (v *studyView) Init() tea.Cmd {
	switch v.mode {
	case studyModeForm:
		return v.form.Init()
	case studyModeLoading:
		// Re-entered mid-generation; restart the spinner tick chain.
		return v.spin.Tick
	}
	return nil
}

func (v *studyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		v.vp.Width = v.state.ContentWidth()
		v.vp.Height = v.state.ContentHeight() - 2
		if v.note != nil {
			v.vp.SetContent(renderNote(v.note, v.vp.Width))
		}
		return v, nil

	case notesLoadedMsg:
		if v.mode != studyModeLoading {
			return v, nil
		}
		if msg.err != nil {
			// Revert to the form with the previous inputs intact.
			v.mode = studyModeForm
			v.errMsg = "Could not generate notes. Please try again."
			v.form = newTopicForm(&v.sel, "Generate study notes?")
			return v, v.form.Init()
		}
		v.note = msg.note
		v.mode = studyModeNote
		v.errMsg = ""
		v.vp.Width = v.state.ContentWidth()
		v.vp.Height = v.state.ContentHeight() - 2
		v.vp.SetContent(renderNote(v.note, v.vp.Width))
		v.vp.GotoTop()
		return v, nil

	case speakDoneMsg:
		v.speaking = false
		return v, nil

	case spinner.TickMsg:
		if v.mode == studyModeLoading {
			var cmd tea.Cmd
			v.spin, cmd = v.spin.Update(msg)
			return v, cmd
		}
		return v, nil

	case tea.KeyMsg:
		if v.mode == studyModeNote {
			return v.handleNoteKey(msg)
		}
	}

	if v.mode == studyModeForm {
		model, cmd := v.form.Update(msg)
		if f, ok := model.(*huh.Form); ok {
			v.form = f
		}
		switch v.form.State {
		case huh.StateCompleted:
			v.mode = studyModeLoading
			v.errMsg = ""
			return v, tea.Batch(v.spin.Tick, v.generateNotes())
		case huh.StateAborted:
			v.form = newTopicForm(&v.sel, "Generate study notes?")
			return v, v.form.Init()
		}
		return v, cmd
	}

	return v, nil
}

func (v *studyView) handleNoteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		// One playback at a time; the flag is the caller-side guard the
		// synthesizer contract asks for.
		if v.speaking || v.note == nil {
			return v, nil
		}
		v.speaking = true
		return v, v.speak(v.note.Content)
	case "n":
		v.mode = studyModeForm
		v.note = nil
		v.form = newTopicForm(&v.sel, "Generate study notes?")
		return v, v.form.Init()
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *studyView) generateNotes() tea.Cmd {
	app := v.state.App
	sel := v.sel
	return func() tea.Msg {
		note, err := app.Content.GenerateStudyNotes(
			context.Background(),
			domain.Grade(sel.Grade),
			domain.Subject(sel.Subject),
			sel.Unit,
			domain.Language(sel.Language),
		)
		return notesLoadedMsg{note: note, err: err}
	}
}

func (v *studyView) speak(text string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		// Failures are logged by the synthesizer and suppressed here:
		// the notes stay on screen, playback simply does not happen.
		_ = app.Speech.Speak(context.Background(), text)
		return speakDoneMsg{}
	}
}

func (v *studyView) View() string {
	switch v.mode {
	case studyModeLoading:
		return "\n  " + v.spin.View() + styleDim.Render(" Generating your study notes...")

	case studyModeNote:
		var b strings.Builder
		if v.speaking {
			b.WriteString(styleYellow.Render("  ♪ reading aloud...") + "\n")
		}
		b.WriteString(v.vp.View())
		return b.String()

	default:
		var b strings.Builder
		b.WriteString(styleBold.Render("  Generate Study Notes") + "\n\n")
		if v.errMsg != "" {
			b.WriteString(styleRed.Render("  "+v.errMsg) + "\n\n")
		}
		b.WriteString(v.form.View())
		return b.String()
	}
}
