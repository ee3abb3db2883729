package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI. It owns the mock
// sign-in gate and the tab bar switching among Study / Quiz / Planner.
// Feature views keep their own transient state; nothing is shared between
// them beyond the navigation selector and the signed-in flag.
type appModel struct {
	state    *SharedState
	active   ViewID
	views    map[ViewID]View
	quitting bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	return appModel{
		state:  state,
		active: ViewSignIn,
		views: map[ViewID]View{
			ViewSignIn:  newSignInView(state),
			ViewStudy:   newStudyView(state),
			ViewQuiz:    newQuizView(state),
			ViewPlanner: newPlannerView(state),
		},
	}
}

func (m appModel) activeView() View {
	return m.views[m.active]
}

func (m appModel) Init() tea.Cmd {
	return m.activeView().Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		// Broadcast so every view resizes, not just the visible one.
		var cmds []tea.Cmd
		for id, v := range m.views {
			updated, cmd := v.Update(msg)
			m.views[id] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case signInMsg:
		m.state.SignedIn = true
		m.state.UserName = msg.name
		m.active = ViewStudy
		return m, m.activeView().Init()

	case signOutMsg:
		m.state.SignedIn = false
		m.state.UserName = ""
		m.active = ViewSignIn
		m.views[ViewSignIn] = newSignInView(m.state)
		return m, m.activeView().Init()

	case navigateMsg:
		if m.state.SignedIn && msg.to != m.active {
			m.active = msg.to
			return m, m.activeView().Init()
		}
		return m, nil

	// Async results go to the view that requested them, not whichever
	// view happens to be visible when they arrive. Otherwise switching
	// tabs during generation drops the result and the requesting view
	// waits on its spinner forever.
	case quizLoadedMsg, quizAdvanceMsg:
		return m.routeTo(ViewQuiz, msg)

	case notesLoadedMsg, speakDoneMsg:
		return m.routeTo(ViewStudy, msg)
	}

	// Forward everything else to the active view.
	updated, cmd := m.activeView().Update(msg)
	m.views[m.active] = updated.(View)
	return m, cmd
}

func (m appModel) routeTo(id ViewID, msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.views[id].Update(msg)
	m.views[id] = updated.(View)
	return m, cmd
}

// tabOrder is the left-to-right tab layout once signed in.
var tabOrder = []ViewID{ViewStudy, ViewQuiz, ViewPlanner}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// If the active view captures text input, forward everything except
	// ctrl+c so typing "q" into the unit field works.
	if v := m.activeView(); viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.views[m.active] = updated.(View)
		return m, cmd
	}

	if m.state.SignedIn {
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			return m.cycleTab(1)
		case "shift+tab":
			return m.cycleTab(-1)
		case "1", "2", "3":
			idx := int(msg.Runes[0] - '1')
			return m.switchTab(tabOrder[idx])
		case "ctrl+o":
			return m, func() tea.Msg { return signOutMsg{} }
		}
	}

	updated, cmd := m.activeView().Update(msg)
	m.views[m.active] = updated.(View)
	return m, cmd
}

func (m appModel) cycleTab(dir int) (tea.Model, tea.Cmd) {
	for i, id := range tabOrder {
		if id == m.active {
			next := tabOrder[(i+dir+len(tabOrder))%len(tabOrder)]
			return m.switchTab(next)
		}
	}
	return m.switchTab(tabOrder[0])
}

func (m appModel) switchTab(to ViewID) (tea.Model, tea.Cmd) {
	if to == m.active {
		return m, nil
	}
	m.active = to
	return m, m.activeView().Init()
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	if m.state.SignedIn {
		sections = append(sections, m.renderTabs())
	}
	sections = append(sections, m.activeView().View())
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

func (m appModel) renderTabs() string {
	var tabs []string
	tabs = append(tabs, styleHeader.Render(" Smart SL "))
	for _, id := range tabOrder {
		label := m.views[id].Title()
		if id == m.active {
			tabs = append(tabs, styleTabActive.Render(label))
		} else {
			tabs = append(tabs, styleTabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

func (m appModel) renderStatusBar() string {
	var hints []string
	for _, b := range m.activeView().ShortHelp() {
		hints = append(hints, b.Help().Key+" "+styleDim.Render(b.Help().Desc))
	}
	if m.state.SignedIn {
		hints = append(hints,
			"tab "+styleDim.Render("switch"),
			"ctrl+o "+styleDim.Render("sign out"),
			"q "+styleDim.Render("quit"),
		)
	}
	return styleDim.Render(strings.Repeat("─", max(0, m.state.Width))) + "\n" +
		" " + strings.Join(hints, styleDim.Render("  ·  "))
}

// viewCapturesInput reports whether the view owns raw key input (an open
// huh form or text field), so global shortcuts must not swallow keys.
func viewCapturesInput(v View) bool {
	type inputCapturer interface{ CapturesInput() bool }
	if c, ok := v.(inputCapturer); ok {
		return c.CapturesInput()
	}
	return false
}
