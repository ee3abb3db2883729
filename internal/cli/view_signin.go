package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// signInView is the mock sign-in gate. There is no real backend: any
// provider choice signs the user in locally as "Student".
type signInView struct {
	state   *SharedState
	cursor  int
	options []string
}

func newSignInView(state *SharedState) *signInView {
	return &signInView{
		state: state,
		options: []string{
			"Continue with Google",
			"Continue with Email",
		},
	}
}

func (v *signInView) ID() ViewID    { return ViewSignIn }
func (v *signInView) Title() string { return "Sign In" }

func (v *signInView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "choose")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign in")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *signInView) Init() tea.Cmd { return nil }

func (v *signInView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.options)-1 {
				v.cursor++
			}
		case "enter":
			return v, func() tea.Msg { return signInMsg{name: "Student"} }
		case "q":
			return v, tea.Quit
		}
	}
	return v, nil
}

func (v *signInView) View() string {
	var b strings.Builder
	b.WriteString(styleHeader.Render("Smart SL") + "\n")
	b.WriteString(styleDim.Render("Personalized AI Learning for Sri Lankan Students") + "\n\n")

	for i, opt := range v.options {
		if i == v.cursor {
			b.WriteString(styleAccent.Render("▸ "+opt) + "\n")
		} else {
			b.WriteString(styleFg.Render("  "+opt) + "\n")
		}
	}

	card := styleCard.Render(b.String())
	if v.state.Width > 0 && v.state.Height > 0 {
		return lipgloss.Place(v.state.Width, v.state.ContentHeight(),
			lipgloss.Center, lipgloss.Center, card)
	}
	return card
}
