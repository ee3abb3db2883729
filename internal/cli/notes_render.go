package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/nuwanhe/smartsl/internal/domain"
)

// renderNote renders a study note for terminal display. The note body is
// treated as markdown and rendered through glamour; the summary points are
// appended as a bulleted section. Falls back to plain text if the renderer
// cannot be constructed.
func renderNote(note *domain.StudyNote, width int) string {
	if width <= 0 {
		width = 80
	}

	md := noteMarkdown(note)
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// noteMarkdown assembles the note into a single markdown document.
func noteMarkdown(note *domain.StudyNote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", note.Title)
	b.WriteString(note.Content)
	if len(note.Summary) > 0 {
		b.WriteString("\n\n## Key Points\n\n")
		for _, s := range note.Summary {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}
	return b.String()
}
