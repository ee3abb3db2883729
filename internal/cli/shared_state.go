package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Mock sign-in gate: no real backend, just a local flag.
	SignedIn bool
	UserName string

	// Terminal dimensions
	Width  int
	Height int
}

// ContentWidth returns the usable width for view content.
func (s *SharedState) ContentWidth() int {
	if s.Width <= 0 {
		return 80
	}
	if s.Width > 100 {
		return 100
	}
	return s.Width
}

// ContentHeight returns the rows available between header and status bar.
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
