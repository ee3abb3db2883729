package cli

// Navigation and lifecycle messages passed between views and the app model.

// navigateMsg switches the active tab.
type navigateMsg struct{ to ViewID }

// signInMsg completes the mock sign-in gate.
type signInMsg struct{ name string }

// signOutMsg returns to the sign-in gate.
type signOutMsg struct{}
