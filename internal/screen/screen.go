package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/aditir/eduterm/internal/ui/layout"
)

// Screen is one full-window view managed by the router. The app model
// owns the surrounding header and footer; a screen renders only its
// content area.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area at the given size.
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints in place
// of the defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
