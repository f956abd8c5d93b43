// Package screen defines the contract between the app model and the quiz
// screens (welcome, start, rules, loading, play, result and failure).
// The app owns the header and footer; a screen renders only its body.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edgequiz/internal/ui/layout"
)

// Screen is one page of the game. Screens talk to the session only by
// returning session.Action messages from Update; the app swaps screens
// when the session moves.
type Screen interface {
	Init() tea.Cmd

	// Update handles a message routed to the active screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body into a width x height area between the header
	// and the footer.
	View(width, height int) string

	// Title is shown in the header, e.g. "Innings" or "Scorecard".
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints. All
// screens but the welcome splash implement it.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
