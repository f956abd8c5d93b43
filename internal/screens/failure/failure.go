// Package failure is shown when the question fetch fails.
package failure

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgequiz/internal/screen"
	"github.com/abhisek/edgequiz/internal/session"
	"github.com/abhisek/edgequiz/internal/ui/components"
	"github.com/abhisek/edgequiz/internal/ui/layout"
	"github.com/abhisek/edgequiz/internal/ui/theme"
)

// FailureScreen tells the player the match was abandoned.
type FailureScreen struct {
	message string
}

var _ screen.Screen = (*FailureScreen)(nil)
var _ screen.KeyHintProvider = (*FailureScreen)(nil)

// New creates the screen. An empty message falls back to
// session.FetchFailedMessage.
func New(message string) *FailureScreen {
	if message == "" {
		message = session.FetchFailedMessage
	}
	return &FailureScreen{message: message}
}

func (s *FailureScreen) Init() tea.Cmd { return nil }

func (s *FailureScreen) Title() string { return "Abandoned" }

func (s *FailureScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/R", Description: "Return to Pavilion"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *FailureScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "r":
			return s, func() tea.Msg { return session.Restart{} }
		}
	}
	return s, nil
}

func (s *FailureScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("MATCH ABANDONED")
	cloud := lipgloss.NewStyle().Foreground(theme.TextDim).Render("☂  ☂  ☂")
	msg := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(cw - 8).
		Align(lipgloss.Center).
		Render(s.message)

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Error).
		Width(cw-2).
		Padding(1, 2).
		Render(strings.Join([]string{
			components.Centered(title, cw-8),
			components.Centered(cloud, cw-8),
			msg,
		}, "\n\n"))

	button := components.Centered(components.NewButton("Return to Pavilion", true).View(), cw)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		card+"\n\n"+button)
}
