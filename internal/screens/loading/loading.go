// Package loading shows a spinner while the questions are fetched.
package loading

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgequiz/internal/quiz"
	"github.com/abhisek/edgequiz/internal/screen"
	"github.com/abhisek/edgequiz/internal/ui/layout"
	"github.com/abhisek/edgequiz/internal/ui/theme"
)

// Message is the text shown under the spinner.
const Message = "Consulting the Third Umpire..."

// LoadingScreen animates until the app replaces it with the quiz or the
// error screen. It never issues commands of its own besides the spinner.
type LoadingScreen struct {
	difficulty quiz.Difficulty
	spinner    spinner.Model
}

var _ screen.Screen = (*LoadingScreen)(nil)
var _ screen.KeyHintProvider = (*LoadingScreen)(nil)

func New(d quiz.Difficulty) *LoadingScreen {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.ArcadeYellow)),
	)
	return &LoadingScreen{difficulty: d, spinner: sp}
}

func (l *LoadingScreen) Init() tea.Cmd {
	return l.spinner.Tick
}

func (l *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd
	}
	return l, nil
}

func (l *LoadingScreen) Title() string {
	return "Toss"
}

func (l *LoadingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

func (l *LoadingScreen) View(width, height int) string {
	line := l.spinner.View() + " " + lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Message)
	sub := theme.Subtitle.Render(l.difficulty.CardTitle())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, line+"\n\n"+sub)
}
