// Package rules shows how scoring and controls work.
package rules

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgequiz/internal/quiz"
	"github.com/abhisek/edgequiz/internal/router"
	"github.com/abhisek/edgequiz/internal/screen"
	"github.com/abhisek/edgequiz/internal/ui/components"
	"github.com/abhisek/edgequiz/internal/ui/layout"
	"github.com/abhisek/edgequiz/internal/ui/theme"
)

// RulesScreen is pushed over the start menu; esc or enter returns.
type RulesScreen struct {
	questions int
}

var _ screen.Screen = (*RulesScreen)(nil)
var _ screen.KeyHintProvider = (*RulesScreen)(nil)

// New creates a RulesScreen for sessions of the given length.
func New(questions int) *RulesScreen {
	return &RulesScreen{questions: questions}
}

func (r *RulesScreen) Init() tea.Cmd {
	return nil
}

func (r *RulesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "q", "backspace":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return r, nil
}

func (r *RulesScreen) Title() string {
	return "How To Play"
}

func (r *RulesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back to the pavilion"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Lines returns the rule text, one entry per line.
func Lines(questions int) []string {
	return []string{
		fmt.Sprintf("Your innings is %d balls: one question per ball, four options each.", questions),
		fmt.Sprintf("You have %d seconds per ball. When the clock hits zero the ball is dead.", quiz.QuestionTime),
		fmt.Sprintf("A correct answer scores %d runs plus half the seconds left, rounded up.", quiz.Points(0)),
		"A wrong answer or a timeout costs a wicket and scores nothing.",
		"",
		"Answer with 1-4 or A-D, or move with ↑↓ and press Enter.",
		"After each ball, Enter or N bowls the next one.",
		"",
		"Strike rate 100%  The Don",
		"            80%+  Top Order Batter",
		"            60%+  Solid All-Rounder",
		"            40%+  Tailender",
		"           below  Water Boy",
	}
}

func (r *RulesScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).
		Render(strings.Join(Lines(r.questions), "\n"))
	heading := theme.Title.Render("HOW TO PLAY")
	content := heading + "\n\n" + components.ArcadeCard(body, cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
