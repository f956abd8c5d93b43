// Package result renders the scorecard of a finished innings.
package result

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgequiz/internal/quiz"
	"github.com/abhisek/edgequiz/internal/screen"
	"github.com/abhisek/edgequiz/internal/session"
	"github.com/abhisek/edgequiz/internal/ui/components"
	"github.com/abhisek/edgequiz/internal/ui/layout"
	"github.com/abhisek/edgequiz/internal/ui/theme"
)

// maxPromptWidth caps how much of a question the ball-by-ball list shows.
const maxPromptWidth = 44

// ResultScreen displays the report built from a session summary.
type ResultScreen struct {
	report quiz.Report
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a new ResultScreen.
func New(summary quiz.SessionSummary) *ResultScreen {
	return &ResultScreen{report: quiz.BuildReport(summary)}
}

// Report returns the statistics shown on screen.
func (s *ResultScreen) Report() quiz.Report {
	return s.report
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Scorecard"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/R", Description: "Play Again"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "r":
			return s, func() tea.Msg { return session.Restart{} }
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	rep := s.report
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(components.Centered(lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render("INNINGS CLOSED"), cw))
	b.WriteString("\n\n")
	b.WriteString(components.Centered(lipgloss.NewStyle().
		Foreground(rankColor(rep.Rank)).
		Bold(true).
		Render(rep.Rank.String()), cw))
	b.WriteString("\n\n")

	b.WriteString(renderStats(rep, cw))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Accuracy", float64(rep.Accuracy)/100, true, cw)
	bar.Color = rankColor(rep.Rank)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))
	b.WriteString(components.Centered(
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Ball by Ball"), cw))
	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("\n")
	for i, rec := range rep.Balls {
		b.WriteString(renderBall(i, rec, cw))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(components.Centered(components.NewButton("Play Again", true).View(), cw))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func renderStats(rep quiz.Report, cw int) string {
	cell := func(label, value string, c color.Color) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(label),
			lipgloss.NewStyle().Foreground(c).Bold(true).Render(value))
	}
	cellStyle := lipgloss.NewStyle().Width((cw - 4) / 3).Align(lipgloss.Center)

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		cellStyle.Render(cell("Runs", fmt.Sprintf("%d", rep.Runs), theme.ArcadeYellow)),
		cellStyle.Render(cell("Wickets", fmt.Sprintf("%d", rep.Wickets), theme.Error)),
		cellStyle.Render(cell("Strike Rate", fmt.Sprintf("%d%%", rep.Accuracy), theme.ArcadeCyan)),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(row)
}

func renderBall(i int, rec quiz.AnsweredRecord, cw int) string {
	mark := theme.Correct.Render("✓")
	switch {
	case rec.TimedOut():
		mark = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("⏱")
	case !rec.Correct():
		mark = theme.Incorrect.Render("✗")
	}

	prompt := truncate(rec.Question.Prompt, min(maxPromptWidth, cw-16))
	head := fmt.Sprintf("%s %d. %s", mark, i+1,
		lipgloss.NewStyle().Foreground(theme.Text).Render(prompt))
	clock := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%2ds", rec.TimeTaken))

	pad := cw - lipgloss.Width(head) - lipgloss.Width(clock)
	if pad < 1 {
		pad = 1
	}
	answer := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("     Ans: " + rec.Question.CorrectOption())

	return head + strings.Repeat(" ", pad) + clock + "\n" + answer
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n < 4 || len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func rankColor(r quiz.Rank) color.Color {
	switch r {
	case quiz.RankDon:
		return theme.ArcadeYellow
	case quiz.RankTopOrder:
		return theme.Success
	case quiz.RankAllRounder:
		return theme.ArcadeCyan
	case quiz.RankTailender:
		return theme.Accent
	default:
		return theme.Error
	}
}
