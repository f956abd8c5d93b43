package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgequiz/internal/quiz"
	"github.com/abhisek/edgequiz/internal/ui/components"
	"github.com/abhisek/edgequiz/internal/ui/theme"
)

// lowTime is the threshold below which the clock turns red.
const lowTime = 5

func (p *PlayScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	r := p.runner

	sections := []string{
		p.renderScoreboard(cw),
		p.renderClockBar(cw),
		p.renderQuestion(cw),
	}
	if r.Answered() {
		sections = append(sections, p.renderVerdict(cw))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func (p *PlayScreen) renderScoreboard(cw int) string {
	r := p.runner
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)

	clockStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	if r.Remaining() < lowTime {
		clockStyle = clockStyle.Foreground(theme.Error)
	}

	over := dim.Render("Over: ") + val.Render(fmt.Sprintf("%d/%d", r.Index()+1, r.Total()))
	clock := clockStyle.Render(fmt.Sprintf("00:%02d", r.Remaining()))
	runs := dim.Render("Runs: ") + val.Render(fmt.Sprintf("%d", r.Score()))

	gap := (cw - 4 - lipgloss.Width(over) - lipgloss.Width(clock) - lipgloss.Width(runs)) / 2
	if gap < 2 {
		gap = 2
	}
	line := over + strings.Repeat(" ", gap) + clock + strings.Repeat(" ", gap) + runs

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(line)
}

func (p *PlayScreen) renderClockBar(cw int) string {
	remaining := p.runner.Remaining()
	bar := components.NewProgressBar("", float64(remaining)/float64(quiz.QuestionTime), false, cw)
	bar.Color = theme.Primary
	if remaining < lowTime {
		bar.Color = theme.Error
	}
	return bar.View()
}

func (p *PlayScreen) renderQuestion(cw int) string {
	q := p.runner.Current()
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw - 6).
		Render(q.Prompt)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Padding(0, 2).
		Render(prompt + "\n\n" + p.choice.View(cw-6))
}

func (p *PlayScreen) renderVerdict(cw int) string {
	r := p.runner
	q := r.Current()

	var verdict string
	switch {
	case r.Selected() == quiz.NoSelection:
		verdict = theme.Incorrect.Render("TIMED OUT! The ball is dead.")
	case q.IsCorrect(r.Selected()):
		verdict = theme.Correct.Render(fmt.Sprintf("SHOT! +%d runs", p.lastRuns()))
	default:
		verdict = theme.Incorrect.Render("OUT! Wrong answer.")
	}

	call := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("Umpire's Call") +
		"\n" + lipgloss.NewStyle().Foreground(theme.Text).Width(cw-6).Render(q.Explanation)
	callBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeYellow).
		Width(cw-2).
		Padding(0, 2).
		Render(call)

	label := "Next Ball"
	if r.IsLast() {
		label = "Finish Innings"
	}
	button := components.NewButton(label, true).View()

	return components.Centered(verdict, cw) + "\n" + callBox + "\n" + components.Centered(button, cw)
}
