package start

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgequiz/internal/quiz"
	"github.com/abhisek/edgequiz/internal/screens/welcome"
	"github.com/abhisek/edgequiz/internal/ui/components"
	"github.com/abhisek/edgequiz/internal/ui/theme"
)

// buttonWidth is the fixed width for the rules and exit buttons.
const buttonWidth = 18

func renderTitle(width, cw int, compact bool) string {
	if compact {
		return components.Centered(theme.Title.Render("E D G E   Q U I Z"), cw)
	}
	return components.Centered(welcome.RenderBanner(width), cw) + "\n" +
		components.Centered(theme.Subtitle.Render("Pick a format. The Third Umpire sets the questions."), cw)
}

func renderCard(d quiz.Difficulty, selected bool, w int) string {
	border := theme.Border
	titleColor := theme.Text
	if selected {
		border = theme.ArcadeYellow
		titleColor = theme.ArcadeYellow
	}

	title := lipgloss.NewStyle().Foreground(titleColor).Bold(true).
		Render(fmt.Sprintf("[%d] %s", int(d)+1, d.CardTitle()))
	blurb := lipgloss.NewStyle().Foreground(theme.TextDim).Width(w - 4).
		Render(d.Blurb())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(w).
		Padding(0, 1).
		Render(title + "\n" + blurb)
}

// renderCardGrid lays the four cards out two per row.
func renderCardGrid(selected, cw int) string {
	cardW := (cw - 1) / 2
	var rows []string
	for i := 0; i < len(quiz.Difficulties); i += 2 {
		left := renderCard(quiz.Difficulties[i], selected == i, cardW)
		right := renderCard(quiz.Difficulties[i+1], selected == i+1, cardW)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	}
	return components.Centered(strings.Join(rows, "\n"), cw)
}

// renderCardList renders one line per tier for small terminals.
func renderCardList(selected, cw int) string {
	var lines []string
	for i, d := range quiz.Difficulties {
		label := fmt.Sprintf("%d  %s", i+1, d.CardTitle())
		if i == selected {
			lines = append(lines, theme.Selected.Render("▸ "+label))
		} else {
			lines = append(lines, theme.Unselected.Render("  "+label))
		}
	}
	return components.Centered(strings.Join(lines, "\n"), cw)
}

func renderButtons(selected, cw int) string {
	rulesBtn := components.ArcadeButton("HOW TO PLAY", selected == itemRules, buttonWidth)
	exitBtn := components.ArcadeButton("EXIT", selected == itemExit, buttonWidth)
	return components.Centered(lipgloss.JoinHorizontal(lipgloss.Top, rulesBtn, "  ", exitBtn), cw)
}
