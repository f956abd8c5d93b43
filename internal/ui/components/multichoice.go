package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgequiz/internal/ui/theme"
)

// OptionLabels are the letters shown next to each option.
var OptionLabels = []string{"A", "B", "C", "D"}

// MultiChoice is a four-option selector. Once submitted it reveals the
// correct option and the player's choice.
type MultiChoice struct {
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update handles cursor movement and enter. Letter and digit shortcuts
// are resolved by the caller through Choose.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m = m.Choose(m.Selected)
	}

	return m, nil
}

// Choose submits option i. Out-of-range indexes are ignored.
func (m MultiChoice) Choose(i int) MultiChoice {
	if m.Submitted || i < 0 || i >= len(m.Options) {
		return m
	}
	m.Selected = i
	m.Submitted = true
	m.ChosenIndex = i
	return m
}

// Reveal locks the selector without a choice, as when time runs out.
func (m MultiChoice) Reveal() MultiChoice {
	m.Submitted = true
	return m
}

// View renders the options, one per line.
func (m MultiChoice) View(width int) string {
	lines := make([]string, 0, len(m.Options))

	for i, opt := range m.Options {
		label := "?"
		if i < len(OptionLabels) {
			label = OptionLabels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		mark := ""
		if m.Submitted && i == m.CorrectIndex {
			mark = "  ✓"
		} else if m.Submitted && i == m.ChosenIndex {
			mark = "  ✗"
		}

		line := fmt.Sprintf("%s%s)  %s%s", prefix, label, opt, mark)
		style := lipgloss.NewStyle().Width(width)

		switch {
		case m.Submitted && i == m.CorrectIndex:
			style = style.Foreground(theme.Success).Bold(true)
		case m.Submitted && i == m.ChosenIndex:
			style = style.Foreground(theme.Error).Bold(true)
		case m.Submitted:
			style = style.Foreground(theme.TextDim)
		case i == m.Selected:
			style = style.Foreground(theme.ArcadeYellow).Bold(true)
		default:
			style = style.Foreground(theme.Text)
		}
		lines = append(lines, style.Render(line))
	}

	return strings.Join(lines, "\n")
}

// IsCorrect returns true if the player chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
