// Package start implements the difficulty menu that opens every session.
package start

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edgequiz/internal/quiz"
	"github.com/abhisek/edgequiz/internal/router"
	"github.com/abhisek/edgequiz/internal/screen"
	"github.com/abhisek/edgequiz/internal/screens/rules"
	"github.com/abhisek/edgequiz/internal/session"
	"github.com/abhisek/edgequiz/internal/ui/components"
	"github.com/abhisek/edgequiz/internal/ui/layout"
)

// Menu positions after the difficulty cards.
var (
	itemRules = len(quiz.Difficulties)
	itemExit  = itemRules + 1
)

// StartScreen lists the four difficulty cards plus the rules and exit
// buttons. Choosing a card emits session.Begin.
type StartScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// New creates a StartScreen for sessions of the given length.
func New(questions int) *StartScreen {
	items := make([]components.MenuItem, 0, itemExit+1)
	for _, d := range quiz.Difficulties {
		items = append(items, components.MenuItem{
			Label: d.CardTitle(),
			Action: func() tea.Cmd {
				return func() tea.Msg { return session.Begin{Difficulty: d} }
			},
		})
	}
	items = append(items,
		components.MenuItem{Label: "HOW TO PLAY", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: rules.New(questions)} }
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)
	return &StartScreen{menu: components.NewMenu(items)}
}

func (s *StartScreen) Init() tea.Cmd {
	return nil
}

func (s *StartScreen) Title() string {
	return "Choose Your Format"
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-4", Description: "Format"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Selected returns the index of the highlighted menu item.
func (s *StartScreen) Selected() int {
	return s.menu.Selected
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	var cmd tea.Cmd
	switch k := kmsg.String(); k {
	case "1", "2", "3", "4":
		s.menu, cmd = s.menu.Choose(int(k[0] - '1'))
	case "?":
		s.menu, cmd = s.menu.Choose(itemRules)
	case "q":
		s.menu, cmd = s.menu.Choose(itemExit)
	case "left", "h":
		// Cards sit in a 2x2 grid; left/right hop between columns.
		if s.menu.Selected < itemRules && s.menu.Selected%2 == 1 {
			s.menu.Selected--
		}
	case "right", "l":
		if s.menu.Selected < itemRules && s.menu.Selected%2 == 0 {
			s.menu.Selected++
		}
	default:
		s.menu, cmd = s.menu.Update(msg)
	}
	return s, cmd
}

func (s *StartScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) ||
		layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(width, cw, compact))
	if compact {
		sections = append(sections, renderCardList(s.menu.Selected, cw))
	} else {
		sections = append(sections, renderCardGrid(s.menu.Selected, cw))
	}
	sections = append(sections, renderButtons(s.menu.Selected, cw))

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.CabinetFrame(strings.Join(sections, sep), width, height)
}
