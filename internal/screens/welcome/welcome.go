package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgequiz/internal/router"
	"github.com/abhisek/edgequiz/internal/screen"
	"github.com/abhisek/edgequiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1000 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

const ballArt = `   ╭──────╮
  ╱ ┊    ┊ ╲
 │  ┊    ┊  │
  ╲ ┊    ┊ ╱
   ╰──────╯`

// swing frames trail the ball once it is in flight
var swingFrames = []string{"·  ", "·· ", "···"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation, then hands over to the start
// screen on the first key press or when the animation ends.
type WelcomeScreen struct {
	startFactory func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by startFactory.
func New(startFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		startFactory: startFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed += tickInterval
		w.tickCount++
		if w.elapsed >= totalDur {
			return w, w.transition()
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.startFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	ball := lipgloss.NewStyle().Foreground(theme.Ball).Bold(true).Render(ballArt)

	// Phase 2+: the ball swings
	if w.elapsed >= phase1End {
		trail := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(swingFrames[w.tickCount%len(swingFrames)])
		lines := strings.Split(ball, "\n")
		mid := len(lines) / 2
		lines[mid] = trail + " " + lines[mid]
		ball = strings.Join(lines, "\n")
	}
	sections = append(sections, ball)

	// Phase 3+: banner, tagline and hint
	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Test your cricket knowledge against the Third Umpire")
		sections = append(sections, tagline, "")

		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to take guard")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
