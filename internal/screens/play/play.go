// Package play is the quiz screen: one question at a time against a
// per-question countdown.
package play

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edgequiz/internal/quiz"
	"github.com/abhisek/edgequiz/internal/screen"
	"github.com/abhisek/edgequiz/internal/session"
	"github.com/abhisek/edgequiz/internal/ui/components"
	"github.com/abhisek/edgequiz/internal/ui/layout"
)

// tickInterval is one second of game clock.
const tickInterval = time.Second

// tickMsg is a countdown tick. It is honoured only by the screen that
// scheduled it and only while id matches that screen's live countdown.
type tickMsg struct {
	owner *PlayScreen
	id    int
}

// PlayScreen runs a quiz.Runner and reports the finished innings as a
// session.Finish action.
type PlayScreen struct {
	runner     *quiz.Runner
	difficulty quiz.Difficulty
	choice     components.MultiChoice

	// tickID identifies the live countdown. Bumping it cancels every
	// tick already in flight.
	tickID   int
	finished bool
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates the quiz screen. It fails only for an empty question list.
func New(d quiz.Difficulty, questions []quiz.Question) (*PlayScreen, error) {
	r, err := quiz.NewRunner(questions)
	if err != nil {
		return nil, err
	}
	p := &PlayScreen{runner: r, difficulty: d}
	p.resetChoice()
	return p, nil
}

func (p *PlayScreen) resetChoice() {
	q := p.runner.Current()
	p.choice = components.NewMultiChoice(q.Options, q.CorrectIndex)
}

func (p *PlayScreen) Init() tea.Cmd {
	return p.startCountdown()
}

// startCountdown cancels any pending tick and schedules the first tick of
// a fresh countdown.
func (p *PlayScreen) startCountdown() tea.Cmd {
	p.tickID++
	return p.scheduleTick()
}

func (p *PlayScreen) scheduleTick() tea.Cmd {
	owner, id := p, p.tickID
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{owner: owner, id: id}
	})
}

func (p *PlayScreen) stopCountdown() {
	p.tickID++
}

func (p *PlayScreen) Title() string {
	return "Innings"
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.runner.Answered() {
		label := "Next Ball"
		if p.runner.IsLast() {
			label = "Finish Innings"
		}
		return []layout.KeyHint{
			{Key: "Enter/N", Description: label},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4/A-D", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Play shot"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Runner exposes the underlying runner for inspection.
func (p *PlayScreen) Runner() *quiz.Runner {
	return p.runner
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return p, p.handleTick(msg)
	case tea.KeyPressMsg:
		return p, p.handleKey(msg)
	}
	return p, nil
}

func (p *PlayScreen) handleTick(msg tickMsg) tea.Cmd {
	if msg.owner != p || msg.id != p.tickID || p.finished || p.runner.Answered() {
		return nil
	}
	if p.runner.Tick() {
		p.choice = p.choice.Reveal()
		p.stopCountdown()
		return nil
	}
	return p.scheduleTick()
}

func (p *PlayScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if p.finished {
		return nil
	}
	key := msg.String()

	if p.runner.Answered() {
		switch key {
		case "enter", "n", "right", "space":
			return p.advance()
		}
		return nil
	}

	switch key {
	case "1", "2", "3", "4":
		p.submit(int(key[0] - '1'))
		return nil
	case "a", "b", "c", "d":
		p.submit(int(key[0] - 'a'))
		return nil
	}

	p.choice, _ = p.choice.Update(msg)
	if p.choice.Submitted {
		p.submit(p.choice.ChosenIndex)
	}
	return nil
}

func (p *PlayScreen) submit(option int) {
	if !p.runner.Submit(option) {
		return
	}
	p.choice = p.choice.Choose(option)
	p.stopCountdown()
}

func (p *PlayScreen) advance() tea.Cmd {
	summary, ok := p.runner.Advance()
	if !ok {
		return nil
	}
	if summary != nil {
		p.finished = true
		s := *summary
		return func() tea.Msg { return session.Finish{Summary: s} }
	}
	p.resetChoice()
	return p.startCountdown()
}

// lastRuns returns the runs scored on the current ball, if answered.
func (p *PlayScreen) lastRuns() int {
	recs := p.runner.Records()
	if len(recs) == 0 {
		return 0
	}
	r := recs[len(recs)-1]
	if !r.Correct() {
		return 0
	}
	return quiz.Points(quiz.QuestionTime - r.TimeTaken)
}
