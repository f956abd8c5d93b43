package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/edgequiz/internal/llm"
	"github.com/abhisek/edgequiz/internal/logging"
	"github.com/abhisek/edgequiz/internal/quiz"
	"github.com/abhisek/edgequiz/internal/router"
	"github.com/abhisek/edgequiz/internal/screen"
	"github.com/abhisek/edgequiz/internal/screens/failure"
	"github.com/abhisek/edgequiz/internal/screens/loading"
	"github.com/abhisek/edgequiz/internal/screens/play"
	"github.com/abhisek/edgequiz/internal/screens/result"
	"github.com/abhisek/edgequiz/internal/screens/start"
	"github.com/abhisek/edgequiz/internal/screens/welcome"
	"github.com/abhisek/edgequiz/internal/session"
	"github.com/abhisek/edgequiz/internal/trivia"
	"github.com/abhisek/edgequiz/internal/ui/layout"
)

// DefaultFetchTimeout bounds a question fetch when Options.Timeout is unset.
const DefaultFetchTimeout = 30 * time.Second

var errNoSource = errors.New("no question source configured")

// Options configures the TUI.
type Options struct {
	Source    trivia.Source
	Logger    *slog.Logger
	Questions int
	Timeout   time.Duration

	// AutoStart skips the welcome splash and the menu and begins a
	// session at Difficulty straight away.
	AutoStart  bool
	Difficulty quiz.Difficulty
}

// AppModel is the root Bubble Tea model. It owns the session state and
// swaps the active screen whenever the state machine moves.
type AppModel struct {
	router *router.Router
	state  session.State

	source    trivia.Source
	logger    *slog.Logger
	questions int
	timeout   time.Duration

	autoStart  bool
	difficulty quiz.Difficulty

	width  int
	height int
}

// newAppModel creates an AppModel that opens on the welcome splash, or on
// the start screen when AutoStart is set.
func newAppModel(opts Options) AppModel {
	m := AppModel{
		state:      session.Initial(),
		source:     opts.Source,
		logger:     opts.Logger,
		questions:  opts.Questions,
		timeout:    opts.Timeout,
		autoStart:  opts.AutoStart,
		difficulty: opts.Difficulty,
	}
	if m.logger == nil {
		m.logger = logging.Discard()
	}
	if m.questions <= 0 {
		m.questions = quiz.DefaultQuestionCount
	}
	if m.timeout <= 0 {
		m.timeout = DefaultFetchTimeout
	}

	questions := m.questions
	if m.autoStart {
		m.router = router.New(start.New(questions))
	} else {
		m.router = router.New(welcome.New(func() screen.Screen {
			return start.New(questions)
		}))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	cmd := m.router.Active().Init()
	if m.autoStart {
		begin := session.Begin{Difficulty: m.difficulty}
		return tea.Batch(cmd, func() tea.Msg { return begin })
	}
	return cmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case session.Action:
		return m.dispatch(msg)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// dispatch runs a through the state machine and rebuilds the screen when
// the session moved.
func (m AppModel) dispatch(a session.Action) (tea.Model, tea.Cmd) {
	switch act := a.(type) {
	case session.Begin:
		if act.SessionID == "" {
			act.SessionID = uuid.NewString()
		}
		a = act
	case session.FetchSucceeded:
		if m.state.Stale(act.Generation) {
			m.logger.Info("dropping stale question set",
				"generation", act.Generation, "current", m.state.Generation)
			return m, nil
		}
	case session.FetchFailed:
		if m.state.Stale(act.Generation) {
			m.logger.Info("dropping stale fetch failure",
				"generation", act.Generation, "current", m.state.Generation, "err", act.Err)
			return m, nil
		}
		m.logger.Warn("question fetch failed",
			"session", m.state.SessionID, "difficulty", m.state.Difficulty.String(), "err", act.Err)
	}

	prev := m.state
	m.state = session.Reduce(m.state, a)
	if m.state.Screen == prev.Screen && m.state.Generation == prev.Generation {
		return m, nil
	}
	m.logTransition(prev)

	next, err := m.screenFor(m.state)
	if err != nil {
		m.logger.Error("cannot build screen", "screen", m.state.Screen.String(), "err", err)
		next = failure.New("")
	}

	cmds := []tea.Cmd{m.router.Reset(next)}
	if m.state.Screen == session.ScreenLoading {
		cmds = append(cmds, m.fetchCmd(m.state))
	}
	return m, tea.Batch(cmds...)
}

func (m AppModel) logTransition(prev session.State) {
	s := m.state
	switch s.Screen {
	case session.ScreenLoading:
		m.logger.Info("session begin",
			"session", s.SessionID, "difficulty", s.Difficulty.String(),
			"generation", s.Generation, "questions", m.questions)
	case session.ScreenQuiz:
		m.logger.Info("questions ready", "session", s.SessionID, "count", len(s.Questions))
	case session.ScreenResult:
		rep := quiz.BuildReport(*s.Summary)
		m.logger.Info("session finished",
			"session", s.SessionID, "runs", rep.Runs, "accuracy", rep.Accuracy, "rank", rep.Rank.String())
	default:
		m.logger.Debug("session moved", "from", prev.Screen.String(), "to", s.Screen.String())
	}
}

// screenFor builds the screen that presents s.
func (m AppModel) screenFor(s session.State) (screen.Screen, error) {
	switch s.Screen {
	case session.ScreenLoading:
		return loading.New(s.Difficulty), nil
	case session.ScreenQuiz:
		return play.New(s.Difficulty, s.Questions)
	case session.ScreenResult:
		if s.Summary == nil {
			return nil, fmt.Errorf("result screen without a summary")
		}
		return result.New(*s.Summary), nil
	case session.ScreenError:
		return failure.New(s.Err), nil
	default:
		return start.New(m.questions), nil
	}
}

// fetchCmd requests the questions for the session in s. The result carries
// the generation it was issued for.
func (m AppModel) fetchCmd(s session.State) tea.Cmd {
	src, timeout, count := m.source, m.timeout, m.questions
	gen, d, id := s.Generation, s.Difficulty, s.SessionID

	return func() tea.Msg {
		if src == nil {
			return session.FetchFailed{Generation: gen, Err: errNoSource}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		ctx = llm.WithSessionID(llm.WithPurpose(ctx, "question-gen"), id)

		qs, err := src.FetchQuestions(ctx, d, count)
		if err != nil {
			return session.FetchFailed{Generation: gen, Err: err}
		}
		return session.FetchSucceeded{Generation: gen, Questions: qs}
	}
}

// State returns the current session state.
func (m AppModel) State() session.State {
	return m.state
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	difficulty := ""
	if m.state.Screen != session.ScreenStart {
		difficulty = m.state.Difficulty.String()
	}
	header := layout.RenderHeader(title, difficulty, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
