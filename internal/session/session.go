// Package session holds the screen-level state machine of a quiz session.
// Transitions are pure: Reduce takes a State and an Action and returns the
// next State without touching anything else.
package session

import (
	"github.com/abhisek/edgequiz/internal/quiz"
)

// Screen identifies which view is active.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenLoading
	ScreenQuiz
	ScreenResult
	ScreenError
)

func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenLoading:
		return "loading"
	case ScreenQuiz:
		return "quiz"
	case ScreenResult:
		return "result"
	case ScreenError:
		return "error"
	}
	return "unknown"
}

// FetchFailedMessage is the only error text a player ever sees.
const FetchFailedMessage = "Rain stopped play. Could not fetch questions from the umpire (AI). " +
	"Please check your connection or API key."

// State is the full session state. The zero value is the start screen.
type State struct {
	Screen     Screen
	Difficulty quiz.Difficulty
	SessionID  string
	Questions  []quiz.Question
	Summary    *quiz.SessionSummary
	Err        string

	// Generation increases on every Begin. Fetch results carry the
	// generation they were requested for.
	Generation uint64
}

// Initial returns the start screen state.
func Initial() State {
	return State{Screen: ScreenStart}
}

// Action is an event that may move the session.
type Action interface {
	isAction()
}

// Begin starts a session at the chosen difficulty.
type Begin struct {
	Difficulty quiz.Difficulty
	SessionID  string
}

// FetchSucceeded delivers the questions for a generation.
type FetchSucceeded struct {
	Generation uint64
	Questions  []quiz.Question
}

// FetchFailed reports that the question source gave up.
type FetchFailed struct {
	Generation uint64
	Err        error
}

// Finish hands over the summary emitted by the quiz runner.
type Finish struct {
	Summary quiz.SessionSummary
}

// Restart returns to the start screen from Result or Error.
type Restart struct{}

func (Begin) isAction()          {}
func (FetchSucceeded) isAction() {}
func (FetchFailed) isAction()    {}
func (Finish) isAction()         {}
func (Restart) isAction()        {}

// Reduce applies a to s. Actions that do not fit the current screen, and
// fetch results from an older generation, leave s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Begin:
		if s.Screen != ScreenStart || !a.Difficulty.Valid() {
			return s
		}
		return State{
			Screen:     ScreenLoading,
			Difficulty: a.Difficulty,
			SessionID:  a.SessionID,
			Generation: s.Generation + 1,
		}

	case FetchSucceeded:
		if s.Screen != ScreenLoading || a.Generation != s.Generation {
			return s
		}
		if len(a.Questions) == 0 {
			return failed(s)
		}
		qs := make([]quiz.Question, len(a.Questions))
		copy(qs, a.Questions)
		s.Screen = ScreenQuiz
		s.Questions = qs
		return s

	case FetchFailed:
		if s.Screen != ScreenLoading || a.Generation != s.Generation {
			return s
		}
		return failed(s)

	case Finish:
		if s.Screen != ScreenQuiz {
			return s
		}
		summary := a.Summary
		s.Screen = ScreenResult
		s.Summary = &summary
		return s

	case Restart:
		if s.Screen != ScreenResult && s.Screen != ScreenError {
			return s
		}
		return State{Screen: ScreenStart, Generation: s.Generation}
	}
	return s
}

func failed(s State) State {
	s.Screen = ScreenError
	s.Questions = nil
	s.Err = FetchFailedMessage
	return s
}

// Stale reports whether a fetch result for generation no longer applies.
func (s State) Stale(generation uint64) bool {
	return s.Screen != ScreenLoading || generation != s.Generation
}
