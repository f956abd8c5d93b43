package quiz

import "errors"

// ErrNoQuestions is returned when a runner is built from an empty list.
var ErrNoQuestions = errors.New("quiz: no questions")

// Runner drives one session over a fixed, ordered list of questions. It owns
// the countdown for the current question, the running score and the answer
// history, and produces exactly one SessionSummary.
//
// Runner is not safe for concurrent use; the TUI update loop delivers events
// one at a time.
type Runner struct {
	questions []Question
	index     int
	remaining int
	answered  bool
	selected  int
	score     int
	records   []AnsweredRecord
	summary   *SessionSummary
}

// NewRunner starts a session at the first question with a full clock.
func NewRunner(questions []Question) (*Runner, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Runner{
		questions: qs,
		remaining: QuestionTime,
		selected:  NoSelection,
		records:   make([]AnsweredRecord, 0, len(qs)),
	}, nil
}

// Current returns the question being played.
func (r *Runner) Current() Question { return r.questions[r.index] }

// Index is the 0-based position of the current question.
func (r *Runner) Index() int { return r.index }

// Total is the number of questions in the session.
func (r *Runner) Total() int { return len(r.questions) }

// Remaining is the number of seconds left on the current question.
func (r *Runner) Remaining() int { return r.remaining }

// Answered reports whether the current question has a record.
func (r *Runner) Answered() bool { return r.answered }

// Selected is the chosen option for the current question, or NoSelection.
func (r *Runner) Selected() int { return r.selected }

// Score is the running total.
func (r *Runner) Score() int { return r.score }

// Finished reports whether the summary has been produced.
func (r *Runner) Finished() bool { return r.summary != nil }

// IsLast reports whether the current question is the final one.
func (r *Runner) IsLast() bool { return r.index == len(r.questions)-1 }

// Records returns a copy of the answer history so far.
func (r *Runner) Records() []AnsweredRecord {
	out := make([]AnsweredRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Submit answers the current question with option. It returns false, and
// changes nothing, when the question is already answered, the session is
// finished or option is out of range.
func (r *Runner) Submit(option int) bool {
	if option < 0 || option >= len(r.Current().Options) {
		return false
	}
	return r.record(option)
}

// Expire closes the current question with no selection. It never scores.
func (r *Runner) Expire() bool {
	return r.record(NoSelection)
}

// Tick takes one second off the clock of an unanswered question. When the
// clock reaches zero the question expires; Tick reports true only for that
// call.
func (r *Runner) Tick() bool {
	if r.answered || r.Finished() {
		return false
	}
	if r.remaining > 0 {
		r.remaining--
	}
	if r.remaining == 0 {
		return r.Expire()
	}
	return false
}

func (r *Runner) record(option int) bool {
	if r.answered || r.Finished() {
		return false
	}
	q := r.Current()
	r.answered = true
	r.selected = option
	r.records = append(r.records, AnsweredRecord{
		Question:  q,
		Selected:  option,
		TimeTaken: QuestionTime - r.remaining,
	})
	if q.IsCorrect(option) {
		r.score += Points(r.remaining)
	}
	return true
}

// Advance moves past an answered question. On the last question it
// finalizes the session and returns the summary; the runner is inert
// afterwards. The second result reports whether anything happened.
func (r *Runner) Advance() (*SessionSummary, bool) {
	if !r.answered || r.Finished() {
		return nil, false
	}
	if r.index+1 < len(r.questions) {
		r.index++
		r.remaining = QuestionTime
		r.answered = false
		r.selected = NoSelection
		return nil, true
	}
	r.summary = &SessionSummary{
		Score:   r.score,
		Records: r.Records(),
	}
	s := *r.summary
	return &s, true
}
