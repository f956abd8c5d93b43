package quiz

const (
	// OptionCount is the number of choices every question carries.
	OptionCount = 4

	// QuestionTime is the per-question countdown in seconds.
	QuestionTime = 20

	// DefaultQuestionCount is the session length used when none is configured.
	DefaultQuestionCount = 5

	// NoSelection marks a record whose question timed out unanswered.
	NoSelection = -1
)

// Question is one multiple-choice trivia item. It is never modified after
// the question source hands it over.
type Question struct {
	Prompt       string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// IsCorrect reports whether option is the right answer.
func (q Question) IsCorrect(option int) bool {
	return option != NoSelection && option == q.CorrectIndex
}

// CorrectOption returns the text of the right answer.
func (q Question) CorrectOption() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// AnsweredRecord is the outcome of one question.
type AnsweredRecord struct {
	Question  Question
	Selected  int // option index, or NoSelection on timeout
	TimeTaken int // seconds, 0..QuestionTime
}

// Correct reports whether the selected option was the right one.
func (r AnsweredRecord) Correct() bool {
	return r.Question.IsCorrect(r.Selected)
}

// TimedOut reports whether the question expired without a selection.
func (r AnsweredRecord) TimedOut() bool {
	return r.Selected == NoSelection
}

// SessionSummary is the finalized result of a completed session.
type SessionSummary struct {
	Score   int
	Records []AnsweredRecord
}

// Points returns the runs awarded for a correct answer with remaining
// seconds left on the clock: 10 plus half the remaining time, rounded up.
func Points(remaining int) int {
	if remaining < 0 {
		remaining = 0
	}
	return 10 + (remaining+1)/2
}
