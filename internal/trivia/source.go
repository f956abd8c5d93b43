package trivia

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/edgequiz/internal/quiz"
)

// Source produces the questions for one quiz session.
type Source interface {
	// FetchQuestions returns up to count questions at the given difficulty,
	// in presentation order. Every failure matches ErrQuestionFetchFailed.
	FetchQuestions(ctx context.Context, difficulty quiz.Difficulty, count int) ([]quiz.Question, error)
}

// ErrQuestionFetchFailed is the single error kind a Source reports.
var ErrQuestionFetchFailed = errors.New("question fetch failed")

// FetchError keeps the underlying cause of a failed fetch for logging.
// It matches ErrQuestionFetchFailed under errors.Is.
type FetchError struct {
	Difficulty quiz.Difficulty
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s questions: %v", e.Difficulty, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool {
	return target == ErrQuestionFetchFailed
}

func fetchFailed(d quiz.Difficulty, err error) error {
	return &FetchError{Difficulty: d, Err: err}
}
