package trivia

import (
	"fmt"

	"github.com/abhisek/edgequiz/internal/quiz"
)

// Validator checks a single generated question.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages and logs.
	Name() string

	// Validate returns nil if q passes.
	Validate(q quiz.Question) *ValidationError
}

// BatchValidator checks properties that span the whole question list.
type BatchValidator interface {
	Name() string
	ValidateBatch(qs []quiz.Question) *ValidationError
}

// ValidationError describes why a response failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
