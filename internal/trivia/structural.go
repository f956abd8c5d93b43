package trivia

import (
	"fmt"
	"strings"

	"github.com/abhisek/edgequiz/internal/quiz"
)

const (
	maxPromptLen      = 300
	maxOptionLen      = 120
	maxExplanationLen = 600
)

// StructuralValidator checks that every field is present, within length
// limits, and that the options and answer index are well formed.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q quiz.Question) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
	}

	prompt := strings.TrimSpace(q.Prompt)
	if prompt == "" {
		return fail("question is empty")
	}
	if len(prompt) > maxPromptLen {
		return fail("question exceeds %d characters", maxPromptLen)
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return fail("explanation is empty")
	}
	if len(q.Explanation) > maxExplanationLen {
		return fail("explanation exceeds %d characters", maxExplanationLen)
	}

	if len(q.Options) != quiz.OptionCount {
		return fail("expected exactly %d options, got %d", quiz.OptionCount, len(q.Options))
	}
	seen := make(map[string]bool, quiz.OptionCount)
	for i, o := range q.Options {
		o = strings.TrimSpace(o)
		if o == "" {
			return fail("option %d is empty", i+1)
		}
		if len(o) > maxOptionLen {
			return fail("option %d exceeds %d characters", i+1, maxOptionLen)
		}
		key := strings.ToLower(o)
		if seen[key] {
			return fail("duplicate option %q", o)
		}
		seen[key] = true
	}

	if q.CorrectIndex < 0 || q.CorrectIndex >= quiz.OptionCount {
		return fail("correct_index %d out of range 0-%d", q.CorrectIndex, quiz.OptionCount-1)
	}
	return nil
}
