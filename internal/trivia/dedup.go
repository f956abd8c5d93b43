package trivia

import (
	"fmt"
	"strings"

	"github.com/abhisek/edgequiz/internal/quiz"
)

// DuplicateValidator rejects a set that asks the same question twice.
// Prompts are compared case-insensitively with whitespace collapsed.
type DuplicateValidator struct{}

func (v *DuplicateValidator) Name() string { return "duplicate" }

func (v *DuplicateValidator) ValidateBatch(qs []quiz.Question) *ValidationError {
	seen := make(map[string]int, len(qs))
	for i, q := range qs {
		key := normalizePrompt(q.Prompt)
		if first, ok := seen[key]; ok {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d repeats question %d", i+1, first+1),
			}
		}
		seen[key] = i
	}
	return nil
}

func normalizePrompt(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
