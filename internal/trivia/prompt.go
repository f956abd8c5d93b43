package trivia

import (
	"fmt"
	"strings"

	"github.com/abhisek/edgequiz/internal/quiz"
)

const systemPrompt = `You are a cricket expert and trivia master. Your questions should be accurate, engaging, and diverse.

Rules:
- Every question has exactly 4 options and exactly one of them is correct.
- Options must be distinct. Distractors should be plausible, not silly.
- correct_index is the 0-based position of the correct option.
- The explanation is one or two sentences with an interesting fact behind the answer.
- Do not repeat a question within the same set.
- Return strictly JSON.`

// buildUserMessage asks for count questions at the given tier.
func buildUserMessage(d quiz.Difficulty, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d multiple-choice cricket quiz questions.\n", count)
	fmt.Fprintf(&b, "Difficulty Level: %s.\n", d.PromptLabel())
	b.WriteString("Focus on international cricket (Tests, ODIs, T20s), famous players, historic moments, and rules.\n")
	if d == quiz.Googly {
		b.WriteString("This is the Googly tier: include obscure stats or tricky rule interpretations.\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
