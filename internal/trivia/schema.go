package trivia

import (
	"github.com/abhisek/edgequiz/internal/llm"
	"github.com/abhisek/edgequiz/internal/quiz"
)

// QuestionSetSchema defines the JSON schema for a batch of trivia questions.
var QuestionSetSchema = &llm.Schema{
	Name:        "cricket-question-set",
	Description: "A list of multiple-choice cricket trivia questions with answers and explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question shown to the player",
						},
						"options": map[string]any{
							"type":        "array",
							"minItems":    quiz.OptionCount,
							"maxItems":    quiz.OptionCount,
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer options",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     quiz.OptionCount - 1,
							"description": "0-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Short interesting fact explaining the answer",
						},
					},
					"required":             []any{"question", "options", "correct_index", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
