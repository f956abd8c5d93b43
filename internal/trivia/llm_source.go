package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/edgequiz/internal/llm"
	"github.com/abhisek/edgequiz/internal/quiz"
)

// LLMSource implements Source with a single call to an LLM provider.
type LLMSource struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMSource with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMSource {
	return &LLMSource{provider: provider, config: cfg}
}

// questionSetOutput is the raw LLM response before validation.
type questionSetOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// FetchQuestions asks the provider for count questions. A response with at
// least one question is accepted and truncated to count; any invalid
// question fails the whole fetch.
func (s *LLMSource) FetchQuestions(ctx context.Context, difficulty quiz.Difficulty, count int) ([]quiz.Question, error) {
	if !difficulty.Valid() {
		return nil, fetchFailed(difficulty, fmt.Errorf("unknown difficulty"))
	}
	if count < 1 {
		return nil, fetchFailed(difficulty, fmt.Errorf("question count must be positive, got %d", count))
	}
	if llm.PurposeFrom(ctx) == "unknown" {
		ctx = llm.WithPurpose(ctx, "question-gen")
	}

	req := llm.Prompt(systemPrompt, buildUserMessage(difficulty, count), QuestionSetSchema)
	req.MaxTokens = s.config.MaxTokens
	req.Temperature = s.config.Temperature

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fetchFailed(difficulty, fmt.Errorf("LLM generation failed: %w", err))
	}

	var raw questionSetOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fetchFailed(difficulty, fmt.Errorf("failed to parse LLM response: %w", err))
	}
	if len(raw.Questions) == 0 {
		return nil, fetchFailed(difficulty, fmt.Errorf("response contained no questions"))
	}
	if len(raw.Questions) > count {
		raw.Questions = raw.Questions[:count]
	}

	questions := make([]quiz.Question, len(raw.Questions))
	for i, r := range raw.Questions {
		q := quiz.Question{
			Prompt:       strings.TrimSpace(r.Question),
			Options:      trimAll(r.Options),
			CorrectIndex: r.CorrectIndex,
			Explanation:  strings.TrimSpace(r.Explanation),
		}
		for _, v := range s.config.Validators {
			if verr := v.Validate(q); verr != nil {
				return nil, fetchFailed(difficulty, fmt.Errorf("question %d: %w", i+1, verr))
			}
		}
		questions[i] = q
	}

	for _, v := range s.config.BatchValidators {
		if verr := v.ValidateBatch(questions); verr != nil {
			return nil, fetchFailed(difficulty, verr)
		}
	}

	return questions, nil
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
