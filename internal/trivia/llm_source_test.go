package trivia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/edgequiz/internal/llm"
	"github.com/abhisek/edgequiz/internal/quiz"
)

func questionJSON(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{
			"question": "Who scored century number %d?",
			"options": ["Tendulkar", "Ponting", "Kallis", "Sangakkara"],
			"correct_index": %d,
			"explanation": "A fact about century %d."
		}`, i+1, i%4, i+1)
	}
	return `{"questions": [` + strings.Join(items, ",") + `]}`
}

func newSource(responses ...llm.MockResponse) (*LLMSource, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	return New(mock, DefaultConfig()), mock
}

func TestFetchQuestions_HappyPath(t *testing.T) {
	src, mock := newSource(llm.MockResponse{Content: json.RawMessage(questionJSON(5))})

	qs, err := src.FetchQuestions(context.Background(), quiz.Medium, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(qs))
	}
	if qs[0].Prompt != "Who scored century number 1?" || qs[1].CorrectIndex != 1 {
		t.Errorf("unexpected questions: %+v", qs[:2])
	}

	req, _ := mock.LastCall()
	if req.Schema != QuestionSetSchema {
		t.Error("expected the question set schema on the request")
	}
	if req.MaxTokens != 2048 || req.Temperature != 0.7 {
		t.Errorf("unexpected request budget: %d tokens, %.1f temperature", req.MaxTokens, req.Temperature)
	}
	if !strings.Contains(req.Messages[0].Content, "Generate 5 multiple-choice") {
		t.Errorf("user message missing count: %q", req.Messages[0].Content)
	}
}

func TestFetchQuestions_TruncatesLongResponse(t *testing.T) {
	src, _ := newSource(llm.MockResponse{Content: json.RawMessage(questionJSON(7))})

	qs, err := src.FetchQuestions(context.Background(), quiz.Easy, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 5 {
		t.Fatalf("expected truncation to 5, got %d", len(qs))
	}
}

func TestFetchQuestions_AcceptsShortResponse(t *testing.T) {
	src, _ := newSource(llm.MockResponse{Content: json.RawMessage(questionJSON(3))})

	qs, err := src.FetchQuestions(context.Background(), quiz.Hard, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(qs))
	}
}

func TestFetchQuestions_Failures(t *testing.T) {
	badIndex := `{"questions": [{"question": "Q?", "options": ["a","b","c","d"], "correct_index": 4, "explanation": "x"}]}`
	threeOptions := `{"questions": [{"question": "Q?", "options": ["a","b","c"], "correct_index": 0, "explanation": "x"}]}`
	dupes := `{"questions": [
		{"question": "Who is the Don?", "options": ["a","b","c","d"], "correct_index": 0, "explanation": "x"},
		{"question": "who is  the don?", "options": ["e","f","g","h"], "correct_index": 1, "explanation": "y"}
	]}`

	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrRateLimit{}}},
		{"not json", llm.MockResponse{Content: json.RawMessage(`howzat`)}},
		{"empty list", llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)}},
		{"index out of range", llm.MockResponse{Content: json.RawMessage(badIndex)}},
		{"three options", llm.MockResponse{Content: json.RawMessage(threeOptions)}},
		{"duplicate prompts", llm.MockResponse{Content: json.RawMessage(dupes)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, _ := newSource(tt.resp)
			qs, err := src.FetchQuestions(context.Background(), quiz.Googly, 5)
			if err == nil {
				t.Fatalf("expected error, got %d questions", len(qs))
			}
			if !errors.Is(err, ErrQuestionFetchFailed) {
				t.Fatalf("expected ErrQuestionFetchFailed, got: %v", err)
			}
			var fe *FetchError
			if !errors.As(err, &fe) || fe.Difficulty != quiz.Googly {
				t.Fatalf("expected *FetchError for Googly, got: %#v", err)
			}
		})
	}
}

func TestFetchQuestions_KeepsCause(t *testing.T) {
	src, _ := newSource(llm.MockResponse{Err: &llm.ErrRateLimit{}})

	_, err := src.FetchQuestions(context.Background(), quiz.Easy, 5)
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected the rate limit cause to be kept, got: %v", err)
	}
}

func TestFetchQuestions_InvalidArguments(t *testing.T) {
	src, mock := newSource(llm.MockResponse{Content: json.RawMessage(questionJSON(1))})

	if _, err := src.FetchQuestions(context.Background(), quiz.Easy, 0); !errors.Is(err, ErrQuestionFetchFailed) {
		t.Errorf("expected failure for zero count, got %v", err)
	}
	if _, err := src.FetchQuestions(context.Background(), quiz.Difficulty(9), 5); !errors.Is(err, ErrQuestionFetchFailed) {
		t.Errorf("expected failure for unknown difficulty, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no provider calls, got %d", mock.CallCount())
	}
}

func TestFetchQuestions_TrimsWhitespace(t *testing.T) {
	raw := `{"questions": [{"question": "  Who? ", "options": [" a","b ","c","d"], "correct_index": 0, "explanation": " x "}]}`
	src, _ := newSource(llm.MockResponse{Content: json.RawMessage(raw)})

	qs, err := src.FetchQuestions(context.Background(), quiz.Easy, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qs[0].Prompt != "Who?" || qs[0].Options[0] != "a" || qs[0].Options[1] != "b" || qs[0].Explanation != "x" {
		t.Errorf("expected trimmed fields, got %+v", qs[0])
	}
}

// purposeProvider records the purpose label of each call.
type purposeProvider struct {
	llm.Provider
	purposes []string
}

func (p *purposeProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	p.purposes = append(p.purposes, llm.PurposeFrom(ctx))
	return p.Provider.Generate(ctx, req)
}

func TestFetchQuestions_Purpose(t *testing.T) {
	pp := &purposeProvider{Provider: llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(questionJSON(1))},
		llm.MockResponse{Content: json.RawMessage(questionJSON(1))},
	)}
	src := New(pp, DefaultConfig())

	src.FetchQuestions(context.Background(), quiz.Easy, 1)
	src.FetchQuestions(llm.WithPurpose(context.Background(), "preview"), quiz.Easy, 1)

	if len(pp.purposes) != 2 || pp.purposes[0] != "question-gen" || pp.purposes[1] != "preview" {
		t.Fatalf("unexpected purposes: %v", pp.purposes)
	}
}
