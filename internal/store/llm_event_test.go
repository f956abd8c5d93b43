package store

import (
	"context"
	"testing"
	"time"
)

func seedEvents(t *testing.T, repo EventRepo) {
	t.Helper()
	ctx := context.Background()
	events := []LLMRequestEventData{
		{SessionID: "s1", Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-gen", InputTokens: 100, OutputTokens: 400, LatencyMs: 900, Success: true, RequestBody: "[user]\nfive questions", ResponseBody: `{"questions":[]}`},
		{SessionID: "s1", Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-gen", InputTokens: 120, OutputTokens: 0, LatencyMs: 300, Success: false, ErrorMessage: "rate limited"},
		{SessionID: "", Provider: "openai", Model: "gpt-4o-mini", Purpose: "preview", InputTokens: 90, OutputTokens: 350, LatencyMs: 1200, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
}

func TestQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	seedEvents(t, repo)
	ctx := context.Background()

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	if all[0].Sequence != 3 || all[2].Sequence != 1 {
		t.Fatalf("expected newest first, got sequences %d..%d", all[0].Sequence, all[2].Sequence)
	}
	if all[2].ResponseBody != `{"questions":[]}` || !all[2].Success {
		t.Fatalf("first event not round-tripped: %+v", all[2])
	}
	if all[1].Success || all[1].ErrorMessage != "rate limited" {
		t.Fatalf("failed event not round-tripped: %+v", all[1])
	}

	tests := []struct {
		name string
		opts QueryOpts
		want int
	}{
		{"limit", QueryOpts{Limit: 2}, 2},
		{"purpose", QueryOpts{Purpose: "question-gen"}, 2},
		{"session", QueryOpts{SessionID: "s1"}, 2},
		{"after", QueryOpts{After: 1}, 2},
		{"before", QueryOpts{Before: 3}, 2},
		{"window", QueryOpts{After: 1, Before: 3}, 1},
		{"from future", QueryOpts{From: time.Now().Add(time.Hour)}, 0},
		{"to future", QueryOpts{To: time.Now().Add(time.Hour)}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.QueryLLMEvents(ctx, tt.opts)
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d events, want %d", len(got), tt.want)
			}
		})
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	seedEvents(t, repo)
	ctx := context.Background()

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil || len(all) != 1 {
		t.Fatalf("query: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e.Provider != "openai" || e.Purpose != "preview" {
		t.Fatalf("unexpected event: %+v", e)
	}

	_, err = repo.GetLLMEvent(ctx, 9999)
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	seedEvents(t, repo)

	usage, err := repo.LLMUsageByPurpose(context.Background())
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("expected 2 purposes, got %+v", usage)
	}
	// Ordered by purpose name.
	preview, qgen := usage[0], usage[1]
	if preview.Purpose != "preview" || qgen.Purpose != "question-gen" {
		t.Fatalf("unexpected order: %+v", usage)
	}
	if qgen.Calls != 2 || qgen.Failures != 1 || qgen.InputTokens != 220 || qgen.OutputTokens != 400 {
		t.Fatalf("unexpected question-gen usage: %+v", qgen)
	}
	if qgen.AvgLatencyMs != 600 {
		t.Fatalf("avg latency = %d, want 600", qgen.AvgLatencyMs)
	}
}

func TestLLMUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	seedEvents(t, repo)

	usage, err := repo.LLMUsageByModel(context.Background())
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("expected 2 models, got %+v", usage)
	}
	if usage[0].Model != "gemini-2.5-flash" || usage[0].Calls != 2 || usage[0].OutputTokens != 400 {
		t.Fatalf("unexpected top model: %+v", usage[0])
	}
}

func TestUsageOnEmptyStore(t *testing.T) {
	s := openTestStore(t)
	usage, err := s.EventRepo().LLMUsageByPurpose(context.Background())
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 0 {
		t.Fatalf("expected no rows, got %+v", usage)
	}
}
