package result

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/edgequiz/internal/quiz"
	"github.com/abhisek/edgequiz/internal/session"
)

func question(prompt string) quiz.Question {
	return quiz.Question{
		Prompt:       prompt,
		Options:      []string{"Lord's", "The Oval", "Eden Gardens", "MCG"},
		CorrectIndex: 3,
		Explanation:  "The MCG hosted the first Test in 1877.",
	}
}

func testSummary() quiz.SessionSummary {
	return quiz.SessionSummary{
		Score: 35,
		Records: []quiz.AnsweredRecord{
			{Question: question("Where was the first Test played?"), Selected: 3, TimeTaken: 4},
			{Question: question("Which ground is the home of cricket?"), Selected: 3, TimeTaken: 2},
			{Question: question("Where is the Boxing Day Test played?"), Selected: 0, TimeTaken: 9},
			{Question: question("Which ground hosts the Ashes opener?"), Selected: quiz.NoSelection, TimeTaken: 20},
		},
	}
}

func TestResultScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Scorecard" {
		t.Errorf("Title = %q, want %q", s.Title(), "Scorecard")
	}
}

func TestResultScreen_Report(t *testing.T) {
	rep := New(testSummary()).Report()
	if rep.Runs != 35 || rep.Wickets != 2 || rep.Accuracy != 50 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if rep.Rank != quiz.RankTailender {
		t.Fatalf("rank = %v, want Tailender", rep.Rank)
	}
}

func TestResultScreen_Display(t *testing.T) {
	view := New(testSummary()).View(100, 40)
	for _, want := range []string{
		"INNINGS CLOSED", "Tailender", "Runs", "35", "Wickets", "Strike Rate", "50%",
		"Ball by Ball", "✓", "✗", "⏱", "Ans: MCG", "20s", "Play Again",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultScreen_PlayAgain(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: 'r', Text: "r"},
	} {
		s := New(testSummary())
		_, cmd := s.Update(key)
		if cmd == nil {
			t.Fatalf("expected a command for %q", key.String())
		}
		if _, ok := cmd().(session.Restart); !ok {
			t.Errorf("key %q: expected session.Restart", key.String())
		}
	}
}

func TestResultScreen_OtherKeysIgnored(t *testing.T) {
	s := New(testSummary())
	if _, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("unexpected command for x")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Who scored the most runs?", 10); got != "Who sco..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
}

func TestRankColorCoversAllRanks(t *testing.T) {
	for _, r := range []quiz.Rank{quiz.RankDon, quiz.RankTopOrder, quiz.RankAllRounder, quiz.RankTailender, quiz.RankWaterBoy} {
		if rankColor(r) == nil {
			t.Errorf("no colour for %v", r)
		}
	}
}
