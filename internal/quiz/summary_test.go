package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func summaryWith(correct, total int) SessionSummary {
	qs := sampleQuestions(total)
	var s SessionSummary
	for i, q := range qs {
		sel := (q.CorrectIndex + 1) % OptionCount
		if i < correct {
			sel = q.CorrectIndex
		}
		s.Records = append(s.Records, AnsweredRecord{Question: q, Selected: sel})
	}
	return s
}

func TestRankFor(t *testing.T) {
	tests := []struct {
		accuracy int
		want     Rank
	}{
		{100, RankDon},
		{99, RankTopOrder},
		{80, RankTopOrder},
		{79, RankAllRounder},
		{60, RankAllRounder},
		{59, RankTailender},
		{40, RankTailender},
		{39, RankWaterBoy},
		{0, RankWaterBoy},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RankFor(tt.accuracy), "accuracy=%d", tt.accuracy)
	}
}

func TestBuildReport(t *testing.T) {
	tests := []struct {
		name     string
		correct  int
		total    int
		accuracy int
		wickets  int
		rank     Rank
	}{
		{"all correct", 5, 5, 100, 0, RankDon},
		{"none correct", 0, 5, 0, 5, RankWaterBoy},
		{"four of five", 4, 5, 80, 1, RankTopOrder},
		{"two of three rounds up", 2, 3, 67, 1, RankAllRounder},
		{"one of three rounds down", 1, 3, 33, 2, RankWaterBoy},
		{"half", 1, 2, 50, 1, RankTailender},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := BuildReport(summaryWith(tt.correct, tt.total))
			assert.Equal(t, tt.total, r.Total)
			assert.Equal(t, tt.correct, r.Correct)
			assert.Equal(t, tt.accuracy, r.Accuracy)
			assert.Equal(t, tt.wickets, r.Wickets)
			assert.Equal(t, tt.rank, r.Rank)
		})
	}
}

func TestBuildReportTimeoutIsWicket(t *testing.T) {
	q := sampleQuestions(1)[0]
	s := SessionSummary{Records: []AnsweredRecord{{Question: q, Selected: NoSelection, TimeTaken: QuestionTime}}}
	r := BuildReport(s)
	assert.Equal(t, 1, r.Wickets)
	assert.Equal(t, 0, r.Accuracy)
}

func TestBuildReportEmpty(t *testing.T) {
	r := BuildReport(SessionSummary{})
	assert.Equal(t, 0, r.Accuracy)
	assert.Equal(t, RankWaterBoy, r.Rank)
}

func TestRankTitles(t *testing.T) {
	assert.Equal(t, "The Don", RankDon.String())
	assert.Equal(t, "Water Boy", RankWaterBoy.String())
}
