package quiz

import "math"

// Rank is the tier awarded on the result screen.
type Rank int

const (
	RankWaterBoy Rank = iota
	RankTailender
	RankAllRounder
	RankTopOrder
	RankDon
)

var rankTitles = map[Rank]string{
	RankDon:        "The Don",
	RankTopOrder:   "Top Order Batter",
	RankAllRounder: "Solid All-Rounder",
	RankTailender:  "Tailender",
	RankWaterBoy:   "Water Boy",
}

func (r Rank) String() string { return rankTitles[r] }

// rankBands is evaluated top down; the first band whose floor is met wins.
var rankBands = []struct {
	floor int
	rank  Rank
}{
	{100, RankDon},
	{80, RankTopOrder},
	{60, RankAllRounder},
	{40, RankTailender},
	{0, RankWaterBoy},
}

// RankFor maps an accuracy percentage to its tier.
func RankFor(accuracy int) Rank {
	for _, b := range rankBands {
		if accuracy >= b.floor {
			return b.rank
		}
	}
	return RankWaterBoy
}

// Report holds the statistics derived from a SessionSummary.
type Report struct {
	Runs     int
	Total    int
	Correct  int
	Wickets  int
	Accuracy int // percent, rounded
	Rank     Rank
	Balls    []AnsweredRecord
}

// BuildReport derives the result screen statistics. It does not modify s.
func BuildReport(s SessionSummary) Report {
	total := len(s.Records)
	correct := 0
	for _, rec := range s.Records {
		if rec.Correct() {
			correct++
		}
	}
	accuracy := 0
	if total > 0 {
		accuracy = int(math.Round(100 * float64(correct) / float64(total)))
	}
	balls := make([]AnsweredRecord, total)
	copy(balls, s.Records)
	return Report{
		Runs:     s.Score,
		Total:    total,
		Correct:  correct,
		Wickets:  total - correct,
		Accuracy: accuracy,
		Rank:     RankFor(accuracy),
		Balls:    balls,
	}
}
