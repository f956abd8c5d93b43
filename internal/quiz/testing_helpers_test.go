package quiz

import "fmt"

func sampleQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{
			Prompt:       fmt.Sprintf("Question %d?", i+1),
			Options:      []string{"A", "B", "C", "D"},
			CorrectIndex: i % OptionCount,
			Explanation:  "Because.",
		}
	}
	return qs
}
