package quiz

import (
	"fmt"
	"strings"
)

// Difficulty is the trivia tier chosen before a session starts.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Googly
)

// Difficulties lists every tier in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard, Googly}

var difficultyNames = map[Difficulty]string{
	Easy:   "Easy",
	Medium: "Medium",
	Hard:   "Hard",
	Googly: "Googly",
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// Valid reports whether d is one of the four known tiers.
func (d Difficulty) Valid() bool {
	_, ok := difficultyNames[d]
	return ok
}

// CardTitle is the label shown on the difficulty menu.
func (d Difficulty) CardTitle() string {
	switch d {
	case Easy:
		return "T20 Blast (Easy)"
	case Medium:
		return "ODI Classic (Medium)"
	case Hard:
		return "Test Match (Hard)"
	case Googly:
		return "The Googly (Tricky)"
	}
	return d.String()
}

// Blurb is the one-line description under the card title.
func (d Difficulty) Blurb() string {
	switch d {
	case Easy:
		return "Quick singles. Famous names and headline moments."
	case Medium:
		return "Steady accumulation. Records, venues and rivalries."
	case Hard:
		return "Five days of grind. Deep stats and history."
	case Googly:
		return "Spins the other way. Obscure stats and tricky rules."
	}
	return ""
}

// PromptLabel is how the tier is described to the question generator.
func (d Difficulty) PromptLabel() string {
	if d == Googly {
		return "Googly (Tricky)"
	}
	return d.String()
}

// ParseDifficulty resolves a tier name or its format alias, ignoring case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "t20":
		return Easy, nil
	case "medium", "odi":
		return Medium, nil
	case "hard", "test":
		return Hard, nil
	case "googly", "tricky":
		return Googly, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q: must be easy, medium, hard or googly", s)
}
