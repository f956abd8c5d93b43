package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"easy", Easy},
		{"T20", Easy},
		{" Medium ", Medium},
		{"odi", Medium},
		{"HARD", Hard},
		{"test", Hard},
		{"googly", Googly},
		{"tricky", Googly},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseDifficulty("bodyline")
	assert.Error(t, err)
}

func TestDifficultyLabels(t *testing.T) {
	assert.Equal(t, "Googly (Tricky)", Googly.PromptLabel())
	assert.Equal(t, "Hard", Hard.PromptLabel())
	assert.Equal(t, "T20 Blast (Easy)", Easy.CardTitle())
	assert.True(t, Medium.Valid())
	assert.False(t, Difficulty(9).Valid())
	for _, d := range Difficulties {
		assert.NotEmpty(t, d.Blurb())
	}
}
