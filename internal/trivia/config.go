package trivia

// Config controls the behavior of the LLMSource.
type Config struct {
	// Validators run on every question of a response, in order. The first
	// failure rejects the whole response.
	Validators []Validator

	// BatchValidators run once over the full question list after the
	// per-question checks pass.
	BatchValidators []BatchValidator

	// MaxTokens is the token budget for the LLM response. A batch of
	// questions with explanations needs far more than a single item.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
		},
		BatchValidators: []BatchValidator{
			&DuplicateValidator{},
		},
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}
