package quizgen

// Config controls the behavior of the generation Service.
type Config struct {
	// MaxTokens is the token budget for the model response. A batch of
	// twenty questions with explanations fits comfortably in 2000.
	MaxTokens int

	// Temperature controls model output randomness (0.0-1.0). Moderate
	// and non-zero for lexical variety while staying factual.
	Temperature float64
}

// DefaultConfig returns a Config with the recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2000,
		Temperature: 0.7,
	}
}
