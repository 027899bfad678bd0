package evaluation

// Config holds evaluation request settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for level evaluation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}
