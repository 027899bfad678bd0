package report

// Bounds on the number of growth areas a report carries.
const (
	MinGrowthAreas = 3
	MaxGrowthAreas = 4
)

// Config holds report generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for report generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.6,
	}
}
