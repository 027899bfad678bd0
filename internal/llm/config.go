package llm

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Provider names accepted by IQ360_LLM_PROVIDER.
const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration. API keys are deliberately
// absent: they are looked up in the environment on every request.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock"
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single LLM request, retries included.
	// Zero means no local timeout.
	Timeout time.Duration

	// RepairJSON enables best-effort repair of malformed JSON before
	// schema validation. Off by default: malformed output is an error.
	RepairJSON bool
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey      string
	Model       string // Default: "claude-haiku"
	ReportModel string // Default: "claude-sonnet"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey      string
	Model       string // Default: "gpt-4o-mini"
	ReportModel string // Default: "gpt-4o"
	BaseURL     string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey      string
	Model       string // Default: "gemini-flash"
	ReportModel string // Default: "gemini-pro"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey      string
	Model       string // Default: "google/gemini-2.5-flash"
	ReportModel string // Empty: same as Model
	BaseURL     string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. A single attempt
// per request: retries in this game are always player-initiated.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderGemini,
		Anthropic: AnthropicConfig{
			Model:       "claude-haiku",
			ReportModel: "claude-sonnet",
		},
		OpenAI: OpenAIConfig{
			Model:       "gpt-4o-mini",
			ReportModel: "gpt-4o",
		},
		Gemini: GeminiConfig{
			Model:       "gemini-flash",
			ReportModel: "gemini-pro",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. When IQ360_LLM_PROVIDER is unset the
// provider is discovered from whichever API key is present.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("IQ360_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	} else if p, ok := DiscoverProvider(); ok {
		cfg.Provider = p
	}

	if m := os.Getenv("IQ360_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}
	if m := os.Getenv("IQ360_GEMINI_REPORT_MODEL"); m != "" {
		cfg.Gemini.ReportModel = m
	}

	if m := os.Getenv("IQ360_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if m := os.Getenv("IQ360_OPENAI_REPORT_MODEL"); m != "" {
		cfg.OpenAI.ReportModel = m
	}
	if u := os.Getenv("IQ360_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if m := os.Getenv("IQ360_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}
	if m := os.Getenv("IQ360_ANTHROPIC_REPORT_MODEL"); m != "" {
		cfg.Anthropic.ReportModel = m
	}

	if m := os.Getenv("IQ360_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}
	if m := os.Getenv("IQ360_OPENROUTER_REPORT_MODEL"); m != "" {
		cfg.OpenRouter.ReportModel = m
	}

	if d, err := time.ParseDuration(os.Getenv("IQ360_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	if n, err := strconv.Atoi(os.Getenv("IQ360_LLM_MAX_ATTEMPTS")); err == nil && n > 0 {
		cfg.Retry.MaxAttempts = n
	}
	if b, err := strconv.ParseBool(os.Getenv("IQ360_LLM_REPAIR_JSON")); err == nil {
		cfg.RepairJSON = b
	}

	return cfg
}

// ForReport returns a copy of the config with each provider's report model
// promoted to its primary model. Providers without a report model keep
// their primary model.
func (c Config) ForReport() Config {
	if c.Anthropic.ReportModel != "" {
		c.Anthropic.Model = c.Anthropic.ReportModel
	}
	if c.OpenAI.ReportModel != "" {
		c.OpenAI.Model = c.OpenAI.ReportModel
	}
	if c.Gemini.ReportModel != "" {
		c.Gemini.Model = c.Gemini.ReportModel
	}
	if c.OpenRouter.ReportModel != "" {
		c.OpenRouter.Model = c.OpenRouter.ReportModel
	}
	return c
}

// Validate checks that the provider is known and that an API key is
// currently visible in the environment. Keys are re-read per request, so
// a passing Validate is advisory only.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderAnthropic, ProviderOpenRouter:
		if _, err := LookupAPIKey(c.Provider); err != nil {
			return err
		}
	case ProviderMock:
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
