package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// NewProvider creates a Provider from configuration.
// The returned chain is: caller → timeout → retry → logging → validation
// → env credentials → SDK client.
func NewProvider(cfg Config, usage UsageRecorder, logger *slog.Logger) (Provider, error) {
	var base Provider

	switch cfg.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderAnthropic, ProviderOpenRouter:
		base = WithEnvCredentials(cfg, buildProvider)
	case ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}

	validated := WithValidation(base, cfg.RepairJSON)
	logged := WithLogging(validated, cfg.Provider, usage, logger)
	retried := WithRetry(logged, cfg.Retry)

	return WithTimeout(retried, cfg.Timeout), nil
}

// buildProvider constructs the SDK-backed provider for cfg.Provider.
func buildProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case ProviderGemini:
		return NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.OpenAI)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenRouter:
		return NewOpenRouterProvider(cfg.OpenRouter)
	}
	return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
}

// TimeoutProvider bounds each request with a deadline.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps p so each Generate call carries a deadline.
// A non-positive timeout returns p unchanged.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, timeout: timeout}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
