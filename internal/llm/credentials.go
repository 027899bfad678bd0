package llm

import (
	"context"
	"fmt"
	"os"
)

// apiKeyEnvVars lists, per provider, the environment variables probed for
// an API key in priority order. Bare API_KEY is accepted for Gemini.
var apiKeyEnvVars = map[string][]string{
	ProviderGemini:     {"IQ360_GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY"},
	ProviderOpenAI:     {"IQ360_OPENAI_API_KEY", "OPENAI_API_KEY"},
	ProviderAnthropic:  {"IQ360_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"},
	ProviderOpenRouter: {"IQ360_OPENROUTER_API_KEY", "OPENROUTER_API_KEY"},
}

// discoveryOrder is the order DiscoverProvider probes providers in.
var discoveryOrder = []string{ProviderGemini, ProviderOpenAI, ProviderAnthropic, ProviderOpenRouter}

// LookupAPIKey reads the API key for provider from the environment.
func LookupAPIKey(provider string) (string, error) {
	vars, ok := apiKeyEnvVars[provider]
	if !ok {
		return "", fmt.Errorf("unknown LLM provider: %q", provider)
	}
	for _, v := range vars {
		if k := os.Getenv(v); k != "" {
			return k, nil
		}
	}
	return "", &ErrMissingCredential{Provider: provider, EnvVars: vars}
}

// DiscoverProvider returns the first provider (Gemini → OpenAI →
// Anthropic → OpenRouter) whose API key is set.
func DiscoverProvider() (string, bool) {
	for _, p := range discoveryOrder {
		if _, err := LookupAPIKey(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// builderFunc constructs a concrete provider from a config whose API key
// has just been filled in.
type builderFunc func(ctx context.Context, cfg Config) (Provider, error)

// EnvCredentialProvider builds a fresh SDK client for every request using
// the API key present in the environment at that moment. Nothing about the
// credential is cached between calls.
type EnvCredentialProvider struct {
	cfg     Config
	build   builderFunc
	modelID string
}

// WithEnvCredentials returns a Provider that resolves its API key per call.
func WithEnvCredentials(cfg Config, build builderFunc) Provider {
	return &EnvCredentialProvider{
		cfg:     cfg,
		build:   build,
		modelID: configuredModelID(cfg),
	}
}

func (e *EnvCredentialProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	key, err := LookupAPIKey(e.cfg.Provider)
	if err != nil {
		return nil, err
	}

	cfg := e.cfg
	switch cfg.Provider {
	case ProviderGemini:
		cfg.Gemini.APIKey = key
	case ProviderOpenAI:
		cfg.OpenAI.APIKey = key
	case ProviderAnthropic:
		cfg.Anthropic.APIKey = key
	case ProviderOpenRouter:
		cfg.OpenRouter.APIKey = key
	}

	p, err := e.build(ctx, cfg)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: err}
	}
	return p.Generate(ctx, req)
}

func (e *EnvCredentialProvider) ModelID() string {
	return e.modelID
}

// configuredModelID resolves the model ID a config will use without
// constructing a client.
func configuredModelID(cfg Config) string {
	switch cfg.Provider {
	case ProviderGemini:
		return resolveModel(cfg.Gemini.Model, geminiModels)
	case ProviderOpenAI:
		return resolveModel(cfg.OpenAI.Model, openaiModels)
	case ProviderAnthropic:
		return resolveModel(cfg.Anthropic.Model, anthropicModels)
	case ProviderOpenRouter:
		return cfg.OpenRouter.Model
	}
	return cfg.Provider
}
