package llm

import "fmt"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouter attribution headers. See openrouter.ai/docs/api-reference/overview.
const (
	openRouterReferer = "https://github.com/abhisek/iq360"
	openRouterTitle   = "360IQ"
)

// OpenRouterProvider targets OpenRouter's OpenAI-compatible API. Model IDs
// are passed through as given, e.g. "anthropic/claude-sonnet-4.5".
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	headers := map[string]string{
		"HTTP-Referer": openRouterReferer,
		"X-Title":      openRouterTitle,
	}
	inner := newChatProvider(ProviderOpenRouter, cfg.APIKey, baseURL, cfg.Model, headers)
	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
