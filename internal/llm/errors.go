package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the LLM returned content that is not JSON
// or does not conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// ErrMissingCredential indicates no API key was found in the environment
// at call time.
type ErrMissingCredential struct {
	Provider string
	EnvVars  []string
}

func (e *ErrMissingCredential) Error() string {
	return fmt.Sprintf("no API key for %s provider (set one of %s)", e.Provider, strings.Join(e.EnvVars, ", "))
}

// ErrAuthentication indicates the provider rejected the API key.
type ErrAuthentication struct {
	Provider string
	Err      error
}

func (e *ErrAuthentication) Error() string {
	return fmt.Sprintf("%s rejected the API key: %v", e.Provider, e.Err)
}

func (e *ErrAuthentication) Unwrap() error { return e.Err }

// ErrRefused indicates the model declined to answer or a safety filter
// blocked the output.
type ErrRefused struct {
	Reason string
}

func (e *ErrRefused) Error() string {
	return fmt.Sprintf("LLM refused to respond: %s", e.Reason)
}
