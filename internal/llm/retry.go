package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryClass says how the retry loop treats a failed attempt.
type retryClass int

const (
	// retryNever: the next attempt would fail the same way.
	retryNever retryClass = iota
	// retryOnce: worth a second try, but not a third.
	retryOnce
	// retryAlways: transient, retry until attempts run out.
	retryAlways
)

// classify maps a provider error to its retry class.
func classify(err error) retryClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNever
	}

	var (
		missing *ErrMissingCredential
		auth    *ErrAuthentication
		maxTok  *ErrMaxTokensExceeded
		refused *ErrRefused
		invalid *ErrInvalidResponse
	)
	switch {
	case errors.As(err, &missing), errors.As(err, &auth):
		return retryNever
	case errors.As(err, &maxTok), errors.As(err, &refused):
		// A bigger answer or a different verdict needs a different prompt.
		return retryNever
	case errors.As(err, &invalid):
		return retryOnce
	}

	// Rate limits, outages and network errors.
	return retryAlways
}

// RetryProvider is a decorator that retries transient errors with
// exponential backoff and jitter.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic. MaxAttempts below one is
// treated as one.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	onceUsed := false

	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch classify(err) {
		case retryNever:
			return nil, err
		case retryOnce:
			if onceUsed {
				return nil, err
			}
			onceUsed = true
		}

		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoff(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// backoff computes the wait before the attempt after the given one.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return min(rl.RetryAfter, r.config.MaxWait)
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.config.MaxWait))

	// ±20% jitter.
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(math.Max(wait, 0))
}
