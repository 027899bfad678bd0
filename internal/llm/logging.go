package llm

import (
	"context"
	"log/slog"
	"time"
)

// LoggingProvider is a decorator that logs every LLM request and records
// its token usage.
type LoggingProvider struct {
	inner    Provider
	provider string
	usage    UsageRecorder
	logger   *slog.Logger
}

// WithLogging wraps a Provider with request logging. A nil usage recorder
// or logger is allowed.
func WithLogging(p Provider, providerName string, usage UsageRecorder, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LoggingProvider{inner: p, provider: providerName, usage: usage, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latency := time.Since(start)
	model := l.inner.ModelID()
	if resp != nil && resp.Model != "" {
		model = resp.Model
	}

	attrs := []any{
		slog.String("provider", l.provider),
		slog.String("model", model),
		slog.String("purpose", purpose),
		slog.Int64("latency_ms", latency.Milliseconds()),
	}
	if level, ok := LevelFrom(ctx); ok {
		attrs = append(attrs, slog.Int("level", level))
	}
	if req.Schema != nil {
		attrs = append(attrs, slog.String("schema", req.Schema.Name))
	}

	if err != nil {
		l.logger.WarnContext(ctx, "llm request failed", append(attrs, slog.Any("error", err))...)
		return nil, err
	}

	attrs = append(attrs,
		slog.Int("input_tokens", resp.Usage.InputTokens),
		slog.Int("output_tokens", resp.Usage.OutputTokens),
		slog.String("stop_reason", resp.StopReason),
	)
	l.logger.InfoContext(ctx, "llm request", attrs...)
	l.logger.DebugContext(ctx, "llm response body", slog.String("purpose", purpose), slog.String("content", string(resp.Content)))

	if l.usage != nil {
		l.usage.Record(UsageRecord{
			Provider: l.provider,
			Model:    model,
			Purpose:  purpose,
			Usage:    resp.Usage,
			Latency:  latency,
		})
	}

	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
