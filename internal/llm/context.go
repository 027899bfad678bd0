package llm

import "context"

type ctxKey int

const (
	purposeKey ctxKey = iota
	levelKey
)

// Request purposes, used in logs and the usage ledger.
const (
	PurposeEvaluation = "evaluation"
	PurposeReport     = "report"
)

// WithPurpose tags ctx with what the request is for.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose tag, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithLevel tags ctx with the 1-based level a request is about.
func WithLevel(ctx context.Context, level int) context.Context {
	return context.WithValue(ctx, levelKey, level)
}

// LevelFrom returns the level tag. The report request carries none.
func LevelFrom(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(levelKey).(int)
	return v, ok
}
