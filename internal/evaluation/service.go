package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/iq360/internal/levels"
	"github.com/abhisek/iq360/internal/llm"
)

// Evaluator scores a single answered level.
type Evaluator interface {
	Evaluate(ctx context.Context, level levels.Level, answer string) (*Outcome, error)
}

// Service evaluates answers through an LLM provider. Every call is a fresh
// request; nothing is cached.
type Service struct {
	provider llm.Provider
	cfg      Config
}

var _ Evaluator = (*Service)(nil)

// NewService creates an evaluation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type outcomeOutput struct {
	Score                  float64 `json:"score"`
	Feedback               string  `json:"feedback"`
	PersonalityTrait       string  `json:"personalityTrait"`
	IQEstimate             string  `json:"iqEstimate"`
	CriticalThinkingRating float64 `json:"criticalThinkingRating"`
}

// Evaluate sends the puzzle and answer to the provider and returns the
// parsed outcome. Any failure is returned as *EvaluationError.
func (s *Service) Evaluate(ctx context.Context, level levels.Level, answer string) (*Outcome, error) {
	out, err := s.evaluate(ctx, level, answer)
	if err != nil {
		return nil, &EvaluationError{Level: level.Index, Err: err}
	}
	return out, nil
}

func (s *Service) evaluate(ctx context.Context, level levels.Level, answer string) (*Outcome, error) {
	if strings.TrimSpace(level.Puzzle) == "" {
		return nil, errors.New("puzzle text is required")
	}
	if strings.TrimSpace(answer) == "" {
		return nil, errors.New("answer text is required")
	}

	ctx = llm.WithLevel(llm.WithPurpose(ctx, llm.PurposeEvaluation), level.Index)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(level, answer)},
		},
		Schema:      OutcomeSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var out outcomeOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("parse evaluation response: %w", err),
		}
	}

	if err := checkOutput(out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	return &Outcome{
		Score:                  clamp(out.Score, 0, 100),
		Feedback:               strings.TrimSpace(out.Feedback),
		PersonalityTrait:       strings.TrimSpace(out.PersonalityTrait),
		IQEstimate:             strings.TrimSpace(out.IQEstimate),
		CriticalThinkingRating: clamp(out.CriticalThinkingRating, 1, 10),
	}, nil
}

// checkOutput enforces the guarantees the schema cannot express.
func checkOutput(out outcomeOutput) error {
	fields := []struct {
		name  string
		value string
	}{
		{"feedback", out.Feedback},
		{"personalityTrait", out.PersonalityTrait},
		{"iqEstimate", out.IQEstimate},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("field %q is empty", f.name)
		}
	}
	return nil
}

// clamp rounds v to the nearest integer within [lo, hi].
func clamp(v float64, lo, hi int) int {
	v = math.Max(float64(lo), math.Min(float64(hi), v))
	return int(math.Round(v))
}
