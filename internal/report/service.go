package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/iq360/internal/llm"
)

// Generator turns the completed levels into a final report.
type Generator interface {
	Generate(ctx context.Context, inputs []Input) (*FinalReport, error)
}

// Service generates final reports through an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

var _ Generator = (*Service)(nil)

// NewService creates a report generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type reportOutput struct {
	OverallIQ             string   `json:"overallIq"`
	PersonalityProfile    string   `json:"personalityProfile"`
	CriticalThinkingScore float64  `json:"criticalThinkingScore"`
	GrowthAreas           []string `json:"growthAreas"`
}

// Generate requests the final profile for inputs, which must be non-empty.
// Any failure is returned as *ReportError.
func (s *Service) Generate(ctx context.Context, inputs []Input) (*FinalReport, error) {
	rep, err := s.generate(ctx, inputs)
	if err != nil {
		return nil, &ReportError{Err: err}
	}
	return rep, nil
}

func (s *Service) generate(ctx context.Context, inputs []Input) (*FinalReport, error) {
	if len(inputs) == 0 {
		return nil, errors.New("no level results to report on")
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeReport)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(inputs)},
		},
		Schema:      ReportSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var out reportOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("parse report response: %w", err),
		}
	}

	overall := strings.TrimSpace(out.OverallIQ)
	profile := strings.TrimSpace(out.PersonalityProfile)
	if overall == "" || profile == "" {
		return nil, &llm.ErrInvalidResponse{
			Content: resp.Content,
			Err:     errors.New("overallIq and personalityProfile must be non-empty"),
		}
	}

	areas, err := normalizeGrowthAreas(out.GrowthAreas)
	if err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	score := math.Max(0, math.Min(100, out.CriticalThinkingScore))

	return &FinalReport{
		OverallIQ:             overall,
		PersonalityProfile:    profile,
		CriticalThinkingScore: int(math.Round(score)),
		GrowthAreas:           areas,
	}, nil
}

// normalizeGrowthAreas drops blank entries and caps the list. Fewer than
// MinGrowthAreas usable entries is an error.
func normalizeGrowthAreas(raw []string) ([]string, error) {
	areas := make([]string, 0, len(raw))
	for _, a := range raw {
		if a = strings.TrimSpace(a); a != "" {
			areas = append(areas, a)
		}
	}
	if len(areas) < MinGrowthAreas {
		return nil, fmt.Errorf("need at least %d growth areas, got %d", MinGrowthAreas, len(areas))
	}
	if len(areas) > MaxGrowthAreas {
		areas = areas[:MaxGrowthAreas]
	}
	return areas, nil
}
