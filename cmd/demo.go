package cmd

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/abhisek/iq360/internal/evaluation"
	"github.com/abhisek/iq360/internal/llm"
	"github.com/abhisek/iq360/internal/report"
)

var errUnknownDemoSchema = errors.New("offline provider: unknown schema")

var demoTraits = []string{"Analytical", "Pragmatic", "Inventive", "Measured", "Empathetic"}

// newDemoProvider returns an offline provider for --provider mock. Scores
// follow answer length so the whole journey can be played without a key.
func newDemoProvider() *llm.MockProvider {
	p := llm.NewMockProvider()
	p.SetFallback(demoResponse)
	return p
}

func demoResponse(req llm.Request) llm.MockResponse {
	var prompt string
	if n := len(req.Messages); n > 0 {
		prompt = req.Messages[n-1].Content
	}
	usage := llm.Usage{InputTokens: (len(req.System) + len(prompt)) / 4}

	var body any
	switch {
	case req.Schema != nil && req.Schema.Name == evaluation.OutcomeSchema.Name:
		body = demoOutcome(answerSection(prompt))
	case req.Schema != nil && req.Schema.Name == report.ReportSchema.Name:
		body = demoReport()
	default:
		return llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: errUnknownDemoSchema}}
	}

	content, err := json.Marshal(body)
	if err != nil {
		return llm.MockResponse{Err: err}
	}
	usage.OutputTokens = len(content) / 4
	usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	return llm.MockResponse{Content: content, Usage: usage}
}

// answerSection returns the player's answer from an evaluation prompt: the
// text between the answer heading and the instructions block.
func answerSection(prompt string) string {
	_, rest, ok := strings.Cut(prompt, "User's Answer:")
	if !ok {
		return prompt
	}
	answer, _, _ := strings.Cut(rest, "\n\nInstructions:")
	return strings.TrimSpace(answer)
}

func demoOutcome(answer string) map[string]any {
	words := len(strings.Fields(answer))
	score := min(max(20+words*2, 35), 92)

	iq := "95-105"
	switch {
	case score >= 80:
		iq = "120-130"
	case score >= 60:
		iq = "110-120"
	}

	return map[string]any{
		"score":                  score,
		"feedback":               "A considered answer. Offline mode scores on depth of explanation, so more detail earns more credit.",
		"personalityTrait":       demoTraits[words%len(demoTraits)],
		"iqEstimate":             iq,
		"criticalThinkingRating": min(max(score/10, 1), 10),
	}
}

func demoReport() map[string]any {
	return map[string]any{
		"overallIq":             "115-125",
		"personalityProfile":    "You reason in steady, deliberate steps and weigh risk before acting. You adapt well once the shape of a problem is clear.",
		"criticalThinkingScore": 74,
		"growthAreas": []string{
			"Test your first instinct against a counterexample.",
			"Quantify trade-offs before committing to a plan.",
			"Sketch two unconventional options before choosing one.",
		},
	}
}
