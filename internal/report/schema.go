package report

import "github.com/abhisek/iq360/internal/llm"

// ReportSchema defines the JSON schema for the final thinking profile.
var ReportSchema = &llm.Schema{
	Name:        "final-report",
	Description: "Comprehensive 360IQ thinking profile built from every level",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overallIq": map[string]any{
				"type":        "string",
				"description": "Final estimated IQ range, e.g., 120-130",
			},
			"personalityProfile": map[string]any{
				"type":        "string",
				"description": "A few sentences describing the user's thinking style and personality",
			},
			"criticalThinkingScore": map[string]any{
				"type":        "number",
				"description": "Average rating out of 100",
			},
			"growthAreas": map[string]any{
				"type":        "array",
				"description": "3-4 specific areas for improvement",
				"items":       map[string]any{"type": "string"},
			},
		},
		"required":             []any{"overallIq", "personalityProfile", "criticalThinkingScore", "growthAreas"},
		"additionalProperties": false,
	},
}
