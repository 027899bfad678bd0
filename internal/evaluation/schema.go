package evaluation

import "github.com/abhisek/iq360/internal/llm"

// OutcomeSchema defines the JSON schema for a single level evaluation.
var OutcomeSchema = &llm.Schema{
	Name:        "level-evaluation",
	Description: "Professional assessment of one answer in the 360IQ journey",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"description": "Score for this answer from 0 to 100",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Detailed feedback on the quality of reasoning",
			},
			"personalityTrait": map[string]any{
				"type":        "string",
				"description": "A personality trait revealed by the answer",
			},
			"iqEstimate": map[string]any{
				"type":        "string",
				"description": "Estimated IQ range for this response, e.g. 115-125",
			},
			"criticalThinkingRating": map[string]any{
				"type":        "number",
				"description": "Rating from 1 to 10",
			},
		},
		"required":             []any{"score", "feedback", "personalityTrait", "iqEstimate", "criticalThinkingRating"},
		"additionalProperties": false,
	},
}
