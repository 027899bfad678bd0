package llm

import (
	"errors"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-3-flash-preview"},
		{"gemini-pro", "gemini-3-pro-preview"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overallIq": map[string]any{"type": "string", "description": "Final estimated IQ range"},
			"score":     map[string]any{"type": "integer"},
			"tier":      map[string]any{"type": "string", "enum": []any{"low", "mid", "high"}},
			"growthAreas": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"overallIq", "score"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["overallIq"].Type != "STRING" {
		t.Fatalf("expected STRING for overallIq, got %s", schema.Properties["overallIq"].Type)
	}
	if schema.Properties["score"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for score, got %s", schema.Properties["score"].Type)
	}
	if len(schema.Properties["tier"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["tier"].Enum))
	}
	if schema.Properties["growthAreas"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for growthAreas, got %s", schema.Properties["growthAreas"].Type)
	}
	if schema.Properties["growthAreas"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for growthAreas items, got %s", schema.Properties["growthAreas"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
	if schema.Properties["overallIq"].Description != "Final estimated IQ range" {
		t.Fatalf("description not carried over: %q", schema.Properties["overallIq"].Description)
	}
}

func TestGeminiBlockReason(t *testing.T) {
	tests := []struct {
		name   string
		result *genai.GenerateContentResponse
		want   string
	}{
		{
			name:   "answered",
			result: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{FinishReason: "STOP"}}},
		},
		{
			name:   "no candidates",
			result: &genai.GenerateContentResponse{},
		},
		{
			name:   "safety",
			result: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{FinishReason: "SAFETY"}}},
			want:   "response blocked: SAFETY",
		},
		{
			name: "prompt blocked",
			result: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: "PROHIBITED_CONTENT"},
			},
			want: "prompt blocked: PROHIBITED_CONTENT",
		},
		{
			name: "unspecified block reason",
			result: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: "BLOCKED_REASON_UNSPECIFIED"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := geminiBlockReason(tt.result); got != tt.want {
				t.Errorf("geminiBlockReason() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMapGeminiStopReason(t *testing.T) {
	trunc := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{FinishReason: "MAX_TOKENS"}}}
	if got := mapGeminiStopReason(trunc); got != StopMaxTokens {
		t.Errorf("got %q, want %q", got, StopMaxTokens)
	}
	if got := mapGeminiStopReason(&genai.GenerateContentResponse{}); got != StopEnd {
		t.Errorf("got %q, want %q", got, StopEnd)
	}
}

func TestMapGeminiError(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"bad key", genai.APIError{Code: 400, Message: "API key not valid. Please pass a valid API key.", Status: "INVALID_ARGUMENT"}, func(err error) bool {
			var a *ErrAuthentication
			return errors.As(err, &a) && a.Provider == ProviderGemini
		}},
		{"forbidden", genai.APIError{Code: 403, Status: "PERMISSION_DENIED"}, func(err error) bool {
			var a *ErrAuthentication
			return errors.As(err, &a)
		}},
		{"quota", genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED"}, func(err error) bool {
			var rl *ErrRateLimit
			return errors.As(err, &rl)
		}},
		{"bad request", genai.APIError{Code: 400, Message: "Invalid JSON payload"}, func(err error) bool {
			var u *ErrProviderUnavailable
			return errors.As(err, &u)
		}},
		{"network", errors.New("dial tcp: connection refused"), func(err error) bool {
			var u *ErrProviderUnavailable
			return errors.As(err, &u)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapGeminiError(tt.err); !tt.check(got) {
				t.Fatalf("unexpected mapping: %T (%v)", got, got)
			}
		})
	}
}
