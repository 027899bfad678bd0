package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-schema",
		Description: "A trimmed-down level evaluation",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score":    map[string]any{"type": "number"},
				"feedback": map[string]any{"type": "string"},
				"tier":     map[string]any{"type": "string", "enum": []any{"low", "mid", "high"}},
			},
			"required":             []any{"score", "feedback"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"score":72,"feedback":"Good.","tier":"mid"}`, false},
		{"valid without optional", `{"score":72,"feedback":"Good."}`, false},
		{"missing required", `{"score":72}`, true},
		{"wrong type", `{"score":"seventy","feedback":"Good."}`, true},
		{"invalid enum", `{"score":72,"feedback":"Good.","tier":"genius"}`, true},
		{"extra property", `{"score":72,"feedback":"Good.","bonus":1}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty", ``, true},
		{"whitespace", "  \n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got: %T", err)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_ArrayItems(t *testing.T) {
	schema := &Schema{
		Name: "test-growth",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"growthAreas": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"growthAreas"},
		},
	}

	if err := validateResponse(schema, json.RawMessage(`{"growthAreas":["a","b","c"]}`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if err := validateResponse(schema, json.RawMessage(`{"growthAreas":[1,2,3]}`)); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}

func TestWithValidation(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		repair   bool
		schema   *Schema
		wantErr  bool
		wantBody string
	}{
		{
			name:     "valid passes through",
			content:  `{"score":72,"feedback":"Good."}`,
			schema:   testSchema(),
			wantBody: `{"score":72,"feedback":"Good."}`,
		},
		{
			name:    "malformed rejected without repair",
			content: `{"score":72,"feedback":"Good.",}`,
			schema:  testSchema(),
			wantErr: true,
		},
		{
			name:     "malformed repaired when enabled",
			content:  `{"score":72,"feedback":"Good.",}`,
			repair:   true,
			schema:   testSchema(),
			wantBody: `{"score":72,"feedback":"Good."}`,
		},
		{
			name:    "repair does not excuse schema violations",
			content: `{"score":72}`,
			repair:  true,
			schema:  testSchema(),
			wantErr: true,
		},
		{
			name:     "no schema skips validation",
			content:  `plain text`,
			wantBody: `plain text`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(MockResponse{Content: json.RawMessage(tt.content)})
			p := WithValidation(mock, tt.repair)

			resp, err := p.Generate(context.Background(), Request{Schema: tt.schema})
			if tt.wantErr {
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.repair {
				var got, want any
				json.Unmarshal(resp.Content, &got)
				json.Unmarshal([]byte(tt.wantBody), &want)
				gotB, _ := json.Marshal(got)
				wantB, _ := json.Marshal(want)
				if string(gotB) != string(wantB) {
					t.Fatalf("content = %s, want %s", resp.Content, tt.wantBody)
				}
				return
			}
			if string(resp.Content) != tt.wantBody {
				t.Fatalf("content = %s, want %s", resp.Content, tt.wantBody)
			}
		})
	}
}

func TestWithValidation_PropagatesInnerError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}})
	p := WithValidation(mock, false)

	_, err := p.Generate(context.Background(), Request{Schema: testSchema()})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("ModelID() = %q", p.ModelID())
	}
}

func TestWithValidation_TruncatedOutput(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content:    json.RawMessage(`{"score":72,"feedb`),
		StopReason: StopMaxTokens,
	})
	p := WithValidation(mock, false)

	_, err := p.Generate(context.Background(), Request{Schema: testSchema()})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T (%v)", err, err)
	}
}

func TestWithValidation_TruncatedButValid(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content:    json.RawMessage(`{"score":72,"feedback":"Good."}`),
		StopReason: StopMaxTokens,
	})
	p := WithValidation(mock, false)

	resp, err := p.Generate(context.Background(), Request{Schema: testSchema()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StopReason != StopMaxTokens {
		t.Fatalf("stop reason = %q", resp.StopReason)
	}
}
