package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     OpenRouterConfig
		wantErr bool
		model   string
	}{
		{
			name:  "default base URL",
			cfg:   OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.5-flash"},
			model: "google/gemini-2.5-flash",
		},
		{
			name:    "empty API key",
			cfg:     OpenRouterConfig{Model: "google/gemini-2.5-flash"},
			wantErr: true,
		},
		{
			// Friendly names only apply to direct providers.
			name:  "model pass-through",
			cfg:   OpenRouterConfig{APIKey: "sk-or-test", Model: "gpt-4o"},
			model: "gpt-4o",
		},
		{
			name: "custom base URL",
			cfg: OpenRouterConfig{
				APIKey:  "sk-or-test",
				Model:   "anthropic/claude-sonnet-4.5",
				BaseURL: "https://custom.openrouter.example/v1",
			},
			model: "anthropic/claude-sonnet-4.5",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.ModelID() != tt.model {
				t.Errorf("model = %q, want %q", p.ModelID(), tt.model)
			}
		})
	}
}

func TestOpenRouterProvider_SendsAttribution(t *testing.T) {
	var got http.Header
	var gotModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		gotModel, _ = body["model"].(string)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`{"score":72}`, "stop"))
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "anthropic/claude-sonnet-4.5",
		BaseURL: server.URL + "/api/v1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "test"}},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Get("HTTP-Referer") != openRouterReferer {
		t.Errorf("HTTP-Referer = %q", got.Get("HTTP-Referer"))
	}
	if got.Get("X-Title") != openRouterTitle {
		t.Errorf("X-Title = %q", got.Get("X-Title"))
	}
	if got.Get("Authorization") != "Bearer sk-or-test" {
		t.Errorf("Authorization = %q", got.Get("Authorization"))
	}
	if gotModel != "anthropic/claude-sonnet-4.5" {
		t.Errorf("model = %q", gotModel)
	}
}
