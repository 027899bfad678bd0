package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestUsageLedger(t *testing.T) {
	ledger := NewUsageLedger()
	ledger.Record(UsageRecord{Model: "gemini-3-flash-preview", Usage: Usage{InputTokens: 1_000_000, OutputTokens: 0}})
	ledger.Record(UsageRecord{Model: "gemini-3-flash-preview", Usage: Usage{InputTokens: 0, OutputTokens: 1_000_000}})
	ledger.Record(UsageRecord{Model: "house-model", Usage: Usage{InputTokens: 5, OutputTokens: 5}})

	summary := ledger.Summary()
	if len(summary) != 2 {
		t.Fatalf("expected 2 models, got %d", len(summary))
	}
	if summary[0].Model != "gemini-3-flash-preview" || summary[1].Model != "house-model" {
		t.Fatalf("summary not sorted: %+v", summary)
	}

	flash := summary[0]
	if flash.Requests != 2 || flash.InputTokens != 1_000_000 || flash.OutputTokens != 1_000_000 {
		t.Fatalf("unexpected flash totals: %+v", flash)
	}
	if !flash.Known || math.Abs(flash.Cost-3.5) > 1e-9 {
		t.Fatalf("flash cost = %v (known=%v), want 3.5", flash.Cost, flash.Known)
	}
	if summary[1].Known || summary[1].Cost != 0 {
		t.Fatalf("unpriced model should carry no cost: %+v", summary[1])
	}

	if ledger.LastModel() != "house-model" {
		t.Fatalf("LastModel() = %q", ledger.LastModel())
	}
	if ledger.Requests() != 3 {
		t.Fatalf("Requests() = %d", ledger.Requests())
	}
	if math.Abs(ledger.TotalCost()-3.5) > 1e-9 {
		t.Fatalf("TotalCost() = %v", ledger.TotalCost())
	}
}

func TestLoggingProvider_RecordsUsage(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ledger := NewUsageLedger()

	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`), Usage: Usage{InputTokens: 10, OutputTokens: 4}},
		MockResponse{Err: errors.New("boom")},
	)
	p := WithLogging(mock, ProviderMock, ledger, logger)

	ctx := WithPurpose(context.Background(), PurposeReport)
	if _, err := p.Generate(ctx, Request{Schema: testSchema()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}

	if ledger.Requests() != 1 {
		t.Fatalf("only successful requests are recorded, got %d", ledger.Requests())
	}

	out := buf.String()
	if !strings.Contains(out, `"purpose":"report"`) || !strings.Contains(out, `"schema":"test-schema"`) {
		t.Fatalf("missing attributes in log output: %s", out)
	}
	if !strings.Contains(out, `"msg":"llm request failed"`) {
		t.Fatalf("failure not logged: %s", out)
	}
}

func TestLoggingProvider_LogsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}), ProviderMock, nil, logger)

	ctx := WithLevel(WithPurpose(context.Background(), PurposeEvaluation), 4)
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"level":4`) {
		t.Fatalf("level missing from log output: %s", buf.String())
	}
}

func TestLoggingProvider_NilCollaborators(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, ProviderMock, nil, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("ModelID() = %q", p.ModelID())
	}
}

func TestLookupCost(t *testing.T) {
	if LookupCost("gpt-4o-mini") == nil {
		t.Fatal("expected pricing for gpt-4o-mini")
	}
	if LookupCost("no-such-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}
