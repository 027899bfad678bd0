package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/kaptinlin/jsonrepair"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// ValidatingProvider is a decorator that checks every schema-bound response
// against its schema before it reaches the caller.
type ValidatingProvider struct {
	inner  Provider
	repair bool
}

// WithValidation wraps a Provider with response validation. When repair is
// set, content that fails to parse is run through jsonrepair once.
func WithValidation(p Provider, repair bool) Provider {
	return &ValidatingProvider{inner: p, repair: repair}
}

func (v *ValidatingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, err := v.inner.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if req.Schema == nil {
		return resp, nil
	}

	content := resp.Content
	if v.repair && !json.Valid(content) {
		if fixed, repairErr := jsonrepair.JSONRepair(string(content)); repairErr == nil {
			content = json.RawMessage(fixed)
		}
	}

	if err := validateResponse(req.Schema, content); err != nil {
		if resp.StopReason == StopMaxTokens {
			return nil, &ErrMaxTokensExceeded{Content: content}
		}
		return nil, err
	}

	out := *resp
	out.Content = content
	return &out, nil
}

func (v *ValidatingProvider) ModelID() string {
	return v.inner.ModelID()
}

// validateResponse validates raw JSON against the given Schema.
// Returns nil if no schema is provided or validation passes.
// Returns *ErrInvalidResponse on failure.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	if strings.TrimSpace(string(raw)) == "" {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("empty response"),
		}
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("compile schema %q: %w", schema.Name, err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}

	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
