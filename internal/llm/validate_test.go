package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func insightTestSchema() *Schema {
	return &Schema{
		Name:        "insight-test",
		Description: "A test insight object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"summary":    map[string]any{"type": "string"},
				"confidence": map[string]any{"type": "string", "enum": []any{"low", "medium", "high"}},
				"sentences":  map[string]any{"type": "integer", "minimum": 1},
			},
			"required": []any{"summary", "sentences"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"summary":"Balanced profile.","confidence":"high","sentences":2}`)
	if err := validateResponse(insightTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"summary":"Quick thinker.","sentences":1}`)
	if err := validateResponse(insightTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"summary":"Partial."}`)
	err := validateResponse(insightTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"summary":"Bad.","sentences":"two"}`)
	err := validateResponse(insightTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NotJSON(t *testing.T) {
	raw := json.RawMessage(`this is prose, not JSON`)
	err := validateResponse(insightTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for non-JSON content")
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	raw := json.RawMessage(`anything goes without a schema`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}
