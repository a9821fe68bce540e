package llm

import (
	"context"
	"encoding/json"
	"testing"
)

func TestDefaults_FillsUnsetFieldsByPurpose(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"summary":"ok"}`)},
	)
	p := WithDefaults(mock)

	ctx := WithPurpose(context.Background(), "insight")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := mock.Calls[0]
	want := purposeDefaults["insight"]
	if got.MaxTokens != want.MaxTokens {
		t.Errorf("MaxTokens = %d, want %d", got.MaxTokens, want.MaxTokens)
	}
	if got.Temperature != want.Temperature {
		t.Errorf("Temperature = %v, want %v", got.Temperature, want.Temperature)
	}
}

func TestDefaults_KeepsCallerValues(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"summary":"ok"}`)},
	)
	p := WithDefaults(mock)

	ctx := WithPurpose(context.Background(), "insight")
	req := Request{MaxTokens: 64, Temperature: 0.9}
	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := mock.Calls[0]
	if got.MaxTokens != 64 {
		t.Errorf("MaxTokens = %d, want caller's 64", got.MaxTokens)
	}
	if got.Temperature != 0.9 {
		t.Errorf("Temperature = %v, want caller's 0.9", got.Temperature)
	}
}

func TestDefaults_UnknownPurposeGetsGenericCap(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)
	p := WithDefaults(mock)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := mock.Calls[0]
	if got.MaxTokens != genericDefaults.MaxTokens {
		t.Errorf("MaxTokens = %d, want %d", got.MaxTokens, genericDefaults.MaxTokens)
	}
	if got.Temperature != 0 {
		t.Errorf("Temperature = %v, want 0", got.Temperature)
	}
}
