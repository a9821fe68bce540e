package insight

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/iqorum/internal/llm"
	"github.com/abhisek/iqorum/internal/scoring"
)

func validInsightJSON() json.RawMessage {
	return json.RawMessage(`{
		"summary": "Your results suggest a balanced outlook and quick, accurate reasoning.",
		"highlights": ["Fast and accurate under time pressure", "Centrist on both axes"]
	}`)
}

func testInput() Input {
	return Input{
		Political: &scoring.PoliticalResult{
			EconomicAxis: 50,
			SocialAxis:   50,
			Label:        scoring.LabelCentrist,
		},
		Cognitive: &scoring.CognitiveResult{
			Score:                  142,
			Label:                  scoring.LabelAboveAverage,
			Accuracy:               0.9,
			AverageResponseSeconds: 12,
		},
		CognitiveAttempts: 2,
	}
}

// awaitInsight polls Consume until a result lands or the deadline passes.
func awaitInsight(t *testing.T, svc *Service) (*Insight, bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if ins, ok := svc.Consume(); ok {
			return ins, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

func TestService_GeneratesInsight(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validInsightJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), testInput())

	ins, ok := awaitInsight(t, svc)
	if !ok || ins == nil {
		t.Fatal("expected insight to be generated")
	}
	if !strings.Contains(ins.Summary, "balanced outlook") {
		t.Errorf("unexpected summary: %q", ins.Summary)
	}
	if len(ins.Highlights) != 2 {
		t.Errorf("highlights = %d, want 2", len(ins.Highlights))
	}

	// Consuming again yields nothing.
	if _, ok := svc.Consume(); ok {
		t.Error("expected pending slot to be cleared after consumption")
	}
}

func TestService_PromptMentionsResults(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validInsightJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), testInput())
	if _, ok := awaitInsight(t, svc); !ok {
		t.Fatal("expected insight")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Centrist", "142", "90%"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestService_ProviderFailureYieldsNothing(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue returns ErrProviderUnavailable
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), testInput())

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		svc.mu.Lock()
		ready := svc.ready
		svc.mu.Unlock()
		if ready {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if _, ok := svc.Consume(); ok {
		t.Error("expected no insight on provider failure")
	}
}
