package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/iqorum/internal/llm"
)

// Service generates result insights asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Insight
	err     error
	ready   bool
}

// NewService creates an insight generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request starts async insight generation. Only one insight is in-flight
// at a time — new requests replace pending ones.
func (s *Service) Request(ctx context.Context, input Input) {
	go func() {
		ins, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = ins
		s.err = err
		s.ready = true
	}()
}

// Consume returns the pending insight if one is ready.
// Returns (nil, false) if no insight is ready yet.
// After consumption, the pending slot is cleared.
func (s *Service) Consume() (*Insight, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	ins := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return ins, ins != nil
}

type insightOutput struct {
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

func (s *Service) generate(ctx context.Context, input Input) (*Insight, error) {
	ctx = llm.WithPurpose(ctx, "insight")

	req := llm.Request{
		System: insightSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildInsightUserMessage(input)},
		},
		Schema:      InsightSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("insight generation: %w", err)
	}

	var out insightOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse insight response: %w", err)
	}

	return &Insight{
		Summary:    out.Summary,
		Highlights: out.Highlights,
	}, nil
}
