package results

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/iqorum/internal/scoring"
	"github.com/abhisek/iqorum/internal/store"
)

type fakeProfileRepo struct {
	profile *store.Profile
}

func (f *fakeProfileRepo) Load(_ context.Context) (*store.Profile, error) {
	if f.profile == nil {
		return &store.Profile{}, nil
	}
	return f.profile, nil
}
func (f *fakeProfileRepo) Save(_ context.Context, p *store.Profile) error {
	f.profile = p
	return nil
}
func (f *fakeProfileRepo) Reset(_ context.Context) error {
	f.profile = nil
	return nil
}

type fakeAttemptRepo struct {
	attempts []store.Attempt
}

func (f *fakeAttemptRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	f.attempts = append(f.attempts, store.Attempt{AttemptEventData: data})
	return nil
}
func (f *fakeAttemptRepo) CompletedAttempts(_ context.Context, assessment string, _ int) ([]store.Attempt, error) {
	var out []store.Attempt
	for _, a := range f.attempts {
		if a.Assessment == assessment && a.Action == "complete" {
			out = append(out, a)
		}
	}
	return out, nil
}

func fullProfile() *store.Profile {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &store.Profile{
		Political: &scoring.PoliticalResult{
			EconomicAxis: 80,
			SocialAxis:   20,
			Label:        scoring.LabelLibertarianRight,
			Description:  "You favor free markets and personal freedom.",
		},
		Cognitive: &scoring.CognitiveResult{
			Score:                  142,
			Label:                  scoring.LabelSuperior,
			Accuracy:               0.9,
			AverageResponseSeconds: 12.5,
		},
		PoliticalCompletedAt: &now,
		CognitiveCompletedAt: &now,
	}
}

func TestResults_EmptyProfile(t *testing.T) {
	s := New(&fakeProfileRepo{}, &fakeAttemptRepo{}, nil)

	msg := s.Init()()
	s.Update(msg)

	view := s.View(80, 24)
	if !strings.Contains(view, "No results yet") {
		t.Error("expected the empty-profile prompt")
	}
}

func TestResults_ShowsBothAssessments(t *testing.T) {
	profiles := &fakeProfileRepo{profile: fullProfile()}
	attempts := &fakeAttemptRepo{attempts: []store.Attempt{
		{AttemptEventData: store.AttemptEventData{Assessment: "cognitive", Action: "complete", Score: 142}},
		{AttemptEventData: store.AttemptEventData{Assessment: "political", Action: "complete", ResultLabel: scoring.LabelLibertarianRight}},
	}}
	s := New(profiles, attempts, nil)

	msg := s.Init()()
	s.Update(msg)

	view := s.View(80, 24)
	for _, want := range []string{scoring.LabelLibertarianRight, "142", "90%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResults_NoInsightWithoutService(t *testing.T) {
	s := New(&fakeProfileRepo{profile: fullProfile()}, &fakeAttemptRepo{}, nil)

	msg := s.Init()()
	_, cmd := s.Update(msg)
	if cmd != nil {
		t.Error("expected no insight polling without a provider")
	}
	if s.polling {
		t.Error("expected polling to stay off")
	}
}
