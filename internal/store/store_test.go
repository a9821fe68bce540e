package store

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/iqorum/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileLoadEmpty(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	p, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if !p.Empty() {
		t.Fatal("expected empty profile when none stored")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	saved := &Profile{
		Political: &scoring.PoliticalResult{
			EconomicAxis: 80,
			SocialAxis:   20,
			Label:        scoring.LabelLibertarianRight,
			Description:  "test description",
		},
		Cognitive: &scoring.CognitiveResult{
			Score:                  142,
			Label:                  scoring.LabelAboveAverage,
			Accuracy:               0.9,
			AverageResponseSeconds: 12.5,
		},
		PoliticalCompletedAt: &now,
		CognitiveCompletedAt: &now,
	}

	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(saved, loaded) {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", saved, loaded)
	}
}

func TestProfileSaveReplacesWholeRecord(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	full := &Profile{
		Political: &scoring.PoliticalResult{
			EconomicAxis: 50,
			SocialAxis:   50,
			Label:        scoring.LabelCentrist,
		},
	}
	if err := repo.Save(ctx, full); err != nil {
		t.Fatalf("save full: %v", err)
	}

	// Saving an empty profile replaces the record; no fields survive.
	if err := repo.Save(ctx, &Profile{}); err != nil {
		t.Fatalf("save empty: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded.Empty() {
		t.Errorf("expected empty profile after wholesale replace, got %+v", loaded)
	}
}

func TestProfileReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	err := repo.Save(ctx, &Profile{
		Cognitive: &scoring.CognitiveResult{Score: 100, Label: scoring.LabelAverage},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after reset: %v", err)
	}
	if !loaded.Empty() {
		t.Errorf("expected empty profile after reset, got %+v", loaded)
	}
}

func TestProfileMalformedResetsToEmpty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Store a record whose data doesn't decode as a profile.
	_, err := s.Client().Profile.Create().
		SetKey(ProfileKey).
		SetData(map[string]any{"political": "not an object"}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed malformed profile: %v", err)
	}

	loaded, err := s.ProfileRepo().Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !loaded.Empty() {
		t.Errorf("expected empty profile for malformed record, got %+v", loaded)
	}
}

func TestAttemptAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	events := []AttemptEventData{
		{SessionID: "a", Assessment: "cognitive", Action: "start"},
		{SessionID: "a", Assessment: "cognitive", Action: "complete", QuestionsAnswered: 10, CorrectAnswers: 8, DurationSecs: 120, ResultLabel: "Above Average", Score: 128},
		{SessionID: "b", Assessment: "political", Action: "complete", QuestionsAnswered: 10, ResultLabel: "Centrist"},
		{SessionID: "c", Assessment: "cognitive", Action: "abandon", QuestionsAnswered: 3},
		{SessionID: "d", Assessment: "cognitive", Action: "complete", QuestionsAnswered: 10, CorrectAnswers: 5, DurationSecs: 300, ResultLabel: "Average", Score: 95},
	}
	for i, e := range events {
		if err := repo.AppendAttempt(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	attempts, err := repo.CompletedAttempts(ctx, "cognitive", 0)
	if err != nil {
		t.Fatalf("completed attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("got %d completed cognitive attempts, want 2", len(attempts))
	}

	// Most recent first.
	if attempts[0].SessionID != "d" || attempts[1].SessionID != "a" {
		t.Errorf("order = [%s, %s], want [d, a]", attempts[0].SessionID, attempts[1].SessionID)
	}
	if attempts[1].Score != 128 {
		t.Errorf("score = %d, want 128", attempts[1].Score)
	}
	if attempts[0].Sequence <= attempts[1].Sequence {
		t.Errorf("sequences not descending: %d then %d", attempts[0].Sequence, attempts[1].Sequence)
	}
}

func TestAttemptQueryLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			SessionID:  fmt.Sprintf("s%d", i),
			Assessment: "political",
			Action:     "complete",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	attempts, err := repo.CompletedAttempts(ctx, "political", 3)
	if err != nil {
		t.Fatalf("completed attempts: %v", err)
	}
	if len(attempts) != 3 {
		t.Errorf("got %d attempts, want 3", len(attempts))
	}
	if attempts[0].SessionID != "s4" {
		t.Errorf("newest = %s, want s4", attempts[0].SessionID)
	}
}

func TestLLMEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMEventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-20250514",
		Purpose:      "insight",
		InputTokens:  120,
		OutputTokens: 340,
		LatencyMs:    900,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append llm event: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("llm events = %d, want 1", count)
	}
}

func TestLLMEventQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMEventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock",
			Model:    fmt.Sprintf("model-%d", i),
			Purpose:  "insight",
			Success:  true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recent, err := repo.RecentLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d events, want 2", len(recent))
	}
	// Most recent first.
	if recent[0].Model != "model-2" || recent[1].Model != "model-1" {
		t.Errorf("order = [%s, %s], want [model-2, model-1]", recent[0].Model, recent[1].Model)
	}

	got, err := repo.LLMRequestByID(ctx, recent[0].ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got == nil || got.Model != "model-2" {
		t.Errorf("by id = %+v, want model-2", got)
	}

	missing, err := repo.LLMRequestByID(ctx, 9999)
	if err != nil {
		t.Fatalf("by missing id: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing id, got %+v", missing)
	}
}

func TestFeedbackAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.FeedbackRepo()
	ctx := context.Background()

	if err := repo.AppendFeedback(ctx, "more logic puzzles please"); err != nil {
		t.Fatalf("append feedback: %v", err)
	}

	count, err := s.Client().FeedbackEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("feedback events = %d, want 1", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.AttemptRepo().AppendAttempt(ctx, AttemptEventData{SessionID: "x", Assessment: "cognitive", Action: "start"}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := s.FeedbackRepo().AppendFeedback(ctx, "hi"); err != nil {
		t.Fatalf("append feedback: %v", err)
	}

	att, err := s.Client().AttemptEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query attempt: %v", err)
	}
	fb, err := s.Client().FeedbackEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query feedback: %v", err)
	}
	if fb.Sequence != att.Sequence+1 {
		t.Errorf("feedback sequence = %d, want %d", fb.Sequence, att.Sequence+1)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"profiles", "attempt_events", "llm_request_events", "feedback_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
