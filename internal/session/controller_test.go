package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/abhisek/iqorum/internal/bank"
	"github.com/abhisek/iqorum/internal/store"
)

type seededSource struct{ r *rand.Rand }

func newSeededSource(seed uint64) *seededSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s *seededSource) IntN(n int) int { return s.r.IntN(n) }

type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type presentedEvent struct {
	id    int
	index int
	total int
}

type eventRecorder struct {
	presented []presentedEvent
	progress  []float64
	ticks     []int
	completed []Result
}

func (r *eventRecorder) QuestionPresented(q bank.Question, index, total int) {
	r.presented = append(r.presented, presentedEvent{id: q.ID, index: index, total: total})
}
func (r *eventRecorder) ProgressChanged(f float64)   { r.progress = append(r.progress, f) }
func (r *eventRecorder) TimerTick(remaining int)     { r.ticks = append(r.ticks, remaining) }
func (r *eventRecorder) Completed(res Result)        { r.completed = append(r.completed, res) }

type fakeProfileRepo struct{ profile *store.Profile }

func (r *fakeProfileRepo) Load(context.Context) (*store.Profile, error) {
	if r.profile == nil {
		return &store.Profile{}, nil
	}
	cp := *r.profile
	return &cp, nil
}
func (r *fakeProfileRepo) Save(_ context.Context, p *store.Profile) error {
	cp := *p
	r.profile = &cp
	return nil
}
func (r *fakeProfileRepo) Reset(context.Context) error {
	r.profile = nil
	return nil
}

type fakeAttemptRepo struct{ events []store.AttemptEventData }

func (r *fakeAttemptRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	r.events = append(r.events, data)
	return nil
}
func (r *fakeAttemptRepo) CompletedAttempts(context.Context, string, int) ([]store.Attempt, error) {
	return nil, nil
}

// politicalBank builds n questions, each offering a left, right, auth,
// and lib option.
func politicalBank(n int) []bank.Question {
	qs := make([]bank.Question, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, bank.Question{
			ID:   i,
			Type: bank.Political,
			Text: fmt.Sprintf("statement %d", i),
			Options: []bank.Option{
				{Label: "Left", Axis: bank.AxisLeft},
				{Label: "Right", Axis: bank.AxisRight},
				{Label: "Order", Axis: bank.AxisAuthoritarian},
				{Label: "Freedom", Axis: bank.AxisLibertarian},
			},
		})
	}
	return qs
}

// cognitiveBank builds n questions whose correct answer is always "yes".
func cognitiveBank(n int) []bank.Question {
	qs := make([]bank.Question, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, bank.Question{
			ID:            i,
			Type:          bank.Cognitive,
			Text:          fmt.Sprintf("puzzle %d", i),
			Options:       []bank.Option{{Label: "yes"}, {Label: "no"}, {Label: "maybe"}},
			CorrectAnswer: "yes",
		})
	}
	return qs
}

func TestStartPolitical(t *testing.T) {
	rec := &eventRecorder{}
	c := NewController(Options{
		Questions: politicalBank(4),
		Source:    newSeededSource(1),
		Events:    rec,
	})

	if err := c.Start(context.Background(), bank.Political); err != nil {
		t.Fatalf("start: %v", err)
	}

	sess := c.SessionOf(bank.Political)
	if sess.State != InProgress {
		t.Errorf("state = %v, want in progress", sess.State)
	}
	if len(sess.Questions) != 4 {
		t.Errorf("question count = %d, want 4", len(sess.Questions))
	}
	// Political sessions keep feed order.
	for i, q := range sess.Questions {
		if q.ID != i+1 {
			t.Errorf("question[%d].ID = %d, want %d", i, q.ID, i+1)
		}
	}
	if len(rec.presented) != 1 || rec.presented[0] != (presentedEvent{id: 1, index: 0, total: 4}) {
		t.Errorf("presented = %+v, want first question of 4", rec.presented)
	}
}

func TestStartUnknownTypeFails(t *testing.T) {
	c := NewController(Options{Questions: politicalBank(2)})
	if err := c.Start(context.Background(), bank.Assessment("astrology")); err == nil {
		t.Fatal("expected error for unknown assessment type")
	}
}

func TestStartWithEmptyBankFails(t *testing.T) {
	c := NewController(Options{Questions: politicalBank(3)})
	err := c.Start(context.Background(), bank.Cognitive)
	if err == nil {
		t.Fatal("expected error when no cognitive questions exist")
	}
	if !errors.Is(err, bank.ErrDataUnavailable) {
		t.Errorf("error = %v, want ErrDataUnavailable", err)
	}
	if c.StateOf(bank.Cognitive) != NotStarted {
		t.Errorf("state = %v, want not started after failed start", c.StateOf(bank.Cognitive))
	}
}

func TestCognitiveStartSamplesAndShufflesOptions(t *testing.T) {
	c := NewController(Options{
		Questions: cognitiveBank(15),
		Source:    newSeededSource(7),
	})

	if err := c.Start(context.Background(), bank.Cognitive); err != nil {
		t.Fatalf("start: %v", err)
	}

	sess := c.SessionOf(bank.Cognitive)
	if len(sess.Questions) != DefaultCognitiveQuestions {
		t.Fatalf("session has %d questions, want %d", len(sess.Questions), DefaultCognitiveQuestions)
	}

	seen := make(map[int]bool)
	for _, q := range sess.Questions {
		if seen[q.ID] {
			t.Errorf("question %d drawn twice", q.ID)
		}
		seen[q.ID] = true

		// Options must be a permutation of the originals.
		if len(q.Options) != 3 || !q.HasOption("yes") || !q.HasOption("no") || !q.HasOption("maybe") {
			t.Errorf("question %d options corrupted: %+v", q.ID, q.Options)
		}
	}
}

func TestSubmitRecordsResponseTimes(t *testing.T) {
	clock := newFakeClock()
	c := NewController(Options{
		Questions: politicalBank(3),
		Now:       clock.Now,
	})
	ctx := context.Background()

	if err := c.Start(ctx, bank.Political); err != nil {
		t.Fatalf("start: %v", err)
	}
	sess := c.SessionOf(bank.Political)

	clock.Advance(5 * time.Second)
	if err := c.Submit(ctx, bank.Political, 1, "Left"); err != nil {
		t.Fatalf("submit 1: %v", err)
	}
	clock.Advance(3 * time.Second)
	if err := c.Submit(ctx, bank.Political, 2, "Right"); err != nil {
		t.Fatalf("submit 2: %v", err)
	}

	if got := sess.Answers[1].ResponseTimeMs; got != 5000 {
		t.Errorf("answer 1 response time = %dms, want 5000", got)
	}
	// Second answer is attributed only the time since the first.
	if got := sess.Answers[2].ResponseTimeMs; got != 3000 {
		t.Errorf("answer 2 response time = %dms, want 3000", got)
	}
}

func TestSubmitNoOps(t *testing.T) {
	clock := newFakeClock()
	rec := &eventRecorder{}
	c := NewController(Options{
		Questions: politicalBank(3),
		Now:       clock.Now,
		Events:    rec,
	})
	ctx := context.Background()

	// No session yet.
	if err := c.Submit(ctx, bank.Political, 1, "Left"); err != nil {
		t.Fatalf("submit without session: %v", err)
	}

	if err := c.Start(ctx, bank.Political); err != nil {
		t.Fatalf("start: %v", err)
	}
	sess := c.SessionOf(bank.Political)

	if err := c.Submit(ctx, bank.Political, 1, "Left"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	tests := []struct {
		name       string
		questionID int
		value      string
	}{
		{"already answered", 1, "Right"},
		{"not the current question", 3, "Left"},
		{"unknown option", 2, "Banana"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.Submit(ctx, bank.Political, tt.questionID, tt.value); err != nil {
				t.Fatalf("submit: %v", err)
			}
			if sess.Cursor != 1 {
				t.Errorf("cursor = %d, want 1", sess.Cursor)
			}
			if len(sess.Answers) != 1 {
				t.Errorf("answers = %d, want 1", len(sess.Answers))
			}
			if sess.Answers[1].Value != "Left" {
				t.Errorf("answer 1 = %q, want the original selection", sess.Answers[1].Value)
			}
		})
	}
}

func TestPoliticalCompletion(t *testing.T) {
	clock := newFakeClock()
	rec := &eventRecorder{}
	profiles := &fakeProfileRepo{}
	attempts := &fakeAttemptRepo{}
	c := NewController(Options{
		Questions: politicalBank(12),
		Now:       clock.Now,
		Events:    rec,
		Profiles:  profiles,
		Attempts:  attempts,
	})
	ctx := context.Background()

	if err := c.Start(ctx, bank.Political); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Six right answers and six authoritarian answers push both axes
	// past the outer band.
	for i := 1; i <= 12; i++ {
		value := "Right"
		if i > 6 {
			value = "Order"
		}
		clock.Advance(2 * time.Second)
		if err := c.Submit(ctx, bank.Political, i, value); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	if len(rec.completed) != 1 {
		t.Fatalf("completed events = %d, want 1", len(rec.completed))
	}
	res := rec.completed[0]
	if res.Political == nil {
		t.Fatal("expected political result")
	}
	if res.Political.Label != "Authoritarian Right" {
		t.Errorf("label = %q, want Authoritarian Right", res.Political.Label)
	}
	if res.Political.EconomicAxis != 80 || res.Political.SocialAxis != 80 {
		t.Errorf("axes = (%v, %v), want (80, 80)", res.Political.EconomicAxis, res.Political.SocialAxis)
	}

	if profiles.profile == nil || profiles.profile.Political == nil {
		t.Fatal("expected political result persisted")
	}
	if profiles.profile.Political.Label != "Authoritarian Right" {
		t.Errorf("persisted label = %q", profiles.profile.Political.Label)
	}

	if len(attempts.events) != 2 {
		t.Fatalf("attempt events = %d, want start + complete", len(attempts.events))
	}
	last := attempts.events[1]
	if last.Action != "complete" || last.QuestionsAnswered != 12 || last.ResultLabel != "Authoritarian Right" {
		t.Errorf("complete event = %+v", last)
	}
}

func TestCompletionPreservesOtherResult(t *testing.T) {
	clock := newFakeClock()
	profiles := &fakeProfileRepo{}
	c := NewController(Options{
		Questions: append(politicalBank(2), cognitiveBank(10)...),
		Source:    newSeededSource(3),
		Now:       clock.Now,
		Profiles:  profiles,
	})
	ctx := context.Background()

	// Complete cognitive first.
	if err := c.Start(ctx, bank.Cognitive); err != nil {
		t.Fatalf("start cognitive: %v", err)
	}
	for _, q := range c.SessionOf(bank.Cognitive).Questions {
		clock.Advance(time.Second)
		if err := c.Submit(ctx, bank.Cognitive, q.ID, "yes"); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	// A political completion must not erase the cognitive result.
	if err := c.Start(ctx, bank.Political); err != nil {
		t.Fatalf("start political: %v", err)
	}
	for i := 1; i <= 2; i++ {
		clock.Advance(time.Second)
		if err := c.Submit(ctx, bank.Political, i, "Left"); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	p := profiles.profile
	if p == nil || p.Cognitive == nil || p.Political == nil {
		t.Fatalf("profile missing results: %+v", p)
	}
	if p.Cognitive.Score != 170 {
		t.Errorf("cognitive score = %d, want 170", p.Cognitive.Score)
	}
}

func TestCognitiveAllCorrectFast(t *testing.T) {
	clock := newFakeClock()
	rec := &eventRecorder{}
	c := NewController(Options{
		Questions: cognitiveBank(15),
		Source:    newSeededSource(11),
		Now:       clock.Now,
		Events:    rec,
	})
	ctx := context.Background()

	if err := c.Start(ctx, bank.Cognitive); err != nil {
		t.Fatalf("start: %v", err)
	}
	for _, q := range c.SessionOf(bank.Cognitive).Questions {
		clock.Advance(5 * time.Second)
		if err := c.Submit(ctx, bank.Cognitive, q.ID, "yes"); err != nil {
			t.Fatalf("submit %d: %v", q.ID, err)
		}
	}

	if len(rec.completed) != 1 {
		t.Fatalf("completed events = %d, want 1", len(rec.completed))
	}
	res := rec.completed[0].Cognitive
	if res == nil {
		t.Fatal("expected cognitive result")
	}
	if res.Score != 170 {
		t.Errorf("score = %d, want 170", res.Score)
	}
	if res.Label != "superior" {
		t.Errorf("label = %q, want superior", res.Label)
	}
	if res.Accuracy != 1 {
		t.Errorf("accuracy = %v, want 1", res.Accuracy)
	}
}

func TestExpiryCompletesWithRecordedAnswers(t *testing.T) {
	clock := newFakeClock()
	rec := &eventRecorder{}
	c := NewController(Options{
		Questions:             cognitiveBank(12),
		Source:                newSeededSource(5),
		Now:                   clock.Now,
		Events:                rec,
		CognitiveDurationSecs: 4,
	})
	ctx := context.Background()

	if err := c.Start(ctx, bank.Cognitive); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Answer three correctly, then run the clock out.
	for _, q := range c.SessionOf(bank.Cognitive).Questions[:3] {
		clock.Advance(5 * time.Second)
		if err := c.Submit(ctx, bank.Cognitive, q.ID, "yes"); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	for i := 0; i < 4; i++ {
		c.Tick()
	}

	if len(rec.completed) != 1 {
		t.Fatalf("completed events = %d, want 1", len(rec.completed))
	}
	res := rec.completed[0].Cognitive
	// Unanswered questions count as incorrect: 3/10 correct, 5s average.
	if res.Accuracy != 0.3 {
		t.Errorf("accuracy = %v, want 0.3", res.Accuracy)
	}
	if res.AverageResponseSeconds != 5 {
		t.Errorf("average response = %v, want 5", res.AverageResponseSeconds)
	}

	// Further ticks must not complete again.
	c.Tick()
	c.Tick()
	if len(rec.completed) != 1 {
		t.Errorf("completed events after extra ticks = %d, want 1", len(rec.completed))
	}
}

func TestTimerTicksReachShell(t *testing.T) {
	rec := &eventRecorder{}
	c := NewController(Options{
		Questions:             cognitiveBank(10),
		Source:                newSeededSource(2),
		Events:                rec,
		CognitiveDurationSecs: 5,
	})

	if err := c.Start(context.Background(), bank.Cognitive); err != nil {
		t.Fatalf("start: %v", err)
	}
	c.Tick()
	c.Tick()

	want := []int{4, 3}
	if len(rec.ticks) != len(want) {
		t.Fatalf("ticks = %v, want %v", rec.ticks, want)
	}
	for i := range want {
		if rec.ticks[i] != want[i] {
			t.Errorf("tick[%d] = %d, want %d", i, rec.ticks[i], want[i])
		}
	}
	if c.Remaining() != 3 {
		t.Errorf("remaining = %d, want 3", c.Remaining())
	}
}

func TestLeaveStopsTimerWithoutResult(t *testing.T) {
	rec := &eventRecorder{}
	attempts := &fakeAttemptRepo{}
	c := NewController(Options{
		Questions:             cognitiveBank(10),
		Source:                newSeededSource(9),
		Events:                rec,
		Attempts:              attempts,
		CognitiveDurationSecs: 2,
	})
	ctx := context.Background()

	if err := c.Start(ctx, bank.Cognitive); err != nil {
		t.Fatalf("start: %v", err)
	}
	c.Leave(ctx, bank.Cognitive)

	// Ticks after leaving never expire the session.
	c.Tick()
	c.Tick()
	c.Tick()
	if len(rec.completed) != 0 {
		t.Errorf("completed events = %d, want 0", len(rec.completed))
	}
	if c.StateOf(bank.Cognitive) != InProgress {
		t.Errorf("state = %v, want in progress (discarded on next start)", c.StateOf(bank.Cognitive))
	}

	if len(attempts.events) != 2 || attempts.events[1].Action != "abandon" {
		t.Errorf("attempt events = %+v, want start + abandon", attempts.events)
	}

	// Restart replaces the abandoned session wholesale.
	if err := c.Start(ctx, bank.Cognitive); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if got := len(c.SessionOf(bank.Cognitive).Answers); got != 0 {
		t.Errorf("answers after restart = %d, want 0", got)
	}
}
