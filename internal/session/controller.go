package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/iqorum/internal/bank"
	"github.com/abhisek/iqorum/internal/random"
	"github.com/abhisek/iqorum/internal/scoring"
	"github.com/abhisek/iqorum/internal/store"
	"github.com/abhisek/iqorum/internal/timer"
)

// Defaults for the cognitive assessment.
const (
	DefaultCognitiveQuestions    = 10
	DefaultCognitiveDurationSecs = 600
)

// Options configures a Controller. Questions is the loaded bank; the
// repos may be nil in tests that don't exercise persistence.
type Options struct {
	Questions []bank.Question
	Source    random.Source
	Profiles  store.ProfileRepo
	Attempts  store.AttemptRepo
	Events    Events

	// Now is the clock used for response-time accounting. Defaults to
	// time.Now; tests inject a fake.
	Now func() time.Time

	CognitiveQuestions    int
	CognitiveDurationSecs int
}

// Controller drives assessment sessions. It holds at most one session
// per assessment type; starting a new one discards the prior session of
// that type. All methods are meant to be called from a single logical
// thread (the shell's update loop).
type Controller struct {
	opts      Options
	sessions  map[bank.Assessment]*Session
	countdown *timer.Countdown
}

// NewController creates a controller over the given options, filling in
// defaults for unset fields.
func NewController(opts Options) *Controller {
	if opts.Source == nil {
		opts.Source = random.NewSource()
	}
	if opts.Events == nil {
		opts.Events = NopEvents{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.CognitiveQuestions <= 0 {
		opts.CognitiveQuestions = DefaultCognitiveQuestions
	}
	if opts.CognitiveDurationSecs <= 0 {
		opts.CognitiveDurationSecs = DefaultCognitiveDurationSecs
	}

	c := &Controller{
		opts:      opts,
		sessions:  make(map[bank.Assessment]*Session),
		countdown: timer.New(),
	}
	c.countdown.OnTick(func(remaining int) {
		c.opts.Events.TimerTick(remaining)
	})
	c.countdown.OnExpire(c.expire)
	return c
}

// Start begins a new session of the given type, discarding any prior
// in-progress session of that type. Political sessions present the full
// bank in feed order; cognitive sessions draw a shuffled subset with
// independently shuffled options and run under the countdown.
func (c *Controller) Start(ctx context.Context, t bank.Assessment) error {
	if !t.Valid() {
		return fmt.Errorf("start: unknown assessment %q", t)
	}

	questions, err := c.buildQuestions(t)
	if err != nil {
		return err
	}

	sess := &Session{
		ID:        uuid.NewString(),
		Type:      t,
		Questions: questions,
		State:     InProgress,
		StartedAt: c.opts.Now(),
		Answers:   make(map[int]Answer),
	}
	c.sessions[t] = sess

	if t == bank.Cognitive {
		c.countdown.Start(c.opts.CognitiveDurationSecs)
	}

	c.appendAttempt(ctx, sess, "start")

	first, _ := sess.Current()
	c.opts.Events.QuestionPresented(first, 0, len(sess.Questions))
	c.opts.Events.ProgressChanged(0)
	return nil
}

// Restart discards any session of the given type and starts fresh.
// Partial progress is never persisted.
func (c *Controller) Restart(ctx context.Context, t bank.Assessment) error {
	return c.Start(ctx, t)
}

// Submit records the selection for the current question and advances.
// Submissions with no in-progress session, for a question other than
// the current one, for an already-answered question, or naming an
// unknown option are no-ops.
func (c *Controller) Submit(ctx context.Context, t bank.Assessment, questionID int, value string) error {
	sess := c.sessions[t]
	if sess == nil || sess.State != InProgress {
		return nil
	}
	q, ok := sess.Current()
	if !ok || q.ID != questionID {
		return nil
	}
	if _, answered := sess.Answers[questionID]; answered {
		return nil
	}
	if !q.HasOption(value) {
		return nil
	}

	elapsed := c.opts.Now().Sub(sess.StartedAt).Milliseconds() - sess.AnsweredMs()
	if elapsed < 0 {
		elapsed = 0
	}
	sess.record(Answer{QuestionID: questionID, Value: value, ResponseTimeMs: elapsed})
	sess.Cursor++

	if sess.Cursor >= len(sess.Questions) {
		c.complete(ctx, sess)
		return nil
	}

	next, _ := sess.Current()
	c.opts.Events.QuestionPresented(next, sess.Cursor, len(sess.Questions))
	c.opts.Events.ProgressChanged(sess.Progress())
	return nil
}

// Tick advances the cognitive countdown by one second. The shell calls
// it once per elapsed second while the assessment screen is active;
// navigating away stops the ticks and with them the timer.
func (c *Controller) Tick() {
	c.countdown.Tick()
}

// Remaining returns the seconds left on the cognitive countdown.
func (c *Controller) Remaining() int {
	return c.countdown.Remaining()
}

// Leave abandons an in-progress session of the given type: the timer
// stops and no result is recorded. The session stays in-progress and is
// discarded by the next Start.
func (c *Controller) Leave(ctx context.Context, t bank.Assessment) {
	sess := c.sessions[t]
	if sess == nil || sess.State != InProgress {
		return
	}
	if t == bank.Cognitive {
		c.countdown.Stop()
	}
	c.appendAttempt(ctx, sess, "abandon")
}

// SessionOf returns the controller's session for the given type, or nil.
func (c *Controller) SessionOf(t bank.Assessment) *Session {
	return c.sessions[t]
}

// StateOf returns the lifecycle state for the given type.
func (c *Controller) StateOf(t bank.Assessment) State {
	if sess := c.sessions[t]; sess != nil {
		return sess.State
	}
	return NotStarted
}

func (c *Controller) buildQuestions(t bank.Assessment) ([]bank.Question, error) {
	pool := bank.OfType(c.opts.Questions, t)
	if len(pool) == 0 {
		return nil, fmt.Errorf("start %s: %w", t, bank.ErrDataUnavailable)
	}
	if t == bank.Political {
		return pool, nil
	}

	picked := random.Sample(c.opts.Source, pool, c.opts.CognitiveQuestions)
	out := make([]bank.Question, len(picked))
	for i, q := range picked {
		q.Options = random.Shuffle(c.opts.Source, q.Options)
		out[i] = q
	}
	return out, nil
}

// expire is the countdown's expiry callback. It completes the cognitive
// session with whatever answers are recorded; unanswered questions count
// as incorrect. The countdown suppresses expiry once stopped, so a
// session that already completed can't complete twice.
func (c *Controller) expire() {
	sess := c.sessions[bank.Cognitive]
	if sess == nil || sess.State != InProgress {
		return
	}
	c.complete(context.Background(), sess)
}

func (c *Controller) complete(ctx context.Context, sess *Session) {
	sess.State = Completed
	if sess.Type == bank.Cognitive {
		c.countdown.Stop()
	}

	result := c.score(sess)
	c.persistResult(ctx, sess, result)
	c.appendCompleteAttempt(ctx, sess, result)
	c.opts.Events.Completed(result)
}

func (c *Controller) score(sess *Session) Result {
	switch sess.Type {
	case bank.Political:
		values := make([]bank.Axis, 0, len(sess.answered))
		for _, id := range sess.answered {
			if q, ok := sess.question(id); ok {
				if axis, ok := q.AxisOf(sess.Answers[id].Value); ok {
					values = append(values, axis)
				}
			}
		}
		r := scoring.ScorePolitical(values)
		return Result{Type: bank.Political, Political: &r}

	default:
		r := scoring.ScoreCognitive(sess.correctCount(), len(sess.Questions), sess.responseTimes())
		return Result{Type: bank.Cognitive, Cognitive: &r}
	}
}

// persistResult replaces the stored profile with the session's outcome
// merged over the other assessment's latest result. Store failures are
// not fatal to the attempt; the result is still reported to the shell.
func (c *Controller) persistResult(ctx context.Context, sess *Session, result Result) {
	if c.opts.Profiles == nil {
		return
	}

	profile, err := c.opts.Profiles.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: load profile: %v\n", err)
		profile = &store.Profile{}
	}

	now := c.opts.Now()
	switch sess.Type {
	case bank.Political:
		profile.Political = result.Political
		profile.PoliticalCompletedAt = &now
	case bank.Cognitive:
		profile.Cognitive = result.Cognitive
		profile.CognitiveCompletedAt = &now
	}

	if err := c.opts.Profiles.Save(ctx, profile); err != nil {
		fmt.Fprintf(os.Stderr, "warning: save profile: %v\n", err)
	}
}

func (c *Controller) appendAttempt(ctx context.Context, sess *Session, action string) {
	if c.opts.Attempts == nil {
		return
	}
	err := c.opts.Attempts.AppendAttempt(ctx, store.AttemptEventData{
		SessionID:         sess.ID,
		Assessment:        string(sess.Type),
		Action:            action,
		QuestionsAnswered: len(sess.answered),
		DurationSecs:      int(c.opts.Now().Sub(sess.StartedAt).Seconds()),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: record %s event: %v\n", action, err)
	}
}

func (c *Controller) appendCompleteAttempt(ctx context.Context, sess *Session, result Result) {
	if c.opts.Attempts == nil {
		return
	}

	data := store.AttemptEventData{
		SessionID:         sess.ID,
		Assessment:        string(sess.Type),
		Action:            "complete",
		QuestionsAnswered: len(sess.answered),
		DurationSecs:      int(c.opts.Now().Sub(sess.StartedAt).Seconds()),
	}
	switch {
	case result.Political != nil:
		data.ResultLabel = result.Political.Label
	case result.Cognitive != nil:
		data.ResultLabel = result.Cognitive.Label
		data.Score = result.Cognitive.Score
		data.CorrectAnswers = sess.correctCount()
	}

	if err := c.opts.Attempts.AppendAttempt(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: record complete event: %v\n", err)
	}
}
