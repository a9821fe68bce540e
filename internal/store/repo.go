package store

import (
	"context"
	"time"

	"github.com/abhisek/iqorum/internal/scoring"
)

// ProfileKey is the fixed identifier of the single local profile.
const ProfileKey = "local"

// Profile is the persisted record of latest results per assessment.
// Absent results are nil. The profile is owned by the store: the session
// controller writes it only at completion and never reads it mid-session.
type Profile struct {
	Political            *scoring.PoliticalResult `json:"political,omitempty"`
	Cognitive            *scoring.CognitiveResult `json:"cognitive,omitempty"`
	PoliticalCompletedAt *time.Time               `json:"politicalCompletedAt,omitempty"`
	CognitiveCompletedAt *time.Time               `json:"cognitiveCompletedAt,omitempty"`
}

// Empty reports whether no assessment has been completed yet.
func (p *Profile) Empty() bool {
	return p.Political == nil && p.Cognitive == nil
}

// ProfileRepo persists the assessment profile. The contract is
// load-or-default-empty, save-whole-record: Load never fails on a
// missing or malformed record, and Save replaces the record wholesale.
type ProfileRepo interface {
	// Load returns the stored profile, or an empty profile when none
	// exists or the stored record fails to parse.
	Load(ctx context.Context) (*Profile, error)

	// Save replaces the stored profile with p.
	Save(ctx context.Context, p *Profile) error

	// Reset deletes the stored profile.
	Reset(ctx context.Context) error
}

// AttemptEventData captures one assessment session lifecycle event.
type AttemptEventData struct {
	SessionID         string
	Assessment        string
	Action            string // start, complete, abandon
	QuestionsAnswered int
	CorrectAnswers    int
	DurationSecs      int
	ResultLabel       string
	Score             int
}

// Attempt is a stored attempt event, read back for history display.
type Attempt struct {
	Sequence  int64
	Timestamp time.Time
	AttemptEventData
}

// AttemptRepo provides append and query access to attempt events.
type AttemptRepo interface {
	// AppendAttempt records a session lifecycle event.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// CompletedAttempts returns completed attempts for one assessment,
	// most recent first, up to limit (0 = unlimited).
	CompletedAttempts(ctx context.Context, assessment string, limit int) ([]Attempt, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event, read back for the
// llm inspection commands.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMEventRepo provides append and query access to LLM request events.
type LLMEventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMRequests returns events most recent first, up to limit
	// (0 = unlimited).
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error)

	// LLMRequestByID returns one event, or nil when not found.
	LLMRequestByID(ctx context.Context, id int) (*LLMRequestEvent, error)
}

// FeedbackRepo records feedback form submissions.
type FeedbackRepo interface {
	// AppendFeedback stores one feedback message.
	AppendFeedback(ctx context.Context, message string) error
}
