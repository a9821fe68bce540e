// Package session implements the state machine driving one assessment
// attempt. The controller consumes the question bank and randomizer,
// drives the countdown, collects answers, and on completion invokes the
// scoring engine and writes through the result store. The host shell
// only forwards selections in and renders events out; it never computes
// scores itself.
package session

import (
	"time"

	"github.com/abhisek/iqorum/internal/bank"
)

// State is the lifecycle phase of a session.
type State int

const (
	NotStarted State = iota
	InProgress
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Answer records one option selection. Immutable once created: a
// question answered within a session cannot be re-answered.
type Answer struct {
	QuestionID     int
	Value          string
	ResponseTimeMs int64
}

// Session is one attempt at a given assessment type. The question list
// is fixed at start; the cursor indexes into it.
type Session struct {
	ID        string
	Type      bank.Assessment
	Questions []bank.Question
	Cursor    int
	State     State
	StartedAt time.Time

	// Answers is keyed by question ID; answered preserves insertion
	// order for response-time accounting.
	Answers  map[int]Answer
	answered []int
}

// Current returns the question at the cursor, or false when the session
// has run past its last question.
func (s *Session) Current() (bank.Question, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Questions) {
		return bank.Question{}, false
	}
	return s.Questions[s.Cursor], true
}

// Progress returns the fraction of questions answered, in [0,1].
func (s *Session) Progress() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(len(s.answered)) / float64(len(s.Questions))
}

// AnsweredMs returns the sum of recorded response times, used to
// attribute elapsed time to the next answer.
func (s *Session) AnsweredMs() int64 {
	var total int64
	for _, id := range s.answered {
		total += s.Answers[id].ResponseTimeMs
	}
	return total
}

// responseTimes returns per-answer response times in answer order.
func (s *Session) responseTimes() []int64 {
	out := make([]int64, 0, len(s.answered))
	for _, id := range s.answered {
		out = append(out, s.Answers[id].ResponseTimeMs)
	}
	return out
}

// question looks up a session question by ID.
func (s *Session) question(id int) (bank.Question, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return bank.Question{}, false
}

// correctCount returns how many recorded answers match their question's
// correct answer. Only meaningful for cognitive sessions.
func (s *Session) correctCount() int {
	n := 0
	for _, id := range s.answered {
		if q, ok := s.question(id); ok && s.Answers[id].Value == q.CorrectAnswer {
			n++
		}
	}
	return n
}

func (s *Session) record(a Answer) {
	s.Answers[a.QuestionID] = a
	s.answered = append(s.answered, a.QuestionID)
}
