package session

import (
	"github.com/abhisek/iqorum/internal/bank"
	"github.com/abhisek/iqorum/internal/scoring"
)

// Result is the outcome of a completed session. Exactly one of
// Political or Cognitive is set, matching Type.
type Result struct {
	Type      bank.Assessment
	Political *scoring.PoliticalResult
	Cognitive *scoring.CognitiveResult
}

// Events is the sink the controller emits into. The shell implements it
// to render; callbacks run synchronously on the shell's update thread.
type Events interface {
	// QuestionPresented fires when a question becomes current.
	// index is zero-based; total is the session's question count.
	QuestionPresented(q bank.Question, index, total int)

	// ProgressChanged fires after each recorded answer with the
	// fraction of questions answered.
	ProgressChanged(fraction float64)

	// TimerTick fires once per elapsed second of a cognitive session
	// with the seconds remaining.
	TimerTick(secondsRemaining int)

	// Completed fires exactly once when a session finishes, whether by
	// answering the last question or by timer expiry.
	Completed(result Result)
}

// Dispatcher is an Events implementation with a swappable target. The
// shell wires one controller at startup and points the dispatcher at
// whichever screen is currently showing a session. Not safe for
// concurrent use; like the controller it lives on the update thread.
type Dispatcher struct {
	target Events
}

// NewDispatcher returns a dispatcher that discards events until a
// target is set.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{target: NopEvents{}}
}

// SetTarget points the dispatcher at e. A nil target discards events.
func (d *Dispatcher) SetTarget(e Events) {
	if e == nil {
		e = NopEvents{}
	}
	d.target = e
}

func (d *Dispatcher) QuestionPresented(q bank.Question, index, total int) {
	d.target.QuestionPresented(q, index, total)
}

func (d *Dispatcher) ProgressChanged(fraction float64) {
	d.target.ProgressChanged(fraction)
}

func (d *Dispatcher) TimerTick(secondsRemaining int) {
	d.target.TimerTick(secondsRemaining)
}

func (d *Dispatcher) Completed(result Result) {
	d.target.Completed(result)
}

// NopEvents discards all events. Useful as a default and in tests.
type NopEvents struct{}

func (NopEvents) QuestionPresented(bank.Question, int, int) {}
func (NopEvents) ProgressChanged(float64)                   {}
func (NopEvents) TimerTick(int)                             {}
func (NopEvents) Completed(Result)                          {}
