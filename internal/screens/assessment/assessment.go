package assessment

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/iqorum/internal/bank"
	"github.com/abhisek/iqorum/internal/router"
	"github.com/abhisek/iqorum/internal/screen"
	"github.com/abhisek/iqorum/internal/session"
	"github.com/abhisek/iqorum/internal/ui/components"
	"github.com/abhisek/iqorum/internal/ui/layout"
)

// Screen runs one assessment from first question to result. It is the
// engine's event target while on the stack: controller callbacks run
// synchronously inside the engine calls made from Update, so they can
// mutate the screen directly.
type Screen struct {
	engine *session.Controller
	events *session.Dispatcher
	kind   bank.Assessment

	current     *bank.Question
	index       int
	total       int
	progress    float64
	remaining   int
	tickGen     int
	choices     components.Choices
	result      *session.Result
	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)
var _ screen.EscHandler = (*Screen)(nil)
var _ session.Events = (*Screen)(nil)

// New creates an assessment screen for the given type.
func New(engine *session.Controller, events *session.Dispatcher, kind bank.Assessment) *Screen {
	return &Screen{
		engine: engine,
		events: events,
		kind:   kind,
	}
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg { return beginMsg{} }
}

func (s *Screen) Title() string {
	return s.kind.DisplayName()
}

// Status surfaces the countdown in the header while a timed session runs.
func (s *Screen) Status() string {
	if s.kind != bank.Cognitive || s.result != nil || s.errMsg != "" {
		return ""
	}
	return fmt.Sprintf("⏱ %d:%02d", s.remaining/60, s.remaining%60)
}

// HandlesEsc keeps esc inside the screen while a session is running, so
// leaving goes through the quit confirmation and the engine's Leave.
func (s *Screen) HandlesEsc() bool {
	return s.errMsg == "" && s.result == nil
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Keep going"},
		}
	case s.result != nil:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "R", Description: "Retake"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Leave"},
		}
	}
}

// Engine event callbacks.

func (s *Screen) QuestionPresented(q bank.Question, index, total int) {
	s.current = &q
	s.index = index
	s.total = total

	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.Label
	}
	s.choices = components.NewChoices(labels)
}

func (s *Screen) ProgressChanged(fraction float64) {
	s.progress = fraction
}

func (s *Screen) TimerTick(secondsRemaining int) {
	s.remaining = secondsRemaining
}

func (s *Screen) Completed(result session.Result) {
	s.result = &result
	s.current = nil
	s.confirmQuit = false
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case beginMsg:
		return s.begin()
	case timerTickMsg:
		return s.handleTimerTick(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) begin() (screen.Screen, tea.Cmd) {
	s.events.SetTarget(s)
	if err := s.engine.Start(context.Background(), s.kind); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if s.kind == bank.Cognitive {
		s.remaining = s.engine.Remaining()
		s.tickGen++
		return s, tickCmd(s.tickGen)
	}
	return s, nil
}

func (s *Screen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	// A tick from a loop started for an earlier session is stale.
	if msg.gen != s.tickGen {
		return s, nil
	}
	if s.result != nil || s.errMsg != "" {
		return s, nil
	}
	s.engine.Tick()
	if s.result != nil {
		return s, nil
	}
	return s, tickCmd(s.tickGen)
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if s.errMsg != "" {
		return s, s.leave(false)
	}

	// Quit confirmation dialog.
	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, s.leave(true)
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	// Result view.
	if s.result != nil {
		switch key {
		case "enter", "esc", "q":
			return s, s.leave(false)
		case "r", "R":
			return s.retake()
		}
		return s, nil
	}

	// Active question.
	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "enter":
		return s.submit()
	}

	var direct bool
	s.choices, direct = s.choices.Update(msg)
	if direct {
		return s.submit()
	}
	return s, nil
}

func (s *Screen) submit() (screen.Screen, tea.Cmd) {
	if s.current == nil {
		return s, nil
	}
	q := *s.current
	if err := s.engine.Submit(context.Background(), s.kind, q.ID, s.choices.Value()); err != nil {
		s.errMsg = err.Error()
	}
	return s, nil
}

func (s *Screen) retake() (screen.Screen, tea.Cmd) {
	s.result = nil
	s.progress = 0
	if err := s.engine.Restart(context.Background(), s.kind); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if s.kind == bank.Cognitive {
		s.remaining = s.engine.Remaining()
		s.tickGen++
		return s, tickCmd(s.tickGen)
	}
	return s, nil
}

// leave detaches from the engine and pops back home. abandon reports an
// in-progress session as left early.
func (s *Screen) leave(abandon bool) tea.Cmd {
	if abandon {
		s.engine.Leave(context.Background(), s.kind)
	}
	s.events.SetTarget(nil)
	return func() tea.Msg { return router.PopScreenMsg{} }
}

// tickCmd returns a 1-second tick command for the given loop generation.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}
