package assessment

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/iqorum/internal/bank"
	"github.com/abhisek/iqorum/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []bank.Question {
	var qs []bank.Question
	for i := 1; i <= 3; i++ {
		qs = append(qs, bank.Question{
			ID:   i,
			Type: bank.Political,
			Text: fmt.Sprintf("Political question %d", i),
			Options: []bank.Option{
				{Label: "Option A", Axis: bank.AxisLeft},
				{Label: "Option B", Axis: bank.AxisRight},
			},
		})
	}
	for i := 101; i <= 103; i++ {
		qs = append(qs, bank.Question{
			ID:   i,
			Type: bank.Cognitive,
			Text: fmt.Sprintf("Puzzle %d", i),
			Options: []bank.Option{
				{Label: "yes"},
				{Label: "no"},
			},
			CorrectAnswer: "yes",
		})
	}
	return qs
}

func testScreen(kind bank.Assessment) *Screen {
	events := session.NewDispatcher()
	engine := session.NewController(session.Options{
		Questions:             testQuestions(),
		Events:                events,
		CognitiveQuestions:    3,
		CognitiveDurationSecs: 5,
	})
	return New(engine, events, kind)
}

func begin(t *testing.T, s *Screen) {
	t.Helper()
	s.Update(beginMsg{})
	if s.errMsg != "" {
		t.Fatalf("begin failed: %s", s.errMsg)
	}
}

func TestScreen_Title(t *testing.T) {
	if got := testScreen(bank.Political).Title(); got != "Political Compass" {
		t.Errorf("Title = %q, want %q", got, "Political Compass")
	}
	if got := testScreen(bank.Cognitive).Title(); got != "IQ Test" {
		t.Errorf("Title = %q, want %q", got, "IQ Test")
	}
}

func TestScreen_BeginPresentsFirstQuestion(t *testing.T) {
	s := testScreen(bank.Political)
	begin(t, s)

	if s.current == nil {
		t.Fatal("expected a current question after begin")
	}
	if s.current.Text != "Political question 1" {
		t.Errorf("current = %q, want the first feed question", s.current.Text)
	}
	if s.total != 3 {
		t.Errorf("total = %d, want 3", s.total)
	}
}

func TestScreen_NumberKeyAnswersAndAdvances(t *testing.T) {
	s := testScreen(bank.Political)
	begin(t, s)

	s.Update(keyPress('1'))

	if s.index != 1 {
		t.Errorf("index = %d, want 1 after answering", s.index)
	}
	if s.progress == 0 {
		t.Error("expected progress to advance")
	}
}

func TestScreen_CompletionShowsResult(t *testing.T) {
	s := testScreen(bank.Political)
	begin(t, s)

	for i := 0; i < 3; i++ {
		s.Update(keyPress('2'))
	}

	if s.result == nil {
		t.Fatal("expected a result after answering all questions")
	}
	if s.result.Political == nil || s.result.Political.Label == "" {
		t.Error("expected a labeled political result")
	}
	if s.HandlesEsc() {
		t.Error("expected esc to pop normally once the result is shown")
	}

	view := s.View(80, 24)
	if !strings.Contains(view, s.result.Political.Label) {
		t.Error("expected result view to show the label")
	}
}

func TestScreen_QuitConfirm(t *testing.T) {
	s := testScreen(bank.Political)
	begin(t, s)

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation after esc")
	}

	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Error("expected N to dismiss the confirmation")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a pop command after confirming")
	}
	if s.result != nil {
		t.Error("leaving must not produce a result")
	}
}

func TestScreen_CognitiveTimerExpiryCompletes(t *testing.T) {
	s := testScreen(bank.Cognitive)
	begin(t, s)

	if s.remaining != 5 {
		t.Fatalf("remaining = %d, want 5 at start", s.remaining)
	}

	// Answer one question, then let the timer run out.
	s.Update(keyPress('1'))
	for i := 0; i < 5; i++ {
		s.Update(timerTickMsg{gen: s.tickGen})
	}

	if s.result == nil {
		t.Fatal("expected expiry to complete the session")
	}
	if s.result.Cognitive == nil {
		t.Fatal("expected a cognitive result")
	}
	if s.result.Cognitive.Accuracy > 0.4 {
		t.Errorf("accuracy = %.2f, unanswered questions must count against it", s.result.Cognitive.Accuracy)
	}
}

func TestScreen_StatusShowsCountdown(t *testing.T) {
	s := testScreen(bank.Cognitive)
	begin(t, s)

	if got := s.Status(); got != "⏱ 0:05" {
		t.Errorf("Status = %q, want the countdown", got)
	}

	p := testScreen(bank.Political)
	begin(t, p)
	if got := p.Status(); got != "" {
		t.Errorf("Status = %q, want empty for the untimed survey", got)
	}
}

func TestScreen_RetakeDropsStaleTick(t *testing.T) {
	s := testScreen(bank.Cognitive)
	begin(t, s)
	staleGen := s.tickGen

	// Complete the session while a tick command is still in flight.
	for i := 0; i < 3; i++ {
		s.Update(keyPress('1'))
	}
	if s.result == nil {
		t.Fatal("expected a result after answering all questions")
	}

	s.Update(keyPress('r'))
	if s.result != nil {
		t.Fatal("expected retake to clear the result")
	}
	if s.remaining != 5 {
		t.Fatalf("remaining = %d, want 5 after retake", s.remaining)
	}

	// The old loop's tick arrives after the retake. It must be dropped,
	// not re-armed, or the countdown runs at double speed.
	_, cmd := s.Update(timerTickMsg{gen: staleGen})
	if cmd != nil {
		t.Error("stale tick must not continue its loop")
	}
	if s.remaining != 5 {
		t.Errorf("remaining = %d after stale tick, want 5", s.remaining)
	}

	_, cmd = s.Update(timerTickMsg{gen: s.tickGen})
	if cmd == nil {
		t.Error("current tick must continue its loop")
	}
	if s.remaining != 4 {
		t.Errorf("countdown lost %d seconds in one wall second, want 1", 5-s.remaining)
	}
}

func TestScreen_RetakeStartsFresh(t *testing.T) {
	s := testScreen(bank.Political)
	begin(t, s)

	for i := 0; i < 3; i++ {
		s.Update(keyPress('1'))
	}
	if s.result == nil {
		t.Fatal("expected a result")
	}

	s.Update(keyPress('r'))
	if s.result != nil {
		t.Error("expected retake to clear the result")
	}
	if s.current == nil || s.index != 0 {
		t.Error("expected retake to present the first question again")
	}
}
