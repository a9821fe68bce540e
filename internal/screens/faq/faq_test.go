package faq

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

type fakeFeedbackRepo struct {
	messages []string
}

func (f *fakeFeedbackRepo) AppendFeedback(_ context.Context, message string) error {
	f.messages = append(f.messages, message)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestFAQ_ExpandEntry(t *testing.T) {
	s := New(&fakeFeedbackRepo{})

	view := s.View(80, 24)
	if strings.Contains(view, entries[0].Answer[:20]) {
		t.Fatal("answers should start collapsed")
	}

	s.Update(specialKey(tea.KeyEnter))
	view = s.View(80, 24)
	if !strings.Contains(view, "economic") {
		t.Error("expected the first answer to be visible after enter")
	}

	s.Update(specialKey(tea.KeyEnter))
	if s.expanded[0] {
		t.Error("expected enter to collapse the entry again")
	}
}

func TestFAQ_Navigation(t *testing.T) {
	s := New(&fakeFeedbackRepo{})

	s.Update(keyPress('j'))
	s.Update(keyPress('j'))
	if s.selected != 2 {
		t.Errorf("selected = %d, want 2", s.selected)
	}

	s.Update(keyPress('k'))
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
}

func TestFAQ_SubmitFeedback(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	s := New(repo)

	s.Update(keyPress('f'))
	if !s.writing {
		t.Fatal("expected F to open the feedback form")
	}
	if !s.HandlesEsc() {
		t.Error("expected esc to stay local while writing")
	}

	s.input.Model.SetValue("more question variety please")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a save command")
	}

	msg := cmd()
	saved, ok := msg.(feedbackSavedMsg)
	if !ok {
		t.Fatalf("got %T, want feedbackSavedMsg", msg)
	}
	if saved.Err != nil {
		t.Fatalf("save failed: %v", saved.Err)
	}
	if len(repo.messages) != 1 || repo.messages[0] != "more question variety please" {
		t.Errorf("stored messages = %v", repo.messages)
	}

	s.Update(saved)
	if !strings.Contains(s.View(80, 24), "Thanks") {
		t.Error("expected a confirmation note after saving")
	}
}

func TestFAQ_EmptyFeedbackNotSent(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	s := New(repo)

	s.Update(keyPress('f'))
	s.input.Model.SetValue("   ")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected blank feedback to be ignored")
	}
	if len(repo.messages) != 0 {
		t.Errorf("stored messages = %v, want none", repo.messages)
	}
}

func TestFAQ_CancelFeedback(t *testing.T) {
	s := New(&fakeFeedbackRepo{})

	s.Update(keyPress('f'))
	s.Update(specialKey(tea.KeyEscape))
	if s.writing {
		t.Error("expected esc to close the form")
	}
	if s.HandlesEsc() {
		t.Error("expected esc to pop normally once the form is closed")
	}
}
