package faq

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iqorum/internal/screen"
	"github.com/abhisek/iqorum/internal/store"
	"github.com/abhisek/iqorum/internal/ui/components"
	"github.com/abhisek/iqorum/internal/ui/layout"
	"github.com/abhisek/iqorum/internal/ui/theme"
)

const feedbackCharLimit = 280

type entry struct {
	Question string
	Answer   string
}

var entries = []entry{
	{
		Question: "How is the political result calculated?",
		Answer: "Each answer pulls on one of two axes: economic (left to right) and " +
			"social (libertarian to authoritarian). Your position on both axes " +
			"determines the label. Neither end of either axis is better or worse.",
	},
	{
		Question: "How is the IQ score calculated?",
		Answer: "The score starts from a ceiling and subtracts penalties for wrong " +
			"answers and slow responses. It is an informal estimate for fun, not a " +
			"clinically normed IQ measurement.",
	},
	{
		Question: "Why is the IQ test timed?",
		Answer: "Response speed is part of the score. The test ends when the ten " +
			"minutes run out; unanswered questions count as incorrect.",
	},
	{
		Question: "Can I retake an assessment?",
		Answer: "Yes, as often as you like. Each completed attempt replaces your " +
			"stored result, and past attempts stay visible under My Results.",
	},
	{
		Question: "Where is my data stored?",
		Answer: "Everything lives in a local SQLite database on your machine. " +
			"Nothing is uploaded. Results are only sent to an AI provider if you " +
			"configure one for the reflection feature.",
	},
	{
		Question: "What does the AI reflection do?",
		Answer: "With an API key configured, a language model writes a short, " +
			"neutral reflection on your combined results. Without one the app " +
			"works fully, just without that paragraph.",
	},
}

type feedbackSavedMsg struct {
	Err error
}

// FAQScreen shows answers to common questions and a feedback form.
type FAQScreen struct {
	feedback store.FeedbackRepo

	selected int
	expanded map[int]bool

	writing   bool
	input     components.TextInput
	savedNote string
}

var _ screen.Screen = (*FAQScreen)(nil)
var _ screen.KeyHintProvider = (*FAQScreen)(nil)
var _ screen.EscHandler = (*FAQScreen)(nil)

// New creates a new FAQScreen.
func New(feedback store.FeedbackRepo) *FAQScreen {
	return &FAQScreen{
		feedback: feedback,
		expanded: make(map[int]bool),
	}
}

func (s *FAQScreen) Init() tea.Cmd {
	return nil
}

func (s *FAQScreen) Title() string {
	return "FAQ"
}

// HandlesEsc keeps esc local while the feedback input is open, so it
// closes the form instead of popping the screen.
func (s *FAQScreen) HandlesEsc() bool {
	return s.writing
}

func (s *FAQScreen) KeyHints() []layout.KeyHint {
	if s.writing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Expand"},
		{Key: "F", Description: "Feedback"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FAQScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackSavedMsg:
		if msg.Err != nil {
			s.savedNote = "Could not save feedback: " + msg.Err.Error()
		} else {
			s.savedNote = "Thanks! Your feedback was saved."
		}
		return s, nil

	case tea.KeyMsg:
		if s.writing {
			return s.handleInputKey(msg)
		}
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(entries)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		case "f", "F":
			s.writing = true
			s.savedNote = ""
			s.input = components.NewTextInput("Tell us what to improve...", feedbackCharLimit)
			return s, s.input.Init()
		}
		return s, nil
	}

	if s.writing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *FAQScreen) handleInputKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.writing = false
		return s, nil
	case "enter":
		message := strings.TrimSpace(s.input.Value())
		if message == "" {
			return s, nil
		}
		s.input.Submit()
		s.writing = false
		return s, s.saveFeedback(message)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *FAQScreen) saveFeedback(message string) tea.Cmd {
	return func() tea.Msg {
		if s.feedback == nil {
			return feedbackSavedMsg{Err: fmt.Errorf("feedback storage unavailable")}
		}
		return feedbackSavedMsg{Err: s.feedback.AppendFeedback(context.Background(), message)}
	}
}

func (s *FAQScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	for i, e := range entries {
		prefix := "  "
		if i == s.selected && !s.writing {
			prefix = "> "
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected && !s.writing {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString("  " + style.Render(prefix+e.Question))
		b.WriteString("\n")

		if s.expanded[i] {
			answer := lipgloss.NewStyle().
				Width(min(width-12, 68)).
				Foreground(theme.TextDim).
				Render(e.Answer)
			b.WriteString(lipgloss.NewStyle().PaddingLeft(6).Render(answer))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")

	if s.writing {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render("Feedback"))
		b.WriteString("\n  " + s.input.View())
		b.WriteString("\n")
	} else if s.savedNote != "" {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Success).Render(s.savedNote))
		b.WriteString("\n")
	} else {
		b.WriteString("  " + theme.Hint.Render("Press F to leave feedback"))
		b.WriteString("\n")
	}

	return b.String()
}
