package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iqorum/internal/bank"
	"github.com/abhisek/iqorum/internal/insight"
	"github.com/abhisek/iqorum/internal/screen"
	"github.com/abhisek/iqorum/internal/store"
	"github.com/abhisek/iqorum/internal/ui/components"
	"github.com/abhisek/iqorum/internal/ui/layout"
	"github.com/abhisek/iqorum/internal/ui/theme"
)

const historyLimit = 5

// insightPollInterval paces Consume polling; insightPollBudget bounds
// how long the screen waits before giving up on a reflection.
const (
	insightPollInterval = 500 * time.Millisecond
	insightPollBudget   = 60
)

type loadedMsg struct {
	Profile   *store.Profile
	Political []store.Attempt
	Cognitive []store.Attempt
	Err       error
}

type insightPollMsg time.Time

// ResultsScreen shows the stored profile, attempt history, and an
// optional AI-written reflection.
type ResultsScreen struct {
	profiles store.ProfileRepo
	attempts store.AttemptRepo
	insights *insight.Service

	profile   *store.Profile
	political []store.Attempt
	cognitive []store.Attempt
	loaded    bool
	errMsg    string

	reflection *insight.Insight
	polling    bool
	pollsLeft  int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a new ResultsScreen. The insight service may be nil when
// no LLM provider is configured.
func New(profiles store.ProfileRepo, attempts store.AttemptRepo, insights *insight.Service) *ResultsScreen {
	return &ResultsScreen{
		profiles: profiles,
		attempts: attempts,
		insights: insights,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		profile, err := s.profiles.Load(ctx)
		if err != nil {
			return loadedMsg{Err: err}
		}

		political, err := s.attempts.CompletedAttempts(ctx, string(bank.Political), historyLimit)
		if err != nil {
			return loadedMsg{Err: err}
		}
		cognitive, err := s.attempts.CompletedAttempts(ctx, string(bank.Cognitive), historyLimit)
		if err != nil {
			return loadedMsg{Err: err}
		}

		return loadedMsg{Profile: profile, Political: political, Cognitive: cognitive}
	}
}

func (s *ResultsScreen) Title() string {
	return "My Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.loaded = true
			return s, nil
		}
		s.profile = msg.Profile
		s.political = msg.Political
		s.cognitive = msg.Cognitive
		s.loaded = true
		return s, s.requestInsight()

	case insightPollMsg:
		return s.pollInsight()
	}
	return s, nil
}

// requestInsight kicks off async reflection generation when a provider
// is available and there is at least one result to reflect on.
func (s *ResultsScreen) requestInsight() tea.Cmd {
	if s.insights == nil || s.profile == nil || s.profile.Empty() {
		return nil
	}

	s.insights.Request(context.Background(), insight.Input{
		Political:         s.profile.Political,
		Cognitive:         s.profile.Cognitive,
		PoliticalAttempts: len(s.political),
		CognitiveAttempts: len(s.cognitive),
	})
	s.polling = true
	s.pollsLeft = insightPollBudget
	return pollCmd()
}

func (s *ResultsScreen) pollInsight() (screen.Screen, tea.Cmd) {
	if !s.polling {
		return s, nil
	}

	if ins, ok := s.insights.Consume(); ok {
		s.reflection = ins
		s.polling = false
		return s, nil
	}

	s.pollsLeft--
	if s.pollsLeft <= 0 {
		s.polling = false
		return s, nil
	}
	return s, pollCmd()
}

func (s *ResultsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading results...")
	}
	if s.profile == nil || s.profile.Empty() {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No results yet. Take an assessment first!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.profile.Political != nil {
		b.WriteString(s.renderPolitical(width))
		b.WriteString("\n")
	}
	if s.profile.Cognitive != nil {
		b.WriteString(s.renderCognitive(width))
		b.WriteString("\n")
	}

	b.WriteString(s.renderInsight(width))

	return b.String()
}

func (s *ResultsScreen) renderPolitical(width int) string {
	r := s.profile.Political
	var b strings.Builder

	b.WriteString(sectionHeading(width, "Political Compass"))

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(r.Label)))
	b.WriteString("\n")

	barWidth := min(width-24, 44)
	econ := components.NewProgressBar("Economic ", r.EconomicAxis/100, false, barWidth)
	soc := components.NewProgressBar("Social   ", r.SocialAxis/100, false, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		econ.View()+fmt.Sprintf("  %.0f", r.EconomicAxis)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		soc.View()+fmt.Sprintf("  %.0f", r.SocialAxis)))
	b.WriteString("\n")

	b.WriteString(s.renderMeta(width, s.profile.PoliticalCompletedAt, s.political))
	return b.String()
}

func (s *ResultsScreen) renderCognitive(width int) string {
	r := s.profile.Cognitive
	var b strings.Builder

	b.WriteString(sectionHeading(width, "IQ Test"))

	line := fmt.Sprintf("Score %d — %s   (accuracy %.0f%%, avg %.1fs)",
		r.Score, r.Label, r.Accuracy*100, r.AverageResponseSeconds)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line)))
	b.WriteString("\n")

	b.WriteString(s.renderMeta(width, s.profile.CognitiveCompletedAt, s.cognitive))
	return b.String()
}

func (s *ResultsScreen) renderMeta(width int, completedAt *time.Time, attempts []store.Attempt) string {
	var parts []string
	if completedAt != nil {
		parts = append(parts, "completed "+completedAt.Local().Format("Jan 02, 2006"))
	}
	if n := len(attempts); n > 0 {
		label := "attempt"
		if n > 1 {
			label = "attempts"
		}
		parts = append(parts, fmt.Sprintf("%d recent %s", n, label))
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(parts, "  ·  "))) + "\n"
}

func (s *ResultsScreen) renderInsight(width int) string {
	if s.polling {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("Writing a reflection on your results..."))
	}
	if s.reflection == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(sectionHeading(width, "Reflection"))

	summary := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(s.reflection.Summary)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, summary))
	b.WriteString("\n")

	for _, h := range s.reflection.Highlights {
		point := lipgloss.NewStyle().
			Width(min(width-12, 66)).
			Foreground(theme.TextDim).
			Render("• " + h)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, point))
		b.WriteString("\n")
	}
	return b.String()
}

func sectionHeading(width int, title string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("─── "+title+" ───")) + "\n"
}

func pollCmd() tea.Cmd {
	return tea.Tick(insightPollInterval, func(t time.Time) tea.Msg {
		return insightPollMsg(t)
	})
}
