package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/iqorum/internal/bank"
	"github.com/abhisek/iqorum/internal/scoring"
	"github.com/abhisek/iqorum/internal/ui/components"
	"github.com/abhisek/iqorum/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.confirmQuit {
		return s.renderQuitConfirm(width)
	}
	if s.result != nil {
		return s.renderResult(width)
	}
	if s.current == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing questions...")
	}
	return s.renderQuestion(width)
}

func (s *Screen) renderQuestion(width int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", s.index+1, s.total))

	infoRight := ""
	if s.kind == bank.Cognitive {
		style := theme.TimerCalm
		if s.remaining <= 60 {
			style = theme.TimerUrgent
		}
		infoRight = style.Render(fmt.Sprintf("%d:%02d remaining", s.remaining/60, s.remaining%60))
	}

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", s.progress, false, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(s.current.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Select with number keys or arrows + Enter"))

	return b.String()
}

func (s *Screen) renderResult(width int) string {
	switch {
	case s.result.Political != nil:
		return renderPoliticalResult(width, s.result.Political)
	case s.result.Cognitive != nil:
		return renderCognitiveResult(width, s.result.Cognitive)
	}
	return ""
}

func renderPoliticalResult(width int, r *scoring.PoliticalResult) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(r.Label))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(r.Description))
	b.WriteString("\n\n")

	barWidth := min(width-20, 50)
	econ := components.NewProgressBar("Economic (left → right)  ", r.EconomicAxis/100, false, barWidth)
	soc := components.NewProgressBar("Social (lib → auth)      ", r.SocialAxis/100, false, barWidth)

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		econ.View()+fmt.Sprintf("  %.0f", r.EconomicAxis)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		soc.View()+fmt.Sprintf("  %.0f", r.SocialAxis)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to finish, R to retake"))

	return b.String()
}

func renderCognitiveResult(width int, r *scoring.CognitiveResult) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Score: %d", r.Score)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(r.Label))
	b.WriteString("\n\n")

	detail := fmt.Sprintf("Accuracy %.0f%%   Avg response %.1fs",
		r.Accuracy*100, r.AverageResponseSeconds)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(detail))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to finish, R to retake"))

	return b.String()
}

func (s *Screen) renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this assessment?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your answers so far will be discarded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\nSomething went wrong: %s\n\nPress any key to go back.", msg))
}
