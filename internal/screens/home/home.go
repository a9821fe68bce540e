package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iqorum/internal/bank"
	"github.com/abhisek/iqorum/internal/insight"
	"github.com/abhisek/iqorum/internal/router"
	"github.com/abhisek/iqorum/internal/screen"
	"github.com/abhisek/iqorum/internal/screens/assessment"
	"github.com/abhisek/iqorum/internal/screens/faq"
	"github.com/abhisek/iqorum/internal/screens/results"
	"github.com/abhisek/iqorum/internal/session"
	"github.com/abhisek/iqorum/internal/store"
	"github.com/abhisek/iqorum/internal/ui/components"
	"github.com/abhisek/iqorum/internal/ui/theme"
)

// Deps carries the dependencies the home screen hands to sub-screens.
type Deps struct {
	Engine       *session.Controller
	EngineEvents *session.Dispatcher
	Profiles     store.ProfileRepo
	Attempts     store.AttemptRepo
	Feedback     store.FeedbackRepo
	Insight      *insight.Service
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu    components.Menu
	tagline string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	// Summarize stored results for the tagline under the title.
	tagline := "Find out where you stand."
	if deps.Profiles != nil {
		if profile, err := deps.Profiles.Load(context.Background()); err == nil && !profile.Empty() {
			var parts []string
			if profile.Political != nil {
				parts = append(parts, profile.Political.Label)
			}
			if profile.Cognitive != nil {
				parts = append(parts, fmt.Sprintf("IQ %d", profile.Cognitive.Score))
			}
			tagline = "Last results: " + strings.Join(parts, "  ·  ")
		}
	}

	items := []components.MenuItem{
		{Label: "POLITICAL COMPASS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: assessment.New(deps.Engine, deps.EngineEvents, bank.Political),
				}
			}
		}},
		{Label: "IQ TEST", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: assessment.New(deps.Engine, deps.EngineEvents, bank.Cognitive),
				}
			}
		}},
		{Label: "MY RESULTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: results.New(deps.Profiles, deps.Attempts, deps.Insight),
				}
			}
		}},
		{Label: "FAQ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: faq.New(deps.Feedback)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		tagline: tagline,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("I Q O R U M")
	subtitle := theme.Subtitle.Width(width).Render("Political compass · IQ test · All in your terminal")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(h.tagline))

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().Height(height).Render("\n" + content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
