package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iqorum/internal/ui/theme"
)

// Choices is an answer option selector. It only records which option
// is highlighted; submission is handled by the owning screen.
type Choices struct {
	Options  []string
	Selected int
}

// NewChoices creates a selector over the given options.
func NewChoices(options []string) Choices {
	return Choices{Options: options}
}

// Init returns nil.
func (c Choices) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Number keys jump directly to an
// option and report it as a direct pick.
func (c Choices) Update(msg tea.Msg) (Choices, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		if idx < len(c.Options) {
			c.Selected = idx
			return c, true
		}
	}

	return c, false
}

// Value returns the currently highlighted option label.
func (c Choices) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the option list.
func (c Choices) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if i == c.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
