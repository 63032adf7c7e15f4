package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swatch/internal/tui/state"
	"github.com/thenoetrevino/swatch/internal/tui/theme"
)

const icon = "🔔"

// Render renders a toast as a compact single-line banner
func Render(message string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.InfoFg)).
		Background(lipgloss.Color(theme.InfoBg)).
		Bold(true).
		Padding(0, 1).
		Render(icon + " " + message)
}

// RenderFromState renders the current toast right-aligned in width,
// or an empty line when nothing is showing.
func RenderFromState(s *state.NotificationState, width int) string {
	n, ok := s.Current()
	if !ok {
		return ""
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, Render(n.Message))
}
