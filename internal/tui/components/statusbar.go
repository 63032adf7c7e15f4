package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swatch/internal/tui/theme"
)

// StatusBarInfo is everything the status bar shows
type StatusBarInfo struct {
	Total      int
	Unsynced   int
	Connection string
	Hint       string
}

// RenderStatusBar renders a full-width bar: counts on the left, hint and
// connection state on the right.
func RenderStatusBar(info StatusBarInfo, width int) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.StatusBarFg)).
		Background(lipgloss.Color(theme.StatusBarBg))

	left := fmt.Sprintf(" %d colors · %d unsynced", info.Total, info.Unsynced)
	right := info.Connection + " "
	if info.Hint != "" {
		right = info.Hint + "  " + right
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return style.Render(left + fmt.Sprintf("%*s", padding, "") + right)
}
