package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swatch/internal/config"
	"github.com/thenoetrevino/swatch/internal/tui/theme"
)

// ShortHelp is the one-line key summary shown in the status bar
func ShortHelp(km config.KeyMappings) string {
	return strings.Join([]string{
		km.AddColor + " add",
		km.SyncColors + " sync",
		km.ShowHelp + " help",
		km.Quit + " quit",
	}, " · ")
}

// RenderHelp renders the full key map in a bordered box
func RenderHelp(km config.KeyMappings) string {
	rows := [][2]string{
		{km.AddColor, "add a random color"},
		{km.SyncColors, "sync to Firestore"},
		{km.Refresh, "reload from the database"},
		{km.PrevCard + "/" + km.NextCard, "previous / next card"},
		{km.UpRow + "/" + km.DownRow, "row up / down"},
		{km.ShowHelp, "toggle this help"},
		{km.Quit, "quit"},
	}

	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent)).Width(6)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title)).Render("Keys"), "")
	for _, r := range rows {
		lines = append(lines, keyStyle.Render(r[0])+descStyle.Render(r[1]))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
