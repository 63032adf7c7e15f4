package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swatch/internal/tui/components"
	"github.com/thenoetrevino/swatch/internal/tui/notifications"
	"github.com/thenoetrevino/swatch/internal/tui/theme"
)

// chrome is the number of lines used by the title bar, toast line and status bar
const chrome = 4

// View renders the current state of the application
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.Width == 0 {
		view.Content = "Loading..."
		return view
	}

	body := m.renderBody()
	if m.ShowHelp {
		body = lipgloss.Place(m.Width, lipgloss.Height(body), lipgloss.Center, lipgloss.Center,
			components.RenderHelp(m.Config.KeyMappings))
	}

	view.Content = lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleBar(),
		"",
		body,
		notifications.RenderFromState(m.Toasts, m.Width),
		components.RenderStatusBar(components.StatusBarInfo{
			Total:      len(m.Colors),
			Unsynced:   m.Service.UnsyncedCount(),
			Connection: m.Connection.Indicator(),
			Hint:       components.ShortHelp(m.Config.KeyMappings),
		}, m.Width),
	)
	return view
}

func (m Model) renderTitleBar() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title)).
		Render("swatch")

	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	var syncState string
	switch {
	case m.Syncing:
		syncState = m.Spinner.View() + " syncing"
	case !m.SyncEnabled:
		syncState = subtle.Render("sync off")
	default:
		syncState = subtle.Render(m.Config.KeyMappings.SyncColors + " to sync")
	}

	gap := m.Width - lipgloss.Width(title) - lipgloss.Width(syncState) - 2
	if gap < 1 {
		gap = 1
	}
	return " " + title + lipgloss.NewStyle().Width(gap).Render("") + syncState
}

func (m Model) renderBody() string {
	height := m.Height - chrome
	if len(m.Colors) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Render("No colors yet. Press " + m.Config.KeyMappings.AddColor + " to add one.")
		return lipgloss.Place(m.Width, max(height, 1), lipgloss.Center, lipgloss.Center, empty)
	}

	maxRows := height / components.CardOuterRows
	if maxRows < 1 {
		maxRows = 1
	}
	start, end := m.Grid.VisibleRows(len(m.Colors), maxRows)
	grid := components.RenderGrid(m.Colors, m.Grid.Selected(), m.Grid.Columns(), start, end)

	return lipgloss.NewStyle().Height(max(height, 1)).PaddingLeft(1).Render(grid)
}
