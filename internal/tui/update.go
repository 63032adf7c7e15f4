package tui

import (
	"errors"
	"log/slog"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	colorservice "github.com/thenoetrevino/swatch/internal/services/color"
	"github.com/thenoetrevino/swatch/internal/tui/components"
	"github.com/thenoetrevino/swatch/internal/tui/state"
)

// Toast messages
const (
	ToastColorAdded   = "New color added"
	ToastColorsSynced = "Colors synced"
)

// Update handles all messages and updates the model.
// Storage and remote failures are logged and otherwise ignored.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Grid.Resize(msg.Width, components.CardOuterWidth)
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case ColorsLoadedMsg:
		var cmd tea.Cmd
		if msg.AfterSync {
			m.Syncing = false
		}
		if msg.Err != nil {
			slog.Error("failed to load colors", "error", msg.Err)
			return m, nil
		}
		m.Colors = msg.Colors
		m.Grid.Clamp(len(m.Colors))
		if m.selectNewest {
			m.Grid.Last(len(m.Colors))
			m.selectNewest = false
		}
		if msg.AfterSync {
			cmd = m.showToast(ToastColorsSynced)
		}
		return m, cmd

	case ColorAddedMsg:
		if msg.Err != nil {
			slog.Error("failed to add color", "error", msg.Err)
			return m, nil
		}
		slog.Debug("color added", "id", msg.Color.ID, "code", msg.Color.Code)
		m.selectNewest = true
		return m, tea.Batch(
			m.showToast(ToastColorAdded),
			m.fetchColorsCmd(false),
		)

	case SyncFinishedMsg:
		switch {
		case msg.Err == nil:
		case errors.Is(msg.Err, colorservice.ErrSyncNotConfigured):
			slog.Debug("sync skipped", "reason", msg.Err)
		default:
			slog.Warn("sync failed", "error", msg.Err)
		}
		return m, nil

	case toastExpiredMsg:
		m.Toasts.Expire(msg.seq)
		return m, nil

	case spinner.TickMsg:
		if !m.Syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case RefreshMsg:
		slog.Debug("colors changed elsewhere", "color_id", msg.Event.ColorID, "seq", msg.Event.SequenceID)
		return m, tea.Batch(
			m.fetchColorsCmd(false),
			SubscribeToEvents(m.Ctx, m.EventChan),
		)

	case EventStreamClosedMsg:
		slog.Info("daemon connection closed, live updates disabled")
		m.EventChan = nil
		m.Connection = state.Offline
		return m, nil
	}

	return m, nil
}

// handleKey dispatches a key press to its action
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	key := msg.String()

	if key == "ctrl+c" || key == km.Quit {
		return m, tea.Quit
	}

	if m.ShowHelp {
		if key == km.ShowHelp || key == "esc" {
			m.ShowHelp = false
		}
		return m, nil
	}

	switch key {
	case km.AddColor:
		return m, m.addColorCmd()

	case km.SyncColors:
		if m.Syncing {
			return m, nil
		}
		m.Syncing = true
		// sync and reload run side by side; the spinner stops when the reload lands
		return m, tea.Batch(
			m.syncColorsCmd(),
			m.fetchColorsCmd(true),
			m.Spinner.Tick,
		)

	case km.Refresh:
		return m, m.fetchColorsCmd(false)

	case km.NextCard, "right":
		m.Grid.Next(len(m.Colors))
	case km.PrevCard, "left":
		m.Grid.Prev()
	case km.DownRow, "down":
		m.Grid.Down(len(m.Colors))
	case km.UpRow, "up":
		m.Grid.Up()

	case km.ShowHelp:
		m.ShowHelp = true
	}

	return m, nil
}
