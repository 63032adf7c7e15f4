package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/swatch/internal/events"
)

func (m Model) baseContext() context.Context {
	if m.Ctx == nil {
		return context.Background()
	}
	return m.Ctx
}

// fetchColorsCmd reloads every record from the database
func (m Model) fetchColorsCmd(afterSync bool) tea.Cmd {
	ctx, svc := m.baseContext(), m.Service
	return func() tea.Msg {
		colors, err := svc.FetchAll(ctx)
		return ColorsLoadedMsg{Colors: colors, Err: err, AfterSync: afterSync}
	}
}

// addColorCmd generates and stores one color
func (m Model) addColorCmd() tea.Cmd {
	ctx, svc := m.baseContext(), m.Service
	return func() tea.Msg {
		color, err := svc.AddColor(ctx)
		return ColorAddedMsg{Color: color, Err: err}
	}
}

// syncColorsCmd writes the sync placeholder to the remote store
func (m Model) syncColorsCmd() tea.Cmd {
	ctx, svc := m.baseContext(), m.Service
	return func() tea.Msg {
		return SyncFinishedMsg{Err: svc.SyncColors(ctx)}
	}
}

// showToast displays message and schedules its removal
func (m Model) showToast(message string) tea.Cmd {
	seq := m.Toasts.Show(message)
	return tea.Tick(m.Config.ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// SubscribeToEvents returns a command that waits for the next daemon event.
// Returns nil if eventChan is nil.
func SubscribeToEvents(ctx context.Context, eventChan <-chan events.Event) tea.Cmd {
	if eventChan == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return func() tea.Msg {
		select {
		case event, ok := <-eventChan:
			if !ok {
				return EventStreamClosedMsg{}
			}
			return RefreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}
