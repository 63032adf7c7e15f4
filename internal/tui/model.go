package tui

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/swatch/internal/config"
	"github.com/thenoetrevino/swatch/internal/events"
	"github.com/thenoetrevino/swatch/internal/models"
	colorservice "github.com/thenoetrevino/swatch/internal/services/color"
	"github.com/thenoetrevino/swatch/internal/tui/state"
	"github.com/thenoetrevino/swatch/internal/tui/theme"
)

// Model represents the application state for the TUI
type Model struct {
	Ctx       context.Context
	Service   colorservice.Service
	Config    *config.Config
	EventChan <-chan events.Event

	Colors      []*models.ColorRecord
	Grid        *state.GridState
	Toasts      *state.NotificationState
	Connection  state.ConnectionStatus
	Spinner     spinner.Model
	Syncing     bool
	SyncEnabled bool
	ShowHelp    bool
	Width       int
	Height      int

	// set by a successful add, consumed by the next reload
	selectNewest bool
}

// InitialModel creates the TUI model. eventChan may be nil when no daemon is
// running; the grid is loaded by the command returned from Init.
func InitialModel(ctx context.Context, svc colorservice.Service, cfg *config.Config, eventChan <-chan events.Event, syncEnabled bool) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme.Init(cfg.ColorScheme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	connection := state.Offline
	if eventChan != nil {
		connection = state.Live
	}

	return Model{
		Ctx:         ctx,
		Service:     svc,
		Config:      cfg,
		EventChan:   eventChan,
		Colors:      []*models.ColorRecord{},
		Grid:        state.NewGridState(),
		Toasts:      state.NewNotificationState(),
		Connection:  connection,
		Spinner:     sp,
		SyncEnabled: syncEnabled,
	}
}

// Init loads the grid and starts listening for daemon events
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchColorsCmd(false),
		SubscribeToEvents(m.Ctx, m.EventChan),
	)
}

// SelectedColor returns the record under the cursor, nil on an empty grid
func (m Model) SelectedColor() *models.ColorRecord {
	i := m.Grid.Selected()
	if i < 0 || i >= len(m.Colors) {
		return nil
	}
	return m.Colors[i]
}
