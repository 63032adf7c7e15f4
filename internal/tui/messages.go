package tui

import (
	"github.com/thenoetrevino/swatch/internal/events"
	"github.com/thenoetrevino/swatch/internal/models"
)

// ColorsLoadedMsg carries a full reload of the colors table.
// AfterSync marks the reload that was started together with a sync.
type ColorsLoadedMsg struct {
	Colors    []*models.ColorRecord
	Err       error
	AfterSync bool
}

// ColorAddedMsg reports the result of an add
type ColorAddedMsg struct {
	Color *models.ColorRecord
	Err   error
}

// SyncFinishedMsg reports the result of the remote write
type SyncFinishedMsg struct {
	Err error
}

// RefreshMsg is sent when another instance changed the colors table
type RefreshMsg struct {
	Event events.Event
}

// EventStreamClosedMsg is sent when the daemon connection is gone for good
type EventStreamClosedMsg struct{}

// toastExpiredMsg hides the toast with the same sequence number
type toastExpiredMsg struct {
	seq int
}
