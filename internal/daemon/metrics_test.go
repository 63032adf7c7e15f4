package daemon

import "testing"

func TestMetricsSnapshot(t *testing.T) {
	t.Parallel()
	m := NewMetrics()

	m.IncEventsSent()
	m.IncEventsSent()
	m.IncEventsReceived()
	m.IncEventsDropped()
	m.SetConnectedClients(3)

	snap := m.GetSnapshot()
	if snap.EventsSent != 2 {
		t.Errorf("Expected 2 events sent, got %d", snap.EventsSent)
	}
	if snap.EventsReceived != 1 {
		t.Errorf("Expected 1 event received, got %d", snap.EventsReceived)
	}
	if snap.EventsDropped != 1 {
		t.Errorf("Expected 1 event dropped, got %d", snap.EventsDropped)
	}
	if snap.ConnectedClients != 3 {
		t.Errorf("Expected 3 connected clients, got %d", snap.ConnectedClients)
	}
	if snap.StartTime.IsZero() || snap.Uptime == "" {
		t.Error("Expected start time and uptime to be set")
	}
}
