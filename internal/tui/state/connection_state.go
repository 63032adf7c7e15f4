package state

// ConnectionStatus represents the current connection state to the daemon
type ConnectionStatus int

const (
	// Offline means no daemon: changes from other instances are not seen
	Offline ConnectionStatus = iota
	// Live means the TUI is subscribed to daemon events
	Live
)

// String returns a human-readable string representation of the connection status
func (cs ConnectionStatus) String() string {
	switch cs {
	case Live:
		return "live"
	case Offline:
		return "offline"
	default:
		return "unknown"
	}
}

// Indicator returns the status bar glyph and label
func (cs ConnectionStatus) Indicator() string {
	if cs == Live {
		return "● " + cs.String()
	}
	return "○ " + cs.String()
}
