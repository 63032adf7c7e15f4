package events

import "time"

// ProtocolVersion is sent with every message; the daemon warns on mismatch
const ProtocolVersion = 1

// EventType indicates what kind of change occurred
type EventType string

const (
	EventColorsChanged EventType = "colors_changed"
	EventPing          EventType = "ping"
	EventPong          EventType = "pong"
)

// Event represents a change notification for the colors table
type Event struct {
	Type       EventType
	ColorID    int       // Newest record involved, 0 when batched or unknown
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing, assigned by the daemon
}

// Message wraps events and control messages for the wire protocol
type Message struct {
	Version int    `json:",omitempty"`
	Type    string // "event", "ping", "pong"
	Event   *Event `json:",omitempty"`
}
