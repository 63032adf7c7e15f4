package events

import "context"

// Publisher announces local color changes to the daemon
type Publisher interface {
	SendEvent(event Event) error
}

// Subscriber receives colors_changed events written by other instances.
// The channel closes when the connection is gone for good.
type Subscriber interface {
	Listen(ctx context.Context) (<-chan Event, error)
}

// EventPublisher is a full daemon connection as held by the app: the color
// service publishes through it and the TUI subscribes to it.
type EventPublisher interface {
	Publisher
	Subscriber
	Connect(ctx context.Context) error
	Close() error
}

var _ EventPublisher = (*Client)(nil)
