package testutil

import (
	"context"
	"sync"

	"github.com/thenoetrevino/swatch/internal/events"
)

// MockEventPublisher records sent events instead of talking to a daemon.
type MockEventPublisher struct {
	mu      sync.Mutex
	sent    []events.Event
	SendErr error
	listen  chan events.Event
	closed  bool
}

// NewMockEventPublisher returns a publisher whose Listen channel can be fed with Push
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{listen: make(chan events.Event, 16)}
}

var _ events.EventPublisher = (*MockEventPublisher)(nil)

func (m *MockEventPublisher) Connect(ctx context.Context) error {
	return nil
}

func (m *MockEventPublisher) SendEvent(event events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendErr != nil {
		return m.SendErr
	}
	m.sent = append(m.sent, event)
	return nil
}

func (m *MockEventPublisher) Listen(ctx context.Context) (<-chan events.Event, error) {
	return m.listen, nil
}

// Push delivers an event to Listen consumers as if the daemon had sent it
func (m *MockEventPublisher) Push(event events.Event) {
	m.listen <- event
}

// Sent returns a copy of every event passed to SendEvent
func (m *MockEventPublisher) Sent() []events.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]events.Event, len(m.sent))
	copy(out, m.sent)
	return out
}

func (m *MockEventPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.listen)
	}
	return nil
}

// Closed reports whether Close has been called
func (m *MockEventPublisher) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
