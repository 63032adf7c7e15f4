package events

import (
	"errors"
	"testing"
)

// mockRetryPublisher fails the first failUntil sends
type mockRetryPublisher struct {
	sendAttempts int
	failUntil    int
	lastEvent    Event
}

func (m *mockRetryPublisher) SendEvent(event Event) error {
	m.lastEvent = event
	currentAttempt := m.sendAttempts
	m.sendAttempts++

	if currentAttempt < m.failUntil {
		return errors.New("simulated send failure")
	}
	return nil
}

var _ Publisher = (*mockRetryPublisher)(nil)

func TestPublishWithRetry_Success(t *testing.T) {
	t.Parallel()
	mock := &mockRetryPublisher{}

	err := PublishWithRetry(mock, Event{Type: EventColorsChanged, ColorID: 7}, 3)
	if err != nil {
		t.Errorf("Expected success, got error: %v", err)
	}
	if mock.sendAttempts != 1 {
		t.Errorf("Expected 1 attempt, got %d", mock.sendAttempts)
	}
	if mock.lastEvent.ColorID != 7 {
		t.Errorf("Expected color ID 7, got %d", mock.lastEvent.ColorID)
	}
}

func TestPublishWithRetry_SuccessAfterRetries(t *testing.T) {
	t.Parallel()
	mock := &mockRetryPublisher{failUntil: 2}

	if err := PublishWithRetry(mock, Event{Type: EventColorsChanged}, 3); err != nil {
		t.Errorf("Expected success after retries, got error: %v", err)
	}
	if mock.sendAttempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", mock.sendAttempts)
	}
}

func TestPublishWithRetry_AllFail(t *testing.T) {
	t.Parallel()
	mock := &mockRetryPublisher{failUntil: 10}

	if err := PublishWithRetry(mock, Event{Type: EventColorsChanged}, 2); err == nil {
		t.Error("Expected error after all retries fail, got nil")
	}
	if mock.sendAttempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", mock.sendAttempts)
	}
}

func TestPublishWithRetry_NilClient(t *testing.T) {
	t.Parallel()

	if err := PublishWithRetry(nil, Event{Type: EventColorsChanged}, 3); err != nil {
		t.Errorf("Expected nil error for nil client, got %v", err)
	}
}
