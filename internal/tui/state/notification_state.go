package state

// Notification is a transient message shown above the status bar.
type Notification struct {
	Message string
	seq     int
}

// NotificationState holds the toast currently on screen.
// Each Show gets a sequence number so a stale expiry does not hide a newer toast.
type NotificationState struct {
	current *Notification
	seq     int
}

// NewNotificationState creates an empty NotificationState
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Show replaces the current toast and returns its sequence number
func (s *NotificationState) Show(message string) int {
	s.seq++
	s.current = &Notification{Message: message, seq: s.seq}
	return s.seq
}

// Expire hides the toast if it is still the one identified by seq
func (s *NotificationState) Expire(seq int) bool {
	if s.current == nil || s.current.seq != seq {
		return false
	}
	s.current = nil
	return true
}

// Current returns the toast on screen, if any
func (s *NotificationState) Current() (Notification, bool) {
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}
