package state

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelWarning represents non-fatal problems such as a failed save
	LevelWarning
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the notices shown in the status bar.
// At most one notification per level is kept; a newer one replaces it.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Set replaces the notification for level
func (s *NotificationState) Set(level NotificationLevel, message string) {
	s.ClearLevel(level)
	s.notifications = append(s.notifications, Notification{Level: level, Message: message})
}

// ClearLevel removes all notifications of a specific level.
func (s *NotificationState) ClearLevel(level NotificationLevel) {
	filtered := s.notifications[:0]
	for _, n := range s.notifications {
		if n.Level != level {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// Top returns the most severe notification
func (s *NotificationState) Top() (Notification, bool) {
	var top Notification
	found := false
	for _, n := range s.notifications {
		if !found || n.Level > top.Level {
			top = n
			found = true
		}
	}
	return top, found
}
