package events

import "time"

// AuthEventType represents authentication lifecycle event types.
type AuthEventType string

// Auth event type constants.
const (
	AuthEventLoggedIn  AuthEventType = "logged_in"
	AuthEventLoggedOut AuthEventType = "logged_out"
)

// AuthEvent announces a change in the authenticated user.
type AuthEvent struct {
	Username  string
	Type      AuthEventType
	Timestamp time.Time
}

// NewLoggedInEvent creates a logged in event.
func NewLoggedInEvent(username string) AuthEvent {
	return AuthEvent{
		Username:  username,
		Type:      AuthEventLoggedIn,
		Timestamp: time.Now(),
	}
}

// NewLoggedOutEvent creates a logged out event.
func NewLoggedOutEvent() AuthEvent {
	return AuthEvent{
		Type:      AuthEventLoggedOut,
		Timestamp: time.Now(),
	}
}
