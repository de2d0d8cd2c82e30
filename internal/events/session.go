// Package events defines the typed payloads carried on the signal bus.
package events

import "time"

// SessionEventType represents session-specific event types.
type SessionEventType string

// Session event type constants.
const (
	SessionEventCreated  SessionEventType = "created"
	SessionEventDeleted  SessionEventType = "deleted"
	SessionEventSwitched SessionEventType = "switched"
)

// SessionEvent announces a change to the set of chat sessions. Subscribers
// re-fetch their own state from the server; the payload only identifies the
// session so views can filter.
type SessionEvent struct {
	SessionID string
	Title     string
	Type      SessionEventType
	Timestamp time.Time
}

// NewSessionCreatedEvent creates a session created event. Emitted when a
// send with no active session comes back with a freshly minted chat id.
func NewSessionCreatedEvent(id, title string) SessionEvent {
	return SessionEvent{
		SessionID: id,
		Title:     title,
		Type:      SessionEventCreated,
		Timestamp: time.Now(),
	}
}

// NewSessionDeletedEvent creates a session deleted event.
func NewSessionDeletedEvent(id string) SessionEvent {
	return SessionEvent{
		SessionID: id,
		Type:      SessionEventDeleted,
		Timestamp: time.Now(),
	}
}

// NewSessionSwitchedEvent creates a session switched event.
func NewSessionSwitchedEvent(id string) SessionEvent {
	return SessionEvent{
		SessionID: id,
		Type:      SessionEventSwitched,
		Timestamp: time.Now(),
	}
}
