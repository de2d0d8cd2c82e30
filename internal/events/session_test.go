package events

import (
	"testing"
	"time"
)

func TestSessionEventTypes(t *testing.T) {
	types := []SessionEventType{
		SessionEventCreated,
		SessionEventDeleted,
		SessionEventSwitched,
	}

	seen := make(map[SessionEventType]bool)
	for _, typ := range types {
		if seen[typ] {
			t.Errorf("duplicate event type: %s", typ)
		}
		seen[typ] = true

		if string(typ) == "" {
			t.Error("event type should have non-empty string value")
		}
	}
}

func TestNewSessionCreatedEvent(t *testing.T) {
	before := time.Now()
	event := NewSessionCreatedEvent("c1", "Новый чат")
	after := time.Now()

	if event.SessionID != "c1" {
		t.Errorf("expected SessionID 'c1', got %q", event.SessionID)
	}
	if event.Title != "Новый чат" {
		t.Errorf("expected title to carry through, got %q", event.Title)
	}
	if event.Type != SessionEventCreated {
		t.Errorf("expected created type, got %q", event.Type)
	}
	if event.Timestamp.Before(before) || event.Timestamp.After(after) {
		t.Error("timestamp should be within test bounds")
	}
}

func TestNewSessionDeletedEvent(t *testing.T) {
	event := NewSessionDeletedEvent("c1")
	if event.SessionID != "c1" || event.Type != SessionEventDeleted {
		t.Errorf("unexpected event: %+v", event)
	}
}

func TestNewSessionSwitchedEvent(t *testing.T) {
	event := NewSessionSwitchedEvent("c2")
	if event.SessionID != "c2" || event.Type != SessionEventSwitched {
		t.Errorf("unexpected event: %+v", event)
	}
}
