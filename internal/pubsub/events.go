// Package pubsub provides the in-process signal bus used for
// cross-component invalidation between sibling views.
package pubsub

import (
	"context"
	"time"
)

// EventType classifies what happened to the payload's subject.
type EventType string

// Standard event types.
const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// Event is a typed signal with metadata. Signals are fire-and-forget: there
// is no backlog, and an event published with no subscribers is lost.
// Subscribers re-derive truth from the server on (re)mount, so that is fine.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Publisher is the interface for publishing events.
type Publisher[T any] interface {
	Publish(EventType, T)
}

// Subscriber is the interface for subscribing to events.
type Subscriber[T any] interface {
	Subscribe(context.Context) <-chan Event[T]
}
