package pubsub

import (
	"sync"

	"github.com/ovoronin/bizcli/internal/events"
)

// Hub owns the domain brokers. The session broker carries the
// "session created" signal from the transcript engine to the chat list; the
// file broker carries "attachments changed" between the upload form and the
// file listing.
type Hub struct {
	Session *Broker[events.SessionEvent]
	File    *Broker[events.FileEvent]
	Auth    *Broker[events.AuthEvent]

	done chan struct{}
}

// NewHub creates a Hub with all domain brokers initialized.
func NewHub() *Hub {
	return &Hub{
		Session: NewBroker[events.SessionEvent]("session"),
		File:    NewBroker[events.FileEvent]("file"),
		Auth:    NewBroker[events.AuthEvent]("auth"),
		done:    make(chan struct{}),
	}
}

// Shutdown gracefully shuts down all brokers.
func (h *Hub) Shutdown() {
	select {
	case <-h.done:
		return
	default:
		close(h.done)
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); h.Session.Shutdown() }()
	go func() { defer wg.Done(); h.File.Shutdown() }()
	go func() { defer wg.Done(); h.Auth.Shutdown() }()
	wg.Wait()
}

// Done returns a channel closed when the hub shuts down.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}
