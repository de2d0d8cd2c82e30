// Package bridge provides the connection between the pub/sub system and Bubble Tea.
package bridge

import (
	"github.com/ovoronin/bizcli/internal/events"
	"github.com/ovoronin/bizcli/internal/pubsub"
)

// SessionEventMsg wraps a session event for the TUI.
type SessionEventMsg struct {
	Event pubsub.Event[events.SessionEvent]
}

// FileEventMsg wraps a file event for the TUI.
type FileEventMsg struct {
	Event pubsub.Event[events.FileEvent]
}

// AuthEventMsg wraps an auth event for the TUI.
type AuthEventMsg struct {
	Event pubsub.Event[events.AuthEvent]
}
