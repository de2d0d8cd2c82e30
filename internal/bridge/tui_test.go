package bridge

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ovoronin/bizcli/internal/events"
	"github.com/ovoronin/bizcli/internal/pubsub"
)

// mockProgram captures messages sent via Send().
type mockProgram struct {
	mu       sync.Mutex
	messages []tea.Msg
}

func newMockProgram() *mockProgram {
	return &mockProgram{messages: make([]tea.Msg, 0)}
}

func (m *mockProgram) Send(msg tea.Msg) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *mockProgram) Messages() []tea.Msg {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]tea.Msg, len(m.messages))
	copy(result, m.messages)
	return result
}

func waitForMessages(t *testing.T, program *mockProgram, want int) []tea.Msg {
	t.Helper()
	deadline := time.After(time.Second)
	for {
		msgs := program.Messages()
		if len(msgs) >= want {
			return msgs
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for %d messages, have %d", want, len(msgs))
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestBridgeForwardsSessionEvents(t *testing.T) {
	hub := pubsub.NewHub()
	defer hub.Shutdown()

	program := newMockProgram()
	bridge := NewTUIBridge(hub, program)
	bridge.Start(context.Background())
	defer bridge.Stop()

	// Give the subscriber goroutines a moment to attach.
	time.Sleep(10 * time.Millisecond)

	hub.Session.Publish(pubsub.EventCreated, events.NewSessionCreatedEvent("c1", "Финансы"))

	msgs := waitForMessages(t, program, 1)
	msg, ok := msgs[0].(SessionEventMsg)
	if !ok {
		t.Fatalf("expected SessionEventMsg, got %T", msgs[0])
	}
	if msg.Event.Payload.SessionID != "c1" || msg.Event.Payload.Type != events.SessionEventCreated {
		t.Errorf("unexpected payload: %+v", msg.Event.Payload)
	}
}

func TestBridgeForwardsFileAndAuthEvents(t *testing.T) {
	hub := pubsub.NewHub()
	defer hub.Shutdown()

	program := newMockProgram()
	bridge := NewTUIBridge(hub, program)
	bridge.Start(context.Background())
	defer bridge.Stop()

	time.Sleep(10 * time.Millisecond)

	hub.File.Publish(pubsub.EventCreated, events.NewFileUploadedEvent("report.pdf"))
	hub.Auth.Publish(pubsub.EventCreated, events.NewLoggedInEvent("ivan"))

	msgs := waitForMessages(t, program, 2)
	var gotFile, gotAuth bool
	for _, m := range msgs {
		switch typed := m.(type) {
		case FileEventMsg:
			gotFile = true
			if typed.Event.Payload.Filename != "report.pdf" {
				t.Errorf("unexpected file payload: %+v", typed.Event.Payload)
			}
		case AuthEventMsg:
			gotAuth = true
			if typed.Event.Payload.Username != "ivan" {
				t.Errorf("unexpected auth payload: %+v", typed.Event.Payload)
			}
		}
	}
	if !gotFile || !gotAuth {
		t.Errorf("expected both file and auth messages, got %v", msgs)
	}
}

func TestBridgeStopHaltsForwarding(t *testing.T) {
	hub := pubsub.NewHub()
	defer hub.Shutdown()

	program := newMockProgram()
	bridge := NewTUIBridge(hub, program)
	bridge.Start(context.Background())

	time.Sleep(10 * time.Millisecond)
	bridge.Stop()

	hub.Session.Publish(pubsub.EventCreated, events.NewSessionCreatedEvent("late", ""))
	time.Sleep(20 * time.Millisecond)

	if got := len(program.Messages()); got != 0 {
		t.Errorf("no messages expected after Stop, got %d", got)
	}
}
