package bridge

import (
	"context"
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/ovoronin/bizcli/internal/debug"
	"github.com/ovoronin/bizcli/internal/pubsub"
)

// Sender is the subset of tea.Program the bridge needs. Satisfied by
// *tea.Program; tests substitute a recorder.
type Sender interface {
	Send(msg tea.Msg)
}

// TUIBridge subscribes to all Hub brokers and forwards events to the
// Bubble Tea program as messages. This is how sibling views learn about
// sessions and attachments changed elsewhere in the process.
type TUIBridge struct {
	hub     *pubsub.Hub
	program Sender

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTUIBridge creates a new TUI bridge.
func NewTUIBridge(hub *pubsub.Hub, program Sender) *TUIBridge {
	return &TUIBridge{
		hub:     hub,
		program: program,
	}
}

// Start begins forwarding events to the TUI.
// Call Stop() to gracefully shut down.
func (b *TUIBridge) Start(ctx context.Context) {
	b.ctx, b.cancel = context.WithCancel(ctx)

	b.wg.Add(3)
	go b.subscribeSession()
	go b.subscribeFile()
	go b.subscribeAuth()

	debug.Event("bridge", "start", "TUI bridge started")
}

// Stop gracefully shuts down the bridge.
func (b *TUIBridge) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
	b.wg.Wait()
	debug.Event("bridge", "stop", "TUI bridge stopped")
}

func (b *TUIBridge) subscribeSession() {
	defer b.wg.Done()

	events := b.hub.Session.Subscribe(b.ctx)
	for {
		select {
		case <-b.ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			b.program.Send(SessionEventMsg{Event: event})
		}
	}
}

func (b *TUIBridge) subscribeFile() {
	defer b.wg.Done()

	events := b.hub.File.Subscribe(b.ctx)
	for {
		select {
		case <-b.ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			b.program.Send(FileEventMsg{Event: event})
		}
	}
}

func (b *TUIBridge) subscribeAuth() {
	defer b.wg.Done()

	events := b.hub.Auth.Subscribe(b.ctx)
	for {
		select {
		case <-b.ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			b.program.Send(AuthEventMsg{Event: event})
		}
	}
}
