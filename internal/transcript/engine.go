// Package transcript holds the active conversation state: history loading,
// optimistic sends, and reconciliation against the server's echo.
package transcript

import (
	"context"
	"strings"
	"time"

	"github.com/ovoronin/bizcli/internal/api"
	"github.com/ovoronin/bizcli/internal/events"
	"github.com/ovoronin/bizcli/internal/pubsub"
)

// PlaceholderID is the reserved entry id meaning "not yet acknowledged by
// the server". At most one placeholder exists in a transcript at a time.
const PlaceholderID = "pending"

// Entry is one exchange in the transcript. Seq is a local, monotonically
// increasing sequence number that survives reconciliation, so replacing the
// placeholder with the authoritative entry keeps its position stable.
type Entry struct {
	ID        string
	ChatID    string
	Seq       int
	Message   string
	Response  string
	Category  Category
	CreatedAt time.Time
}

// IsPending reports whether the entry is the optimistic placeholder.
func (e Entry) IsPending() bool {
	return e.ID == PlaceholderID
}

// Sender is the slice of the API client the engine needs. *api.Client
// satisfies it; tests substitute a fake.
type Sender interface {
	SendMessage(ctx context.Context, req api.SendMessageRequest) (*api.ChatMessage, error)
	GetHistory(ctx context.Context, chatID string) ([]api.ChatMessage, error)
}

// Engine owns the active transcript. It is driven from the single TUI
// goroutine: state transitions are synchronous, network calls run outside
// and feed results back through ApplyHistory/ApplySendResult tagged with the
// generation captured when they started. A result whose generation no longer
// matches is stale (the user switched sessions meanwhile) and is discarded.
type Engine struct {
	client Sender
	broker *pubsub.Broker[events.SessionEvent]

	entries []Entry
	chatID  string
	gen     int
	nextSeq int
	pending bool
	errMsg  string
}

// NewEngine creates an engine. broker may be nil (tests).
func NewEngine(client Sender, broker *pubsub.Broker[events.SessionEvent]) *Engine {
	return &Engine{client: client, broker: broker}
}

// Entries returns the current transcript, oldest first.
func (e *Engine) Entries() []Entry {
	out := make([]Entry, len(e.entries))
	copy(out, e.entries)
	return out
}

// ChatID returns the active session id, or "" for a new unsaved session.
func (e *Engine) ChatID() string {
	return e.chatID
}

// HasPending reports whether a send is outstanding.
func (e *Engine) HasPending() bool {
	return e.pending
}

// Err returns the last send error message, or "".
func (e *Engine) Err() string {
	return e.errMsg
}

// Select replaces the active session. The transcript is cleared immediately;
// when id is non-empty the caller must fetch history and hand it to
// ApplyHistory with the returned generation. Re-selecting the current id is
// allowed and re-fetches (refresh, not cache).
func (e *Engine) Select(id string) (gen int, load bool) {
	e.gen++
	e.chatID = id
	e.entries = nil
	e.pending = false
	e.errMsg = ""
	return e.gen, id != ""
}

// LoadHistory fetches the transcript for the current selection. Meant to run
// off the TUI goroutine; pass the result to ApplyHistory.
func (e *Engine) LoadHistory(ctx context.Context, chatID string) ([]api.ChatMessage, error) {
	return e.client.GetHistory(ctx, chatID)
}

// ApplyHistory installs a completed history load. A load started under an
// older generation is discarded: the user has moved on and the stale
// transcript must not surface. A failed load clears the transcript rather
// than leaving stale content; the failure itself is non-fatal and only the
// caller's debug log sees it.
func (e *Engine) ApplyHistory(gen int, msgs []api.ChatMessage, err error) bool {
	if gen != e.gen {
		return false
	}
	if err != nil {
		e.entries = nil
		return true
	}

	entries := make([]Entry, 0, len(msgs))
	for _, m := range msgs {
		e.nextSeq++
		entries = append(entries, Entry{
			ID:        m.ID,
			ChatID:    m.ChatID,
			Seq:       e.nextSeq,
			Message:   m.Message,
			Response:  m.Response,
			Category:  Category(m.Category),
			CreatedAt: m.CreatedAt,
		})
	}
	e.entries = entries
	return true
}

// BeginSend validates and optimistically appends a placeholder for an
// outgoing message. It is a no-op when text trims to empty or a placeholder
// is already outstanding — sends are serialized, not queued. On success it
// returns the request to issue and the generation to hand back to
// ApplySendResult.
func (e *Engine) BeginSend(text string, category Category) (req api.SendMessageRequest, gen int, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" || e.pending {
		return api.SendMessageRequest{}, 0, false
	}

	e.errMsg = ""
	e.pending = true
	e.nextSeq++
	e.entries = append(e.entries, Entry{
		ID:        PlaceholderID,
		ChatID:    e.chatID,
		Seq:       e.nextSeq,
		Message:   text,
		Category:  category,
		CreatedAt: time.Now(),
	})

	return api.SendMessageRequest{
		Message:  text,
		Category: string(category),
		ChatID:   e.chatID,
	}, e.gen, true
}

// Send issues the outgoing request. Meant to run off the TUI goroutine;
// pass the result to ApplySendResult.
func (e *Engine) Send(ctx context.Context, req api.SendMessageRequest) (*api.ChatMessage, error) {
	return e.client.SendMessage(ctx, req)
}

// ApplySendResult reconciles a completed send. On success the placeholder is
// replaced in place by the authoritative entry; if the server minted a new
// chat for us, its id is adopted and the session-created signal fires exactly
// once. On failure the placeholder is removed and the error text surfaced.
// A result from before a session switch is discarded outright: its
// placeholder went away with the old transcript.
func (e *Engine) ApplySendResult(gen int, msg *api.ChatMessage, err error) bool {
	if gen != e.gen {
		return false
	}
	e.pending = false

	if err != nil {
		e.removePlaceholder()
		e.errMsg = err.Error()
		return true
	}

	if msg.ChatID != "" && e.chatID == "" {
		e.chatID = msg.ChatID
		if e.broker != nil {
			e.broker.Publish(pubsub.EventCreated,
				events.NewSessionCreatedEvent(msg.ChatID, ""))
		}
	}

	for i := range e.entries {
		if e.entries[i].IsPending() {
			seq := e.entries[i].Seq
			e.entries[i] = Entry{
				ID:        msg.ID,
				ChatID:    msg.ChatID,
				Seq:       seq,
				Message:   msg.Message,
				Response:  msg.Response,
				Category:  Category(msg.Category),
				CreatedAt: msg.CreatedAt,
			}
			break
		}
	}
	return true
}

func (e *Engine) removePlaceholder() {
	for i := range e.entries {
		if e.entries[i].IsPending() {
			e.entries = append(e.entries[:i], e.entries[i+1:]...)
			return
		}
	}
}
