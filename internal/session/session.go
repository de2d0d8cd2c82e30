// Package session maintains the client-side cache of chat sessions.
//
// The cache is server-authoritative: a refresh replaces it wholesale and a
// failed refresh empties it rather than leaving stale entries behind. The
// only incremental mutation is the local removal after a confirmed delete.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/ovoronin/bizcli/internal/api"
)

// Session is a read-only copy of a server-side chat session.
type Session struct {
	ID        string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromChat converts the wire representation.
func FromChat(c api.Chat) Session {
	return Session{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// DisplayTitle returns the session title, or a default for untitled sessions.
func (s Session) DisplayTitle() string {
	if s.Title == "" {
		return "Новый чат"
	}
	return s.Title
}

// Lister is the API surface the synchronizer needs.
type Lister interface {
	ListChats(ctx context.Context) ([]api.Chat, error)
	DeleteChat(ctx context.Context, chatID string) error
}

// List synchronizes the local session cache with the server.
//
// Like the transcript engine it is a plain state machine: the owner runs the
// network calls (Fetch, Delete) off the state and feeds results back in
// through the Apply methods. Refreshes carry a generation counter so a slow
// fetch that resolves after a newer one started is discarded.
type List struct {
	client   Lister
	sessions []Session
	gen      int
}

// NewList returns an empty synchronizer backed by client.
func NewList(client Lister) *List {
	return &List{client: client}
}

// Sessions returns a copy of the cached list.
func (l *List) Sessions() []Session {
	out := make([]Session, len(l.sessions))
	copy(out, l.sessions)
	return out
}

// Len reports the number of cached sessions.
func (l *List) Len() int {
	return len(l.sessions)
}

// Contains reports whether id is in the cache.
func (l *List) Contains(id string) bool {
	for _, s := range l.sessions {
		if s.ID == id {
			return true
		}
	}
	return false
}

// BeginRefresh marks the start of a refresh and returns its generation.
func (l *List) BeginRefresh() int {
	l.gen++
	return l.gen
}

// Fetch retrieves the full session list from the server.
func (l *List) Fetch(ctx context.Context) ([]api.Chat, error) {
	return l.client.ListChats(ctx)
}

// ApplyRefresh installs a fetch result. Results from a superseded refresh
// are discarded and false is returned. A failed fetch empties the cache.
func (l *List) ApplyRefresh(gen int, chats []api.Chat, err error) bool {
	if gen != l.gen {
		return false
	}
	if err != nil {
		l.sessions = nil
		return true
	}
	l.sessions = make([]Session, 0, len(chats))
	for _, c := range chats {
		l.sessions = append(l.sessions, FromChat(c))
	}
	return true
}

// Delete issues the deletion request for id. The cache is untouched; call
// Remove after success. Callers are expected to have confirmed the action
// with the user first.
func (l *List) Delete(ctx context.Context, id string) error {
	return l.client.DeleteChat(ctx, id)
}

// Remove drops id from the cache without a server round-trip.
func (l *List) Remove(id string) {
	for i, s := range l.sessions {
		if s.ID == id {
			l.sessions = append(l.sessions[:i], l.sessions[i+1:]...)
			return
		}
	}
}

// RelativeTime renders t as a short Russian age label relative to now.
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "только что"
	case d < time.Hour:
		return fmt.Sprintf("%d мин назад", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d ч назад", int(d.Hours()))
	case d < 48*time.Hour:
		return "вчера"
	default:
		return t.Format("02.01.2006")
	}
}
