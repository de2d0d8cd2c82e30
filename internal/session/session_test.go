package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ovoronin/bizcli/internal/api"
)

type fakeLister struct {
	chats     []api.Chat
	listErr   error
	deleteErr error
	deleted   []string
}

func (f *fakeLister) ListChats(context.Context) ([]api.Chat, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.chats, nil
}

func (f *fakeLister) DeleteChat(_ context.Context, chatID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, chatID)
	return nil
}

func TestRefreshReplacesWholesale(t *testing.T) {
	lister := &fakeLister{chats: []api.Chat{
		{ID: "c1", Title: "Финансы"},
		{ID: "c2", Title: "Юридический вопрос"},
	}}
	list := NewList(lister)

	gen := list.BeginRefresh()
	chats, err := list.Fetch(context.Background())
	if !list.ApplyRefresh(gen, chats, err) {
		t.Fatal("current refresh should apply")
	}
	if list.Len() != 2 || !list.Contains("c1") || !list.Contains("c2") {
		t.Fatalf("unexpected cache: %+v", list.Sessions())
	}

	// Next refresh replaces, never merges.
	lister.chats = []api.Chat{{ID: "c3"}}
	gen = list.BeginRefresh()
	chats, err = list.Fetch(context.Background())
	list.ApplyRefresh(gen, chats, err)
	if list.Len() != 1 || !list.Contains("c3") || list.Contains("c1") {
		t.Errorf("refresh should replace wholesale: %+v", list.Sessions())
	}
}

func TestRefreshFailureEmptiesCache(t *testing.T) {
	lister := &fakeLister{chats: []api.Chat{{ID: "c1"}}}
	list := NewList(lister)

	gen := list.BeginRefresh()
	chats, err := list.Fetch(context.Background())
	list.ApplyRefresh(gen, chats, err)

	lister.listErr = errors.New("boom")
	gen = list.BeginRefresh()
	chats, err = list.Fetch(context.Background())
	if !list.ApplyRefresh(gen, chats, err) {
		t.Fatal("failure on the current generation is still consumed")
	}
	if list.Len() != 0 {
		t.Errorf("failed fetch should empty the cache, got %+v", list.Sessions())
	}
}

func TestStaleRefreshDiscarded(t *testing.T) {
	list := NewList(&fakeLister{})

	genFirst := list.BeginRefresh()
	genSecond := list.BeginRefresh()

	if list.ApplyRefresh(genFirst, []api.Chat{{ID: "old"}}, nil) {
		t.Error("superseded refresh must be discarded")
	}
	if !list.ApplyRefresh(genSecond, []api.Chat{{ID: "new"}}, nil) {
		t.Error("latest refresh must apply")
	}
	if !list.Contains("new") || list.Contains("old") {
		t.Errorf("cache should hold the latest result only: %+v", list.Sessions())
	}
}

func TestDeleteAndRemove(t *testing.T) {
	lister := &fakeLister{}
	list := NewList(lister)
	gen := list.BeginRefresh()
	list.ApplyRefresh(gen, []api.Chat{{ID: "c1"}, {ID: "c2"}}, nil)

	t.Run("success removes locally without refresh", func(t *testing.T) {
		if err := list.Delete(context.Background(), "c1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		list.Remove("c1")
		if list.Contains("c1") || list.Len() != 1 {
			t.Errorf("c1 should be gone: %+v", list.Sessions())
		}
		if len(lister.deleted) != 1 || lister.deleted[0] != "c1" {
			t.Errorf("server should have been asked to delete c1: %v", lister.deleted)
		}
	})

	t.Run("failure leaves the cache unchanged", func(t *testing.T) {
		lister.deleteErr = &api.Error{StatusCode: 500, Message: "internal error"}
		if err := list.Delete(context.Background(), "c2"); err == nil {
			t.Fatal("expected an error")
		}
		if !list.Contains("c2") {
			t.Error("a failed delete must not touch the cache")
		}
	})

	t.Run("removing an absent id is a no-op", func(t *testing.T) {
		before := list.Len()
		list.Remove("missing")
		if list.Len() != before {
			t.Error("Remove of an unknown id should change nothing")
		}
	})
}

func TestDisplayTitle(t *testing.T) {
	if got := (Session{Title: "Отчёт"}).DisplayTitle(); got != "Отчёт" {
		t.Errorf("got %q", got)
	}
	if got := (Session{}).DisplayTitle(); got != "Новый чат" {
		t.Errorf("untitled fallback: got %q", got)
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "только что"},
		{"minutes", now.Add(-5 * time.Minute), "5 мин назад"},
		{"hours", now.Add(-3 * time.Hour), "3 ч назад"},
		{"yesterday", now.Add(-30 * time.Hour), "вчера"},
		{"date", now.Add(-100 * time.Hour), "06.03.2026"},
		{"zero", time.Time{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RelativeTime(tc.t, now); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
