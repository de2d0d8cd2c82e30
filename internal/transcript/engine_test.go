package transcript

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ovoronin/bizcli/internal/api"
	"github.com/ovoronin/bizcli/internal/events"
	"github.com/ovoronin/bizcli/internal/pubsub"
)

// fakeSender scripts SendMessage/GetHistory responses.
type fakeSender struct {
	sendResp    *api.ChatMessage
	sendErr     error
	sendCount   int
	historyResp map[string][]api.ChatMessage
	historyErr  error
}

func (f *fakeSender) SendMessage(_ context.Context, req api.SendMessageRequest) (*api.ChatMessage, error) {
	f.sendCount++
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	resp := *f.sendResp
	if resp.Message == "" {
		resp.Message = req.Message
	}
	if resp.Category == "" {
		resp.Category = req.Category
	}
	return &resp, nil
}

func (f *fakeSender) GetHistory(_ context.Context, chatID string) ([]api.ChatMessage, error) {
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	return f.historyResp[chatID], nil
}

func TestSendCreatesSessionAndReconciles(t *testing.T) {
	bus := pubsub.NewBroker[events.SessionEvent]("session")
	defer bus.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signals := bus.Subscribe(ctx)

	sender := &fakeSender{
		sendResp: &api.ChatMessage{ID: "m1", ChatID: "c1", Response: "Ваша прибыль выросла"},
	}
	engine := NewEngine(sender, bus)

	req, gen, ok := engine.BeginSend("Проверь мою прибыль", CategoryFinancial)
	if !ok {
		t.Fatal("BeginSend should accept a first message")
	}
	if req.ChatID != "" {
		t.Errorf("no session yet, request should carry no chat id, got %q", req.ChatID)
	}

	// Placeholder is visible before any network round-trip.
	entries := engine.Entries()
	if len(entries) != 1 || !entries[0].IsPending() {
		t.Fatalf("expected one placeholder entry, got %+v", entries)
	}
	if entries[0].Message != "Проверь мою прибыль" || entries[0].Category != CategoryFinancial {
		t.Errorf("placeholder should echo text and category: %+v", entries[0])
	}

	msg, err := engine.Send(context.Background(), req)
	if !engine.ApplySendResult(gen, msg, err) {
		t.Fatal("result should not be discarded")
	}

	entries = engine.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected one entry after reconciliation, got %d", len(entries))
	}
	if entries[0].ID != "m1" || entries[0].IsPending() {
		t.Errorf("placeholder should be replaced in place: %+v", entries[0])
	}
	if entries[0].Response != "Ваша прибыль выросла" {
		t.Errorf("unexpected response: %q", entries[0].Response)
	}
	if engine.ChatID() != "c1" {
		t.Errorf("engine should adopt the minted session id, got %q", engine.ChatID())
	}

	select {
	case event := <-signals:
		if event.Payload.SessionID != "c1" || event.Payload.Type != events.SessionEventCreated {
			t.Errorf("unexpected signal: %+v", event.Payload)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("expected a session-created signal")
	}

	// The signal fires exactly once: a second send on the now-active session
	// must not re-emit it.
	sender.sendResp = &api.ChatMessage{ID: "m2", ChatID: "c1", Response: "ok"}
	req, gen, ok = engine.BeginSend("Ещё вопрос", CategoryNone)
	if !ok {
		t.Fatal("second send should be accepted after the first completed")
	}
	if req.ChatID != "c1" {
		t.Errorf("second send should target the adopted session, got %q", req.ChatID)
	}
	msg, err = engine.Send(context.Background(), req)
	engine.ApplySendResult(gen, msg, err)

	select {
	case event := <-signals:
		t.Errorf("no signal expected for sends into an existing session, got %+v", event.Payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSendValidation(t *testing.T) {
	engine := NewEngine(&fakeSender{}, nil)

	t.Run("empty text is a no-op", func(t *testing.T) {
		if _, _, ok := engine.BeginSend("   \n\t", CategoryNone); ok {
			t.Error("whitespace-only text should be rejected")
		}
		if len(engine.Entries()) != 0 {
			t.Error("no placeholder should be appended")
		}
	})

	t.Run("second send while pending is rejected, not queued", func(t *testing.T) {
		_, _, ok := engine.BeginSend("первый", CategoryNone)
		if !ok {
			t.Fatal("first send should be accepted")
		}

		if _, _, ok := engine.BeginSend("второй", CategoryNone); ok {
			t.Error("send with a placeholder outstanding should be a no-op")
		}
		if got := len(engine.Entries()); got != 1 {
			t.Errorf("transcript length should be unchanged, got %d", got)
		}
		if engine.Err() != "" {
			t.Errorf("error state should be unchanged, got %q", engine.Err())
		}
	})
}

func TestSendFailureRemovesPlaceholder(t *testing.T) {
	sender := &fakeSender{sendErr: &api.Error{StatusCode: 429, Message: "limit exceeded"}}
	engine := NewEngine(sender, nil)

	gen, _ := engine.Select("c1")
	engine.ApplyHistory(gen, []api.ChatMessage{{ID: "m0", ChatID: "c1", Message: "старое"}}, nil)
	before := len(engine.Entries())

	req, gen, ok := engine.BeginSend("вопрос", CategoryNone)
	if !ok {
		t.Fatal("BeginSend should accept")
	}
	msg, err := engine.Send(context.Background(), req)
	engine.ApplySendResult(gen, msg, err)

	entries := engine.Entries()
	if len(entries) != before {
		t.Errorf("transcript length should be back to %d, got %d", before, len(entries))
	}
	for _, entry := range entries {
		if entry.IsPending() {
			t.Error("no placeholder may survive a failed send")
		}
	}
	if engine.Err() != "limit exceeded" {
		t.Errorf("expected the server's error text, got %q", engine.Err())
	}
	if engine.HasPending() {
		t.Error("pending flag should be cleared after failure")
	}

	// A later send replaces the previous error.
	sender.sendErr = nil
	sender.sendResp = &api.ChatMessage{ID: "m1", ChatID: "c1", Response: "ok"}
	req, gen, _ = engine.BeginSend("повтор", CategoryNone)
	if engine.Err() != "" {
		t.Errorf("starting a send should clear the prior error, got %q", engine.Err())
	}
	msg, err = engine.Send(context.Background(), req)
	engine.ApplySendResult(gen, msg, err)
}

func TestSelectClearsAndLoads(t *testing.T) {
	sender := &fakeSender{historyResp: map[string][]api.ChatMessage{
		"c1": {{ID: "m1", ChatID: "c1", Message: "a", Response: "ра"}},
		"c2": {{ID: "m2", ChatID: "c2", Message: "b", Response: "рб"}},
	}}
	engine := NewEngine(sender, nil)

	t.Run("select none clears synchronously", func(t *testing.T) {
		gen, _ := engine.Select("c1")
		msgs, err := engine.LoadHistory(context.Background(), "c1")
		engine.ApplyHistory(gen, msgs, err)
		if len(engine.Entries()) != 1 {
			t.Fatalf("expected loaded history, got %+v", engine.Entries())
		}

		_, load := engine.Select("")
		if load {
			t.Error("selecting none must not request a load")
		}
		if len(engine.Entries()) != 0 {
			t.Error("transcript should be cleared synchronously")
		}
		if engine.ChatID() != "" {
			t.Errorf("active session should be none, got %q", engine.ChatID())
		}
	})

	t.Run("re-selecting the active id still re-fetches", func(t *testing.T) {
		gen, load := engine.Select("c1")
		if !load {
			t.Fatal("selection should request a load")
		}
		engine.ApplyHistory(gen, sender.historyResp["c1"], nil)

		_, load = engine.Select("c1")
		if !load {
			t.Error("idempotent re-select must still refresh from the server")
		}
	})

	t.Run("stale load is discarded after rapid switch", func(t *testing.T) {
		genFirst, _ := engine.Select("c1")
		genSecond, _ := engine.Select("c2")

		// The first load resolves late, after c2 was selected.
		if engine.ApplyHistory(genFirst, sender.historyResp["c1"], nil) {
			t.Error("stale history must be discarded")
		}
		if !engine.ApplyHistory(genSecond, sender.historyResp["c2"], nil) {
			t.Error("current history must be applied")
		}

		entries := engine.Entries()
		if len(entries) != 1 || entries[0].ChatID != "c2" {
			t.Errorf("transcript must reflect c2 only, got %+v", entries)
		}
	})

	t.Run("failed load clears rather than staying stale", func(t *testing.T) {
		gen, _ := engine.Select("c1")
		engine.ApplyHistory(gen, sender.historyResp["c1"], nil)

		gen, _ = engine.Select("c1")
		if !engine.ApplyHistory(gen, nil, errors.New("boom")) {
			t.Error("a current-generation failure is still consumed")
		}
		if len(engine.Entries()) != 0 {
			t.Error("failed load should leave an empty transcript")
		}
		if engine.Err() != "" {
			t.Errorf("history failures are swallowed, got %q", engine.Err())
		}
	})
}

func TestStaleSendResultDiscarded(t *testing.T) {
	sender := &fakeSender{sendResp: &api.ChatMessage{ID: "m1", ChatID: "c9", Response: "late"}}
	engine := NewEngine(sender, nil)

	req, gen, _ := engine.BeginSend("в пустоту", CategoryNone)
	msg, err := engine.Send(context.Background(), req)

	// User switches away before the send resolves.
	engine.Select("c2")

	if engine.ApplySendResult(gen, msg, err) {
		t.Error("send result from before the switch must be discarded")
	}
	if engine.ChatID() != "c2" {
		t.Errorf("selection must stay on c2, got %q", engine.ChatID())
	}
	if len(engine.Entries()) != 0 {
		t.Errorf("stale result must not touch the transcript: %+v", engine.Entries())
	}
	if engine.HasPending() {
		t.Error("switching away resets the pending guard")
	}
}

func TestPlaceholderKeepsPosition(t *testing.T) {
	sender := &fakeSender{sendResp: &api.ChatMessage{ID: "m3", ChatID: "c1", Response: "ok"}}
	engine := NewEngine(sender, nil)

	gen, _ := engine.Select("c1")
	engine.ApplyHistory(gen, []api.ChatMessage{
		{ID: "m1", ChatID: "c1"},
		{ID: "m2", ChatID: "c1"},
	}, nil)

	req, gen, _ := engine.BeginSend("третий", CategoryNone)
	placeholderSeq := engine.Entries()[2].Seq

	msg, err := engine.Send(context.Background(), req)
	engine.ApplySendResult(gen, msg, err)

	entries := engine.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[2].ID != "m3" {
		t.Errorf("authoritative entry should sit where the placeholder was, got %+v", entries[2])
	}
	if entries[2].Seq != placeholderSeq {
		t.Errorf("reconciliation must preserve the local sequence number: %d != %d",
			entries[2].Seq, placeholderSeq)
	}
}

func TestQuickPrompts(t *testing.T) {
	prompts := QuickPrompts()
	if len(prompts) != 6 {
		t.Fatalf("expected 6 category blocks, got %d", len(prompts))
	}

	seen := make(map[Category]bool)
	for _, qp := range prompts {
		if seen[qp.Category] {
			t.Errorf("duplicate category %q", qp.Category)
		}
		seen[qp.Category] = true
		if qp.Title == "" || qp.Prompt == "" {
			t.Errorf("category %q should have a title and prompt", qp.Category)
		}
	}

	if TitleFor(CategoryFinancial) != "Финансовый анализ" {
		t.Errorf("unexpected title: %q", TitleFor(CategoryFinancial))
	}
	if TitleFor(Category("custom")) != "custom" {
		t.Error("unknown categories fall back to the raw tag")
	}
}
