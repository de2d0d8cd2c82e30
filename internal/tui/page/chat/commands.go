package chat

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"

	"github.com/ovoronin/bizcli/internal/api"
)

// loadHistoryCmd fetches a session's transcript off the update loop.
func (m *Model) loadHistoryCmd(chatID string, gen int) tea.Cmd {
	return func() tea.Msg {
		msgs, err := m.engine.LoadHistory(context.Background(), chatID)
		return historyLoadedMsg{Gen: gen, Msgs: msgs, Err: err}
	}
}

// sendCmd delivers the outgoing message and reports the server's echo.
func (m *Model) sendCmd(req api.SendMessageRequest, gen int) tea.Cmd {
	return func() tea.Msg {
		msg, err := m.engine.Send(context.Background(), req)
		return sendResultMsg{Gen: gen, Msg: msg, Err: err}
	}
}

// refreshSessionsCmd fetches the full session list.
func (m *Model) refreshSessionsCmd(gen int) tea.Cmd {
	return func() tea.Msg {
		chats, err := m.sessions.Fetch(context.Background())
		return sessionsRefreshedMsg{Gen: gen, Chats: chats, Err: err}
	}
}

// deleteSessionCmd issues a confirmed deletion.
func (m *Model) deleteSessionCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		err := m.sessions.Delete(context.Background(), sessionID)
		return deleteResultMsg{SessionID: sessionID, Err: err}
	}
}

// copyToClipboardCmd copies text to the system clipboard.
func copyToClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return nil // clipboard failures are silent
		}
		return ResponseCopiedMsg{Chars: len(text)}
	}
}
