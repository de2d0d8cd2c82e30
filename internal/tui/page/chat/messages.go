package chat

import (
	"github.com/ovoronin/bizcli/internal/api"
	"github.com/ovoronin/bizcli/internal/transcript"
)

// historyLoadedMsg carries a finished history fetch back into the page.
// Gen ties the result to the selection that started it; stale loads are
// dropped by the engine.
type historyLoadedMsg struct {
	Err  error
	Msgs []api.ChatMessage
	Gen  int
}

// sendResultMsg carries the server's echo (or failure) for an outstanding
// placeholder.
type sendResultMsg struct {
	Err error
	Msg *api.ChatMessage
	Gen int
}

// sessionsRefreshedMsg carries a finished session list fetch.
type sessionsRefreshedMsg struct {
	Err   error
	Chats []api.Chat
	Gen   int
}

// deleteResultMsg reports the outcome of a session deletion.
type deleteResultMsg struct {
	Err       error
	SessionID string
}

// ResponseCopiedMsg is sent after the last assistant response was copied
// to the clipboard.
type ResponseCopiedMsg struct {
	Chars int
}

// promptPickedMsg is sent when a quick prompt is chosen from the picker.
type promptPickedMsg struct {
	Prompt transcript.QuickPrompt
}
