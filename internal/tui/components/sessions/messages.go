package sessions

// SessionSelectedMsg is sent when a session is chosen from the list.
type SessionSelectedMsg struct {
	SessionID string
}

// NewSessionMsg is sent to start a fresh session (no id until the first
// message is sent).
type NewSessionMsg struct{}

// DeleteRequestMsg is sent when the user asks to delete a session; the
// confirmation step happens before anything is issued to the server.
type DeleteRequestMsg struct {
	SessionID string
	Title     string
}

// DeleteConfirmedMsg is sent after the user confirms a deletion.
type DeleteConfirmedMsg struct {
	SessionID string
}

// RefreshMsg asks the panel to re-fetch the session list.
type RefreshMsg struct{}
