// Package chat provides the main chat page: transcript, input, and the
// session side panel.
package chat

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ovoronin/bizcli/internal/api"
	"github.com/ovoronin/bizcli/internal/bridge"
	"github.com/ovoronin/bizcli/internal/debug"
	"github.com/ovoronin/bizcli/internal/events"
	"github.com/ovoronin/bizcli/internal/pubsub"
	"github.com/ovoronin/bizcli/internal/session"
	"github.com/ovoronin/bizcli/internal/transcript"
	sessionlist "github.com/ovoronin/bizcli/internal/tui/components/sessions"
	"github.com/ovoronin/bizcli/internal/tui/util"
)

// focusArea identifies which pane receives key input.
type focusArea int

const (
	focusInput focusArea = iota
	focusSessions
)

const panelWidth = 34

// Model is the chat page model.
type Model struct {
	client   *api.Client
	engine   *transcript.Engine
	sessions *session.List

	view    *TranscriptView
	input   *Input
	status  *StatusBar
	panel   *sessionlist.BorderedPanel
	list    *sessionlist.SessionList
	confirm *sessionlist.ConfirmDialog
	picker  *PromptPicker

	category transcript.Category
	focus    focusArea
	width    int
	height   int
}

// New creates the chat page. The engine publishes session-created signals
// on hub's session broker; the list learns about them through the bridge.
func New(client *api.Client, hub *pubsub.Hub) *Model {
	var broker *pubsub.Broker[events.SessionEvent]
	if hub != nil {
		broker = hub.Session
	}

	m := &Model{
		client:   client,
		engine:   transcript.NewEngine(client, broker),
		sessions: session.NewList(client),
		view:     NewTranscriptView(),
		input:    NewInput(),
		status:   NewStatusBar(),
		panel:    sessionlist.NewBorderedPanel(),
		list:     sessionlist.NewSessionList(),
		confirm:  sessionlist.NewConfirmDialog(),
		picker:   NewPromptPicker(),
	}
	m.panel.SetTitle("Чаты")
	return m
}

// Init initializes the chat page.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.input.Init(),
		m.refreshSessionsCmd(m.sessions.BeginRefresh()),
	)
}

// Update handles messages.
//
//nolint:gocyclo // TUI update handler requires handling many message types
func (m *Model) Update(msg tea.Msg) (util.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case historyLoadedMsg:
		if msg.Err != nil {
			debug.Error("chat", msg.Err, "loading history")
		}
		if m.engine.ApplyHistory(msg.Gen, msg.Msgs, msg.Err) {
			m.view.SetEntries(m.engine.Entries())
			m.status.SetStatus(StatusReady)
		}
		return m, nil

	case sendResultMsg:
		if m.engine.ApplySendResult(msg.Gen, msg.Msg, msg.Err) {
			m.view.SetEntries(m.engine.Entries())
			m.list.SetActive(m.engine.ChatID())
			if errText := m.engine.Err(); errText != "" {
				m.status.SetError(errText)
			} else {
				m.status.SetStatus(StatusReady)
			}
			m.input.Enable()
			return m, m.input.Focus()
		}
		return m, nil

	case sessionsRefreshedMsg:
		if msg.Err != nil {
			debug.Error("chat", msg.Err, "refreshing sessions")
		}
		if m.sessions.ApplyRefresh(msg.Gen, msg.Chats, msg.Err) {
			m.list.SetSessions(m.sessions.Sessions())
		}
		return m, nil

	case sessionlist.SessionSelectedMsg:
		return m, m.selectSession(msg.SessionID)

	case sessionlist.NewSessionMsg:
		return m, m.startNewChat()

	case sessionlist.DeleteRequestMsg:
		m.confirm.Show(msg.SessionID, msg.Title)
		return m, nil

	case sessionlist.DeleteConfirmedMsg:
		return m, m.deleteSessionCmd(msg.SessionID)

	case deleteResultMsg:
		if msg.Err != nil {
			m.status.SetError(msg.Err.Error())
			return m, util.ReportError(msg.Err)
		}
		m.sessions.Remove(msg.SessionID)
		m.list.SetSessions(m.sessions.Sessions())
		if msg.SessionID == m.engine.ChatID() {
			return m, m.startNewChat()
		}
		return m, util.ReportSuccess("Чат удалён")

	case promptPickedMsg:
		m.category = msg.Prompt.Category
		m.status.SetCategory(m.category)
		m.input.SetValue(msg.Prompt.Prompt)
		m.focus = focusInput
		return m, m.input.Focus()

	case ResponseCopiedMsg:
		return m, util.ReportSuccess(fmt.Sprintf("Скопировано %d символов", msg.Chars))

	case bridge.SessionEventMsg:
		if msg.Event.Payload.Type == events.SessionEventCreated {
			return m, m.refreshSessionsCmd(m.sessions.BeginRefresh())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (util.Model, tea.Cmd) {
	debug.Event("chat", "KeyMsg", fmt.Sprintf("key=%q", msg.String()))

	// Modals capture all keys while visible.
	if m.confirm.IsVisible() {
		var cmd tea.Cmd
		m.confirm, cmd = m.confirm.Update(msg)
		return m, cmd
	}
	if m.picker.IsVisible() {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "tab":
		if m.focus == focusInput {
			m.focus = focusSessions
			m.input.Blur()
		} else {
			m.focus = focusInput
			return m, m.input.Focus()
		}
		return m, nil

	case "ctrl+n":
		return m, m.startNewChat()

	case "ctrl+p":
		m.picker.Show()
		return m, nil

	case "ctrl+y":
		if resp := m.view.LastResponse(); resp != "" {
			return m, copyToClipboardCmd(resp)
		}
		return m, nil

	case "pgup":
		m.view.ScrollUp()
		return m, nil

	case "pgdown":
		m.view.ScrollDown()
		return m, nil

	case "enter":
		if m.focus == focusInput {
			return m, m.submit()
		}
	}

	if m.focus == focusSessions {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts an optimistic send from the input value.
func (m *Model) submit() tea.Cmd {
	req, gen, ok := m.engine.BeginSend(m.input.Value(), m.category)
	if !ok {
		return nil
	}

	m.input.Clear()
	m.input.Disable()
	m.category = transcript.CategoryNone
	m.status.SetCategory(transcript.CategoryNone)
	m.status.SetStatus(StatusSending)
	m.view.SetEntries(m.engine.Entries())

	return m.sendCmd(req, gen)
}

// selectSession switches the transcript to another session. The view is
// cleared synchronously; history arrives through historyLoadedMsg.
func (m *Model) selectSession(id string) tea.Cmd {
	gen, load := m.engine.Select(id)
	m.list.SetActive(id)
	m.view.SetEntries(nil)
	m.focus = focusInput
	m.input.Enable()

	if !load {
		m.status.SetStatus(StatusReady)
		return m.input.Focus()
	}
	m.status.SetStatus(StatusLoading)
	return tea.Batch(m.input.Focus(), m.loadHistoryCmd(id, gen))
}

// startNewChat transitions to the "no session" state; the next send
// creates one server-side.
func (m *Model) startNewChat() tea.Cmd {
	return m.selectSession("")
}

// View renders the chat page.
func (m *Model) View() string {
	if m.confirm.IsVisible() {
		return m.confirm.View()
	}
	if m.picker.IsVisible() {
		return m.picker.View()
	}

	statusHeight := 1
	inputHeight := 3
	transcriptHeight := max(1, m.height-statusHeight-inputHeight)

	showPanel := m.width >= 80
	transcriptWidth := m.width
	if showPanel {
		transcriptWidth = m.width - panelWidth
	}

	m.view.SetSize(transcriptWidth, transcriptHeight)
	m.input.SetWidth(transcriptWidth)
	m.status.SetWidth(m.width)

	right := lipgloss.JoinVertical(lipgloss.Left,
		m.view.View(),
		m.input.View(),
	)

	var body string
	if showPanel {
		m.list.SetSize(panelWidth-4, transcriptHeight+inputHeight-2)
		m.panel.SetSize(panelWidth, transcriptHeight+inputHeight)
		m.panel.SetContent(m.list.View())
		m.panel.SetFocused(m.focus == focusSessions)
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.panel.View(), right)
	} else {
		body = right
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.status.View())
}

// SetSize sets the chat page size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.confirm.SetSize(width, height)
	m.picker.SetSize(width, height)
}

// Cursor returns the cursor position.
func (m *Model) Cursor() *tea.Cursor {
	if m.focus == focusInput && m.input.IsEnabled() &&
		!m.confirm.IsVisible() && !m.picker.IsVisible() {
		return m.input.Cursor()
	}
	return nil
}

// ActiveSession returns the currently selected session id, or "".
func (m *Model) ActiveSession() string {
	return m.engine.ChatID()
}
