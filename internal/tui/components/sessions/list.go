// Package sessions provides the chat session side panel.
package sessions

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/ovoronin/bizcli/internal/session"
	"github.com/ovoronin/bizcli/internal/tui/styles"
	"github.com/ovoronin/bizcli/internal/tui/util"
)

// SessionList displays the cached sessions with cursor navigation.
type SessionList struct {
	sessions []session.Session
	activeID string
	cursor   int
	width    int
	height   int
	offset   int
}

// NewSessionList creates an empty session list.
func NewSessionList() *SessionList {
	return &SessionList{}
}

// SetSessions replaces the displayed sessions.
func (l *SessionList) SetSessions(sessions []session.Session) {
	l.sessions = sessions
	if l.cursor >= len(l.sessions) {
		l.cursor = max(0, len(l.sessions)-1)
	}
	l.ensureVisible()
}

// SetActive marks the session currently open in the transcript.
func (l *SessionList) SetActive(id string) {
	l.activeID = id
}

// SetSize sets the list dimensions.
func (l *SessionList) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Selected returns the session under the cursor, or nil.
func (l *SessionList) Selected() *session.Session {
	if l.cursor >= 0 && l.cursor < len(l.sessions) {
		return &l.sessions[l.cursor]
	}
	return nil
}

// Update handles messages.
func (l *SessionList) Update(msg tea.Msg) (*SessionList, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "up", "k":
			if l.cursor > 0 {
				l.cursor--
				l.ensureVisible()
			}
		case "down", "j":
			if l.cursor < len(l.sessions)-1 {
				l.cursor++
				l.ensureVisible()
			}
		case "home", "g":
			l.cursor = 0
			l.offset = 0
		case "end", "G":
			l.cursor = max(0, len(l.sessions)-1)
			l.ensureVisible()
		case "enter":
			if selected := l.Selected(); selected != nil {
				return l, util.CmdHandler(SessionSelectedMsg{SessionID: selected.ID})
			}
		case "n":
			return l, util.CmdHandler(NewSessionMsg{})
		case "d":
			if selected := l.Selected(); selected != nil {
				return l, util.CmdHandler(DeleteRequestMsg{
					SessionID: selected.ID,
					Title:     selected.DisplayTitle(),
				})
			}
		}
	}

	return l, nil
}

func (l *SessionList) ensureVisible() {
	visibleRows := l.visibleRows()
	if l.cursor < l.offset {
		l.offset = l.cursor
	} else if l.cursor >= l.offset+visibleRows {
		l.offset = l.cursor - visibleRows + 1
	}
}

func (l *SessionList) visibleRows() int {
	// Each session takes 2 lines (title + meta)
	return max(1, l.height/2)
}

// View renders the session list.
func (l *SessionList) View() string {
	t := styles.CurrentTheme()

	if len(l.sessions) == 0 {
		emptyStyle := t.S().Muted.
			Width(l.width).
			Align(lipgloss.Center).
			Padding(1, 0)
		return emptyStyle.Render("Нет чатов. [n] — новый чат.")
	}

	var rows []string
	visibleRows := l.visibleRows()
	endIdx := min(l.offset+visibleRows, len(l.sessions))

	for i := l.offset; i < endIdx; i++ {
		rows = append(rows, l.renderSession(l.sessions[i], i == l.cursor))
	}

	var header string
	if l.offset > 0 {
		header = t.S().Muted.Render(fmt.Sprintf("  ↑ ещё %d", l.offset))
	}

	var footer string
	if remaining := len(l.sessions) - endIdx; remaining > 0 {
		footer = t.S().Muted.Render(fmt.Sprintf("  ↓ ещё %d", remaining))
	}

	content := strings.Join(rows, "\n")
	if header != "" {
		content = header + "\n" + content
	}
	if footer != "" {
		content = content + "\n" + footer
	}

	return content
}

func (l *SessionList) renderSession(sess session.Session, selected bool) string {
	t := styles.CurrentTheme()

	title := sess.DisplayTitle()
	maxTitleLen := max(4, l.width-4)
	title = ansi.Truncate(title, maxTitleLen, "...")

	meta := formatRelativeTime(sess.UpdatedAt)
	if sess.ID == l.activeID {
		meta = "● " + meta
	}

	var sb strings.Builder
	if selected {
		sb.WriteString(t.S().Primary.Bold(true).Render("> " + title))
		sb.WriteString("\n")
		sb.WriteString(t.S().Text.Render("  " + meta))
	} else {
		sb.WriteString(t.S().Text.Render("  " + title))
		sb.WriteString("\n")
		sb.WriteString(t.S().Muted.Render("  " + meta))
	}

	return sb.String()
}

func formatRelativeTime(t time.Time) string {
	return session.RelativeTime(t, time.Now())
}
