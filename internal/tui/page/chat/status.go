package chat

import (
	"charm.land/lipgloss/v2"

	"github.com/ovoronin/bizcli/internal/transcript"
	"github.com/ovoronin/bizcli/internal/tui/styles"
)

// Status represents the current chat status.
type Status int

// Status values.
const (
	StatusReady Status = iota
	StatusSending
	StatusLoading
	StatusError
)

// StatusBar displays the current chat status, the selected category and
// key hints.
type StatusBar struct {
	status   Status
	errorMsg string
	category transcript.Category
	width    int
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{status: StatusReady}
}

// SetStatus sets the current status.
func (s *StatusBar) SetStatus(status Status) {
	s.status = status
	if status == StatusReady {
		s.errorMsg = ""
	}
}

// SetError sets an error message.
func (s *StatusBar) SetError(msg string) {
	s.status = StatusError
	s.errorMsg = msg
}

// SetCategory sets the category tag shown in the bar.
func (s *StatusBar) SetCategory(c transcript.Category) {
	s.category = c
}

// SetWidth sets the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	t := styles.CurrentTheme()

	var statusText string
	var statusStyle lipgloss.Style

	switch s.status {
	case StatusReady:
		statusText = "Готов"
		statusStyle = t.S().Success
	case StatusSending:
		statusText = "Отправка..."
		statusStyle = t.S().Info
	case StatusLoading:
		statusText = "Загрузка истории..."
		statusStyle = t.S().Info
	case StatusError:
		statusText = "Ошибка: " + s.errorMsg
		statusStyle = t.S().Error
	}

	left := statusStyle.Render(statusText)
	if s.category != transcript.CategoryNone {
		tag := t.S().Subtitle.Render(" [" + transcript.TitleFor(s.category) + "]")
		left += tag
	}

	help := t.S().Muted.Render("Enter — отправить • Ctrl+P — темы • Ctrl+Y — копировать")

	barStyle := lipgloss.NewStyle().
		Width(s.width).
		Padding(0, 1).
		Background(t.BgSubtle)

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(help) - 4
	if gap < 1 {
		gap = 1
	}

	content := left + lipgloss.NewStyle().Width(gap).Render("") + help

	return barStyle.Render(content)
}
