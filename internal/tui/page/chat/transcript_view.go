package chat

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ovoronin/bizcli/internal/transcript"
	"github.com/ovoronin/bizcli/internal/tui/styles"
)

// TranscriptView displays the conversation entries.
type TranscriptView struct {
	entries  []transcript.Entry
	markdown *MarkdownRenderer
	width    int
	height   int
	offset   int // lines scrolled up from the bottom
}

// NewTranscriptView creates an empty transcript view.
func NewTranscriptView() *TranscriptView {
	return &TranscriptView{
		markdown: NewMarkdownRenderer(),
	}
}

// SetEntries replaces the displayed entries and snaps to the bottom.
func (v *TranscriptView) SetEntries(entries []transcript.Entry) {
	v.entries = entries
	v.offset = 0
}

// SetSize sets the component size.
func (v *TranscriptView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// ScrollUp scrolls toward older messages.
func (v *TranscriptView) ScrollUp() {
	v.offset++
}

// ScrollDown scrolls toward the newest message.
func (v *TranscriptView) ScrollDown() {
	if v.offset > 0 {
		v.offset--
	}
}

// LastResponse returns the newest completed assistant response, or "".
func (v *TranscriptView) LastResponse() string {
	for i := len(v.entries) - 1; i >= 0; i-- {
		if !v.entries[i].IsPending() && v.entries[i].Response != "" {
			return v.entries[i].Response
		}
	}
	return ""
}

// View renders the transcript.
func (v *TranscriptView) View() string {
	t := styles.CurrentTheme()

	if len(v.entries) == 0 {
		empty := t.S().Muted.Render("Сообщений пока нет. Задайте вопрос, чтобы начать чат.")
		return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, empty)
	}

	var rendered []string
	for _, entry := range v.entries {
		rendered = append(rendered, v.renderEntry(entry))
	}
	content := strings.Join(rendered, "\n\n")

	// Show the tail of the conversation, honoring the scroll offset.
	lines := strings.Split(content, "\n")
	if len(lines) > v.height {
		maxOffset := len(lines) - v.height
		if v.offset > maxOffset {
			v.offset = maxOffset
		}
		end := len(lines) - v.offset
		lines = lines[end-v.height : end]
		content = strings.Join(lines, "\n")
	} else {
		v.offset = 0
	}

	containerStyle := lipgloss.NewStyle().
		Width(v.width).
		Height(v.height).
		Padding(0, 1)

	return containerStyle.Render(content)
}

func (v *TranscriptView) renderEntry(entry transcript.Entry) string {
	t := styles.CurrentTheme()

	contentWidth := v.width - 4

	header := t.S().Text.Bold(true).Render("Вы")
	if entry.Category != transcript.CategoryNone {
		header += t.S().Muted.Render("  [" + transcript.TitleFor(entry.Category) + "]")
	}
	question := t.S().Text.Width(contentWidth).Render(entry.Message)

	parts := []string{header, question}

	answerHeader := t.S().Primary.Bold(true).Render("Ассистент")
	if entry.IsPending() {
		parts = append(parts, answerHeader, t.S().Muted.Render("…"))
	} else if entry.Response != "" {
		answer, err := v.markdown.Render(entry.Response, contentWidth)
		if err != nil {
			answer = t.S().Text.Width(contentWidth).Render(entry.Response)
		}
		parts = append(parts, answerHeader, strings.TrimRight(answer, "\n"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
