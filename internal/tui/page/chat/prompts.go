package chat

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ovoronin/bizcli/internal/transcript"
	"github.com/ovoronin/bizcli/internal/tui/styles"
	"github.com/ovoronin/bizcli/internal/tui/util"
)

// PromptPicker lets the user pick a category quick prompt. Choosing one
// fills the input and tags the next message with the category.
type PromptPicker struct {
	prompts []transcript.QuickPrompt
	cursor  int
	visible bool
	width   int
	height  int
}

// NewPromptPicker creates a hidden picker over the built-in prompts.
func NewPromptPicker() *PromptPicker {
	return &PromptPicker{prompts: transcript.QuickPrompts()}
}

// Show displays the picker.
func (p *PromptPicker) Show() {
	p.visible = true
	p.cursor = 0
}

// Hide dismisses the picker.
func (p *PromptPicker) Hide() {
	p.visible = false
}

// IsVisible reports whether the picker is shown.
func (p *PromptPicker) IsVisible() bool {
	return p.visible
}

// SetSize sets the screen dimensions the picker centers within.
func (p *PromptPicker) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Update handles key events while visible.
func (p *PromptPicker) Update(msg tea.Msg) (*PromptPicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.visible {
		return p, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.prompts)-1 {
			p.cursor++
		}
	case "enter":
		chosen := p.prompts[p.cursor]
		p.Hide()
		return p, util.CmdHandler(promptPickedMsg{Prompt: chosen})
	case "esc":
		p.Hide()
	}

	return p, nil
}

// View renders the centered picker box.
func (p *PromptPicker) View() string {
	if !p.visible {
		return ""
	}

	t := styles.CurrentTheme()

	var rows []string
	for i, qp := range p.prompts {
		if i == p.cursor {
			title := t.S().Primary.Bold(true).Render("> " + qp.Title)
			desc := t.S().Text.Render("  " + qp.Description)
			rows = append(rows, title+"\n"+desc)
		} else {
			title := t.S().Text.Render("  " + qp.Title)
			desc := t.S().Muted.Render("  " + qp.Description)
			rows = append(rows, title+"\n"+desc)
		}
	}

	boxWidth := min(p.width-4, 64)
	contentWidth := boxWidth - 6

	titleStyle := t.S().Title.
		Width(contentWidth).
		Align(lipgloss.Center).
		MarginBottom(1)
	footerStyle := t.S().Muted.
		Width(contentWidth).
		Align(lipgloss.Center).
		MarginTop(1)

	innerContent := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Темы для бизнеса"),
		strings.Join(rows, "\n"),
		footerStyle.Render("[enter] Выбрать  [esc] Закрыть"),
	)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(1, 2).
		Width(boxWidth)

	return lipgloss.Place(
		p.width, p.height,
		lipgloss.Center, lipgloss.Center,
		boxStyle.Render(innerContent),
	)
}
