package sessions

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ovoronin/bizcli/internal/tui/styles"
	"github.com/ovoronin/bizcli/internal/tui/util"
)

// ConfirmDialog is the destructive-action gate shown before a session is
// deleted. Nothing is sent to the server until the user confirms.
type ConfirmDialog struct {
	targetID    string
	targetTitle string
	visible     bool
	width       int
	height      int
}

// NewConfirmDialog creates a hidden confirmation dialog.
func NewConfirmDialog() *ConfirmDialog {
	return &ConfirmDialog{}
}

// Show displays the dialog for the given session.
func (c *ConfirmDialog) Show(sessionID, title string) {
	c.targetID = sessionID
	c.targetTitle = title
	c.visible = true
}

// Hide dismisses the dialog without confirming.
func (c *ConfirmDialog) Hide() {
	c.visible = false
	c.targetID = ""
	c.targetTitle = ""
}

// IsVisible reports whether the dialog is shown.
func (c *ConfirmDialog) IsVisible() bool {
	return c.visible
}

// SetSize sets the screen dimensions the dialog centers within.
func (c *ConfirmDialog) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Update handles key events while the dialog is visible.
func (c *ConfirmDialog) Update(msg tea.Msg) (*ConfirmDialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !c.visible {
		return c, nil
	}

	switch keyMsg.String() {
	case "y", "Y", "enter":
		id := c.targetID
		c.Hide()
		return c, util.CmdHandler(DeleteConfirmedMsg{SessionID: id})
	case "n", "N", "esc":
		c.Hide()
		return c, nil
	}

	return c, nil
}

// View renders the centered confirmation box.
func (c *ConfirmDialog) View() string {
	if !c.visible {
		return ""
	}

	t := styles.CurrentTheme()

	var sb strings.Builder
	sb.WriteString(t.S().Text.Render("Удалить чат "))
	sb.WriteString(t.S().Primary.Bold(true).Render(c.targetTitle))
	sb.WriteString(t.S().Text.Render("?\n\n"))
	sb.WriteString(t.S().Warning.Render("Все сообщения этого чата будут удалены безвозвратно."))

	boxWidth := min(c.width-4, 60)
	contentWidth := boxWidth - 6

	titleStyle := t.S().Title.
		Width(contentWidth).
		Align(lipgloss.Center).
		MarginBottom(1)
	contentStyle := lipgloss.NewStyle().Width(contentWidth)
	footerStyle := t.S().Muted.
		Width(contentWidth).
		Align(lipgloss.Center).
		MarginTop(1)

	innerContent := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Удаление чата"),
		contentStyle.Render(sb.String()),
		footerStyle.Render("[y] Да  [n] Нет  [esc] Отмена"),
	)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(1, 2).
		Width(boxWidth)

	return lipgloss.Place(
		c.width, c.height,
		lipgloss.Center, lipgloss.Center,
		boxStyle.Render(innerContent),
	)
}
