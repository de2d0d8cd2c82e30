// Package logo renders the bizcli wordmark.
package logo

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ovoronin/bizcli/internal/tui/styles"
)

const wordmark = `
██████╗ ██╗███████╗ ██████╗██╗     ██╗
██╔══██╗██║╚══███╔╝██╔════╝██║     ██║
██████╔╝██║  ███╔╝ ██║     ██║     ██║
██╔══██╗██║ ███╔╝  ██║     ██║     ██║
██████╔╝██║███████╗╚██████╗███████╗██║
╚═════╝ ╚═╝╚══════╝ ╚═════╝╚══════╝╚═╝
`

// Render returns the wordmark with the current theme colors.
func Render() string {
	t := styles.CurrentTheme()
	logo := strings.TrimPrefix(wordmark, "\n")
	return styles.ApplyForegroundGrad(logo, t.Primary, t.Secondary)
}

// RenderWithTagline returns the wordmark with the product tagline.
func RenderWithTagline() string {
	t := styles.CurrentTheme()
	tagline := t.S().Muted.Render("Бизнес-ассистент")
	return lipgloss.JoinVertical(lipgloss.Center, Render(), "", tagline)
}

// Width returns the width of the wordmark.
func Width() int {
	return lipgloss.Width(wordmark)
}

// Height returns the height of the wordmark.
func Height() int {
	return lipgloss.Height(wordmark)
}
