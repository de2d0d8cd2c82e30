// Package styles provides the color theme and shared lipgloss styles.
package styles

import (
	"image/color"
	"sync"

	"charm.land/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Theme holds the color palette for the UI.
type Theme struct {
	Name   string
	IsDark bool

	Primary   color.Color
	Secondary color.Color
	Tertiary  color.Color
	Accent    color.Color

	BgBase    color.Color
	BgSubtle  color.Color
	BgOverlay color.Color

	FgBase   color.Color
	FgMuted  color.Color
	FgSubtle color.Color

	Border      color.Color
	BorderFocus color.Color

	Success color.Color
	Error   color.Color
	Warning color.Color
	Info    color.Color

	stylesOnce sync.Once
	styles     *Styles
}

// Styles is the set of pre-built lipgloss styles derived from the theme.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Subtle    lipgloss.Style
	Primary   lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
	TextInput lipgloss.Style
}

// S returns the styles for this theme, building them on first use.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = &Styles{
			Title:     lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
			Subtitle:  lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
			Text:      lipgloss.NewStyle().Foreground(t.FgBase),
			Muted:     lipgloss.NewStyle().Foreground(t.FgMuted),
			Subtle:    lipgloss.NewStyle().Foreground(t.FgSubtle),
			Primary:   lipgloss.NewStyle().Foreground(t.Primary),
			Success:   lipgloss.NewStyle().Foreground(t.Success),
			Error:     lipgloss.NewStyle().Foreground(t.Error),
			Warning:   lipgloss.NewStyle().Foreground(t.Warning),
			Info:      lipgloss.NewStyle().Foreground(t.Info),
			TextInput: lipgloss.NewStyle().Foreground(t.FgBase),
		}
	})
	return t.styles
}

// ParseHex converts a hex string like "#61afef" to a color. Invalid
// strings produce black rather than a panic.
func ParseHex(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Black
	}
	return c
}

// Manager owns the active theme.
type Manager struct {
	current *Theme
}

var (
	managerMu sync.RWMutex
	manager   *Manager
)

// NewManager initializes the global theme manager, detecting whether the
// terminal background is dark.
func NewManager() *Manager {
	managerMu.Lock()
	defer managerMu.Unlock()

	theme := NewDefaultTheme()
	theme.IsDark = termenv.HasDarkBackground()

	manager = &Manager{current: theme}
	return manager
}

// CurrentTheme returns the active theme, initializing the manager with the
// default theme if needed.
func CurrentTheme() *Theme {
	managerMu.RLock()
	if manager != nil {
		defer managerMu.RUnlock()
		return manager.current
	}
	managerMu.RUnlock()

	managerMu.Lock()
	defer managerMu.Unlock()
	if manager == nil {
		manager = &Manager{current: NewDefaultTheme()}
	}
	return manager.current
}
