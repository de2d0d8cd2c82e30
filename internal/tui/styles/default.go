package styles

// NewDefaultTheme creates a clean dark theme for bizcli.
func NewDefaultTheme() *Theme {
	return &Theme{
		Name:   "default",
		IsDark: true,

		// Teal/green business tones
		Primary:   ParseHex("#4fc1a6"), // Teal
		Secondary: ParseHex("#56b6c2"), // Cyan
		Tertiary:  ParseHex("#3e4451"), // Dark gray-blue
		Accent:    ParseHex("#d8a657"), // Amber accent

		// Dark backgrounds
		BgBase:    ParseHex("#1e1e1e"), // Dark background
		BgSubtle:  ParseHex("#252526"), // Slightly lighter
		BgOverlay: ParseHex("#2d2d30"), // Overlay background

		// Light foregrounds
		FgBase:   ParseHex("#abb2bf"), // Light gray text
		FgMuted:  ParseHex("#7f848e"), // Muted gray
		FgSubtle: ParseHex("#5c6370"), // Subtle gray

		// Borders
		Border:      ParseHex("#3e4451"),
		BorderFocus: ParseHex("#4fc1a6"),

		// Status colors
		Success: ParseHex("#98c379"), // Green
		Error:   ParseHex("#e06c75"), // Red
		Warning: ParseHex("#e5c07b"), // Yellow
		Info:    ParseHex("#61afef"), // Blue
	}
}
