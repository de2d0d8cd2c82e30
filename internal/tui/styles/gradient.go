package styles

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyForegroundGrad renders input with a left-to-right foreground
// gradient from one color to the other, line by line.
func ApplyForegroundGrad(input string, from, to color.Color) string {
	a, aok := colorful.MakeColor(from)
	b, bok := colorful.MakeColor(to)
	if !aok || !bok {
		return input
	}

	lines := strings.Split(input, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = gradLine(line, a, b)
	}
	return strings.Join(out, "\n")
}

func gradLine(line string, from, to colorful.Color) string {
	clusters := []string{}
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	if len(clusters) == 0 {
		return line
	}

	var sb strings.Builder
	for i, cl := range clusters {
		t := 0.0
		if len(clusters) > 1 {
			t = float64(i) / float64(len(clusters)-1)
		}
		c := from.BlendLuv(to, t)
		sb.WriteString(lipgloss.NewStyle().Foreground(c).Render(cl))
	}
	return sb.String()
}
