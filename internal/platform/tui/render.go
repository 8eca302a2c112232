package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tiny-arcade/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{}

func init() {
	for _, c := range []core.Color{
		core.ColorDefault, core.ColorYellow, core.ColorCyan,
		core.ColorWhite, core.ColorBlue, core.ColorGreen,
	} {
		colorStyles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.ANSI()))
	}
}

var panelBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

// RenderPanel converts a plotted panel to a styled string. Each text row
// covers two pixel rows of the same page, so one palette color per row.
func RenderPanel(s *core.Screen, p core.Palette, border bool) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		style, ok := colorStyles[p.At(y*core.PixelsPerRow)]
		if !ok {
			style = colorStyles[core.ColorDefault]
		}
		sb.WriteString(style.Render(s.Row(y)))
	}

	if !border {
		return sb.String()
	}
	return panelBorder.Render(sb.String())
}
