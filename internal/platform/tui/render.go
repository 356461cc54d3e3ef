package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappyball/internal/core"
)

// colorStyles maps each cell role to a lipgloss style.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorPipe:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorGround:    lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorBall:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorText:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorAlert:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorHighScore: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
}

// styleFor returns the style for a color, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

// renderRow writes one row, grouping adjacent cells of the same color so
// each run costs a single pair of escape sequences.
func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	x := 0
	for x < s.Width() {
		color := s.GetCell(x, y).Color
		run.Reset()
		for ; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				break
			}
			run.WriteRune(cell.Rune)
		}
		sb.WriteString(styleFor(color).Render(run.String()))
	}
}
