package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// colorStyles maps core.Color to lipgloss styles (ANSI 256 palette).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorRed:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorGreen:      lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	core.ColorYellow:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorBlue:       lipgloss.NewStyle().Foreground(lipgloss.Color("21")),
	core.ColorCyan:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorWhite:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorBrightBlue: lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	core.ColorPink:       lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	core.ColorOrange:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// styleFor returns the style for a color, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

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

			// Blank runs need no escape codes
			if color == core.ColorDefault || strings.TrimSpace(run.String()) == "" {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
