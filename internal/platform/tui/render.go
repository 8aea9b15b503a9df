package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/robojobs/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorVoid:    lipgloss.NewStyle(),
	core.ColorFloor:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorWall:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorDoor:    lipgloss.NewStyle().Foreground(lipgloss.Color("136")),
	core.ColorFrame:   lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorMark:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorHero:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorHeart:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorGoblin:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorError:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorHint:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// Style returns the lipgloss style for a palette entry.
func Style(c core.Color) lipgloss.Style {
	style, ok := colorStyles[c]
	if !ok {
		return colorStyles[core.ColorDefault]
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
