package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arkanoid/internal/core"
)

// cellStyles holds one style per core.Color: the brick row palette, the
// white paddle and the bold ball.
var cellStyles = [...]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

func cellStyle(c core.Color) lipgloss.Style {
	if int(c) >= len(cellStyles) {
		return cellStyles[core.ColorDefault]
	}
	return cellStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string, one escape
// sequence per run of same-colored cells. A brick is a single run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		run = writeRow(&sb, s, y, run)
	}
	return sb.String()
}

// writeRow renders row y into sb, reusing run as scratch space.
func writeRow(sb *strings.Builder, s *core.Screen, y int, run []rune) []rune {
	for x := 0; x < s.Width(); {
		color := s.GetCell(x, y).Color
		run = run[:0]
		for ; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				break
			}
			run = append(run, cell.Rune)
		}
		sb.WriteString(cellStyle(color).Render(string(run)))
	}
	return run
}
