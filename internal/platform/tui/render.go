package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris2048/internal/core"
)

// palette maps core.Color to ANSI-256 foreground codes.
var palette = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// colorStyles is built once from palette. Bright colors are bold so that
// high tiles stand out on terminals with a reduced palette.
var colorStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(palette))
	for i, code := range palette {
		s := lipgloss.NewStyle()
		if code != "" {
			s = s.Foreground(lipgloss.Color(code))
		}
		switch core.Color(i) {
		case core.ColorBrightRed, core.ColorBrightGreen, core.ColorBrightYellow,
			core.ColorBrightBlue, core.ColorBrightMagenta, core.ColorBrightCyan, core.ColorBrightWhite:
			s = s.Bold(true)
		}
		styles[i] = s
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(colorStyles) {
		return colorStyles[core.ColorDefault]
	}
	return colorStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
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

			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
