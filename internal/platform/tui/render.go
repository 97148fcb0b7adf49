package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/arenablitz/arcade/internal/core"
)

// styleKey identifies a foreground/background pair.
type styleKey struct {
	fg, bg core.Color
}

// styleCache maps color pairs to lipgloss styles. Styles are built on
// first use since games mix arbitrary palette colors.
var styleCache sync.Map // styleKey -> lipgloss.Style

// cellStyle returns the style for a color pair.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	k := styleKey{fg: fg, bg: bg}
	if s, ok := styleCache.Load(k); ok {
		return s.(lipgloss.Style)
	}

	s := lipgloss.NewStyle()
	if i, ok := fg.Index(); ok {
		s = s.Foreground(lipgloss.Color(strconv.Itoa(int(i))))
	}
	if i, ok := bg.Index(); ok {
		s = s.Background(lipgloss.Color(strconv.Itoa(int(i))))
	}
	styleCache.Store(k, s)
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Fg == core.ColorDefault && start.Bg == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(cellStyle(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
