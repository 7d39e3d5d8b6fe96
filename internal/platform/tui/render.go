package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tranquil-fella/brick-game/internal/core"
	"github.com/Tranquil-fella/brick-game/internal/tetris"
)

// Screen layout. Every board cell is two characters wide.
const (
	fieldW      = tetris.Width*2 + 2
	fieldH      = tetris.Height + 2
	panelX      = fieldW + 1
	previewBoxW = tetris.PreviewSize*2 + 2
	previewBoxH = tetris.PreviewSize + 2
	panelW      = 16

	// LayoutWidth and LayoutHeight are the screen size the game needs.
	LayoutWidth  = panelX + panelW
	LayoutHeight = fieldH
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

// cellColors maps shape cells to their tetromino color.
var cellColors = map[tetris.CellState]core.Color{
	tetris.Settled:  core.ColorGray,
	tetris.Volatile: core.ColorBrightWhite,
	tetris.CellI:    core.ColorCyan,
	tetris.CellO:    core.ColorYellow,
	tetris.CellT:    core.ColorMagenta,
	tetris.CellS:    core.ColorGreen,
	tetris.CellZ:    core.ColorRed,
	tetris.CellJ:    core.ColorBlue,
	tetris.CellL:    core.ColorOrange,
}

// drawCell draws one two-character board cell at screen position (x, y).
func drawCell(s *core.Screen, x, y int, c tetris.CellState) {
	switch c {
	case tetris.Empty:
		s.Set(x, y, ' ', core.ColorGray)
		s.Set(x+1, y, '.', core.ColorGray)
	case tetris.Volatile:
		s.Set(x, y, '▓', cellColors[c])
		s.Set(x+1, y, '▓', cellColors[c])
	default:
		s.Set(x, y, '[', cellColors[c])
		s.Set(x+1, y, ']', cellColors[c])
	}
}

// DrawGame draws the field, the preview and the stats panel for v.
func DrawGame(s *core.Screen, v tetris.GameView) {
	s.Clear()

	s.DrawBox(0, 0, fieldW, fieldH, core.ColorDefault)
	for y := 0; y < tetris.Height; y++ {
		for x := 0; x < tetris.Width; x++ {
			drawCell(s, 1+x*2, 1+y, v.Field.At(x, y))
		}
	}

	s.DrawBox(panelX, 0, previewBoxW, previewBoxH, core.ColorDefault)
	s.DrawText(panelX+2, 0, "NEXT", core.ColorDefault)
	for y := 0; y < tetris.PreviewSize; y++ {
		for x := 0; x < tetris.PreviewSize; x++ {
			if c := v.Next.At(x, y); c != tetris.Empty {
				drawCell(s, panelX+1+x*2, 1+y, c)
			}
		}
	}

	stats := []struct {
		label string
		value int
	}{
		{"SCORE", v.Score},
		{"BEST", v.HighScore},
		{"LEVEL", v.Level},
		{"SPEED", v.Speed},
	}
	y := previewBoxH + 1
	for _, st := range stats {
		s.DrawText(panelX, y, st.label, core.ColorGray)
		s.DrawText(panelX, y+1, fmt.Sprintf("%d", st.value), core.ColorBrightWhite)
		y += 3
	}

	for i, line := range statusLines(v) {
		s.DrawText(panelX, y+i, line, core.ColorYellow)
	}
}

// statusLines describes what the player can do in the current phase.
func statusLines(v tetris.GameView) []string {
	switch v.Phase {
	case tetris.PhaseIdle:
		return []string{"ENTER to start"}
	case tetris.PhasePaused:
		return []string{"PAUSED", "P to resume"}
	case tetris.PhaseEnded:
		return []string{"GAME OVER", "Q to reset"}
	default:
		return nil
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
