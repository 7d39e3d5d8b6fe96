package tui

import (
	"strings"
	"testing"

	"github.com/Tranquil-fella/brick-game/internal/core"
	"github.com/Tranquil-fella/brick-game/internal/tetris"
)

func TestDrawGame(t *testing.T) {
	s := core.NewScreen(LayoutWidth, LayoutHeight)
	v := tetris.GameView{Score: 1500, HighScore: 2000, Level: 3, Speed: 3, Phase: tetris.PhasePaused, Pause: true}

	DrawGame(s, v)
	out := s.String()

	for _, want := range []string{"NEXT", "SCORE", "1500", "BEST", "2000", "LEVEL", "PAUSED"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}

	lines := strings.Split(out, "\n")
	if len(lines) != LayoutHeight {
		t.Fatalf("screen has %d lines, expected %d", len(lines), LayoutHeight)
	}
	if !strings.HasPrefix(lines[0], "┌") || !strings.HasPrefix(lines[LayoutHeight-1], "└") {
		t.Errorf("field frame missing:\n%s", out)
	}
	// Empty field cells render as dots.
	if got := s.GetCell(2, 1).Rune; got != '.' {
		t.Errorf("empty cell rune = %q, expected '.'", got)
	}
}

func TestDrawCell(t *testing.T) {
	tests := []struct {
		cell        tetris.CellState
		left, right rune
		color       core.Color
	}{
		{tetris.Empty, ' ', '.', core.ColorGray},
		{tetris.Settled, '[', ']', core.ColorGray},
		{tetris.Volatile, '▓', '▓', core.ColorBrightWhite},
		{tetris.CellI, '[', ']', core.ColorCyan},
		{tetris.CellL, '[', ']', core.ColorOrange},
	}

	for _, tc := range tests {
		s := core.NewScreen(2, 1)
		drawCell(s, 0, 0, tc.cell)
		l, r := s.GetCell(0, 0), s.GetCell(1, 0)
		if l.Rune != tc.left || r.Rune != tc.right || l.Color != tc.color {
			t.Errorf("drawCell(%s) = %q%q color %d, expected %q%q color %d",
				tc.cell, l.Rune, r.Rune, l.Color, tc.left, tc.right, tc.color)
		}
	}
}

func TestStatusLines(t *testing.T) {
	tests := []struct {
		phase    tetris.Phase
		expected string
	}{
		{tetris.PhaseIdle, "ENTER to start"},
		{tetris.PhasePaused, "PAUSED"},
		{tetris.PhaseEnded, "GAME OVER"},
		{tetris.PhaseRunning, ""},
	}

	for _, tc := range tests {
		got := strings.Join(statusLines(tetris.GameView{Phase: tc.phase}), " ")
		if !strings.HasPrefix(got, tc.expected) {
			t.Errorf("statusLines(%s) = %q, expected prefix %q", tc.phase, got, tc.expected)
		}
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "xy", core.ColorDefault)

	out := RenderScreen(s)
	if !strings.Contains(out, "abcd") || !strings.Contains(out, "xy") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() produced %d newlines, expected 1", strings.Count(out, "\n"))
	}
}
