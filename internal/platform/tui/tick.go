// Package tui is the Bubble Tea front-end for the brick game engine.
// It maps key presses to engine actions and redraws from engine snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers a redraw from a fresh snapshot.
type TickMsg time.Time

// tickCmd returns a command that sends a TickMsg after one frame at fps.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 30
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
