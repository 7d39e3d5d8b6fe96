package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tranquil-fella/brick-game/internal/core"
)

// holdWindow is how soon a repeated key must arrive to count as held.
const holdWindow = 160 * time.Millisecond

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Start     key.Binding
	Pause     key.Binding
	Terminate key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	HardDrop  key.Binding
	Rotate    key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Rotate, k.HardDrop, k.Terminate}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down, k.HardDrop, k.Rotate},
		{k.Start, k.Pause, k.Terminate, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "z"),
			key.WithHelp("p", "pause"),
		),
		Terminate: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "end game"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "drop (hold: hard)"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "hard drop"),
		),
		Rotate: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "rotate"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Action translates a key message to an engine action.
// Returns false when the key is not bound to an action.
func (k KeyMap) Action(msg tea.KeyMsg) (action core.UserAction, forceHold bool, ok bool) {
	switch {
	case key.Matches(msg, k.Start):
		return core.ActionStart, false, true
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false, true
	case key.Matches(msg, k.Terminate):
		return core.ActionTerminate, false, true
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false, true
	case key.Matches(msg, k.Right):
		return core.ActionRight, false, true
	case key.Matches(msg, k.Up):
		return core.ActionUp, false, true
	case key.Matches(msg, k.Down):
		return core.ActionDown, false, true
	case key.Matches(msg, k.HardDrop):
		return core.ActionDown, true, true
	case key.Matches(msg, k.Rotate):
		return core.ActionAction, false, true
	}
	return 0, false, false
}

// holdDetector reports an action as held when the same action arrives
// again within the window, which is what terminal key repeat produces.
type holdDetector struct {
	window time.Duration
	last   core.UserAction
	at     time.Time
	seen   bool
}

func (h *holdDetector) observe(a core.UserAction, now time.Time) bool {
	held := h.seen && h.last == a && now.Sub(h.at) <= h.window
	h.last, h.at, h.seen = a, now, true
	return held
}
