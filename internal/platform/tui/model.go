package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Tranquil-fella/brick-game/internal/core"
	"github.com/Tranquil-fella/brick-game/internal/storage"
	"github.com/Tranquil-fella/brick-game/internal/tetris"
)

// Game is the part of the engine the front-end drives.
type Game interface {
	SubmitAction(action core.UserAction, hold bool)
	Snapshot() tetris.GameView
	Terminate()
}

// ScoreRecorder stores finished games.
type ScoreRecorder interface {
	SaveScore(gameID string, score, level int) (int64, error)
}

// Model is the Bubble Tea model for the game screen.
type Model struct {
	game     Game
	scores   ScoreRecorder
	logger   *log.Logger
	config   core.RuntimeConfig
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	holds    *holdDetector
	now      func() time.Time
	view     tetris.GameView
	quitting bool

	lastLevel  int
	scoreSaved bool // Whether the current finished game has been recorded
}

// NewModel creates a model driving game. scores and logger may be nil.
func NewModel(game Game, scores ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:   game,
		scores: scores,
		logger: logger,
		config: cfg,
		screen: core.NewScreen(LayoutWidth, LayoutHeight),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		holds:  &holdDetector{window: holdWindow},
		now:    time.Now,
		view:   game.Snapshot(),
	}
}

// Init starts the redraw loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.RefreshFPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.refresh()
		return m, tickCmd(m.config.RefreshFPS)
	}

	return m, nil
}

// handleKey forwards bound keys to the engine.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.game.Terminate()
		m.quitting = true
		return m, tea.Quit
	}

	action, forceHold, ok := m.keys.Action(msg)
	if !ok {
		return m, nil
	}

	// Terminate with nothing to terminate leaves the program.
	if action == core.ActionTerminate && m.view.Phase == tetris.PhaseIdle {
		m.quitting = true
		return m, tea.Quit
	}

	hold := m.holds.observe(action, m.now()) || forceHold
	m.game.SubmitAction(action, hold)
	m.refresh()
	return m, nil
}

// refresh pulls a new snapshot and records a finished game once.
func (m *Model) refresh() {
	m.view = m.game.Snapshot()

	switch m.view.Phase {
	case tetris.PhaseRunning, tetris.PhasePaused:
		m.lastLevel = m.view.Level
		m.scoreSaved = false
	case tetris.PhaseEnded:
		m.saveScore()
	default:
		m.scoreSaved = false
	}
}

func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.scores == nil || m.view.Score <= 0 {
		return
	}
	if _, err := m.scores.SaveScore(storage.GameTetris, m.view.Score, m.lastLevel); err != nil {
		m.logger.Warn("cannot save score", "score", m.view.Score, "error", err)
		return
	}
	m.logger.Info("score saved", "score", m.view.Score, "level", m.lastLevel)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawGame(m.screen, m.view)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program on the alternate screen and blocks
// until the player quits. The engine is terminated on exit.
func Run(game Game, scores ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, scores, logger, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	game.Terminate()
	return err
}
