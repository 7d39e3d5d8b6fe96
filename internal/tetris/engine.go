// Package tetris implements a concurrent falling-block game engine.
//
// An Engine owns the board and runs two goroutines while a game is in
// progress: a tick loop that applies queued movement commands and clears
// rows, and an autoshift scheduler that periodically queues a forced drop.
// Callers interact only through SubmitAction and Snapshot, both safe for
// concurrent use.
//
// Every board, queue and phase mutation happens while holding the engine
// mutex, and only the tick loop mutates the board while a game runs.
package tetris

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Tranquil-fella/brick-game/internal/config"
)

var (
	// ErrInit is returned by Start when the engine cannot be initialized.
	// The engine stays idle and no workers are started.
	ErrInit = errors.New("tetris: initialization failed")

	// ErrNotIdle is returned by Start when a game is already in progress.
	ErrNotIdle = errors.New("tetris: game already started")
)

// GameView is a copy of the externally visible game state.
type GameView struct {
	Field     Board
	Next      Preview
	Score     int
	HighScore int
	Level     int
	Speed     int
	Pause     bool
	Phase     Phase
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the timing and scoring configuration.
func WithConfig(cfg config.TetrisConfig) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithScoreKeeper sets where the best score is read from and written to.
func WithScoreKeeper(k ScoreKeeper) Option {
	return func(e *Engine) {
		if k != nil {
			e.keeper = k
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// withClock overrides the time source. Used by tests.
func withClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine is the shared runtime store together with its worker loops.
type Engine struct {
	cfg    config.TetrisConfig
	prog   config.Progression
	keeper ScoreKeeper
	logger *log.Logger
	now    func() time.Time

	// lifecycle serializes Start and Terminate.
	lifecycle sync.Mutex

	mu        sync.Mutex
	pauseCond *sync.Cond
	phase     Phase
	board     Board
	preview   Preview
	next      Shape
	score     int
	highScore int
	level     int
	speed     int
	paused    bool
	queue     CommandQueue
	rng       *rand.Rand

	// Completed rows waiting for the destroy phase.
	marked   bool
	markedAt time.Time
	// The last spawned piece overlapped the stack.
	blockedOut bool

	cancel  context.CancelFunc
	workers sync.WaitGroup

	viewMu   sync.Mutex
	lastView GameView
}

// New creates an idle engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		cfg:    config.DefaultTetrisConfig(),
		keeper: nopKeeper{},
		logger: log.New(io.Discard),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.prog = config.NewProgression(e.cfg)
	e.pauseCond = sync.NewCond(&e.mu)
	e.rng = rand.New(rand.NewSource(1))
	return e
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

// setPhase changes the phase and wakes every goroutine waiting on the
// pause condition so it can re-check. Caller holds e.mu.
func (e *Engine) setPhase(p Phase) {
	if e.phase == p {
		return
	}
	e.logger.Debug("phase changed", "from", e.phase, "to", p)
	e.phase = p
	e.pauseCond.Broadcast()
}

// waitWhilePaused blocks until the phase leaves Paused. Caller holds e.mu.
func (e *Engine) waitWhilePaused() {
	for e.phase == PhasePaused {
		e.pauseCond.Wait()
	}
}

// Snapshot returns a copy of the visible state. It never blocks on the
// engine lock: when the lock is busy the previous snapshot is returned.
func (e *Engine) Snapshot() GameView {
	e.viewMu.Lock()
	defer e.viewMu.Unlock()

	if e.mu.TryLock() {
		e.lastView = e.viewLocked()
		e.mu.Unlock()
	}
	return e.lastView
}

// viewLocked copies the visible state. Caller holds e.mu.
func (e *Engine) viewLocked() GameView {
	return GameView{
		Field:     e.board,
		Next:      e.preview,
		Score:     e.score,
		HighScore: e.highScore,
		Level:     e.level,
		Speed:     e.speed,
		Pause:     e.paused,
		Phase:     e.phase,
	}
}

// resetLocked returns the store to its zero state. Caller holds e.mu.
func (e *Engine) resetLocked() {
	e.board.Clear()
	e.preview.Clear()
	e.next = ShapeI
	e.score = 0
	e.highScore = 0
	e.level = 0
	e.speed = 0
	e.paused = false
	e.queue.Reset()
	e.marked = false
	e.markedAt = time.Time{}
	e.blockedOut = false
}

// seed returns the configured RNG seed or a time-based one.
func (e *Engine) seed() int64 {
	if e.cfg.Seed != 0 {
		return e.cfg.Seed
	}
	return time.Now().UnixNano()
}
