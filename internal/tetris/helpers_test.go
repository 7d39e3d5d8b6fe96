package tetris

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/Tranquil-fella/brick-game/internal/config"
)

// memKeeper is an in-memory ScoreKeeper.
type memKeeper struct {
	mu     sync.Mutex
	best   int
	writes int
}

func (k *memKeeper) ReadBest() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.best
}

func (k *memKeeper) WriteBest(score int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.best = score
	k.writes++
}

func (k *memKeeper) Writes() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.writes
}

// testConfig returns fast timings so worker loops make progress quickly.
func testConfig() config.TetrisConfig {
	cfg := config.DefaultTetrisConfig()
	cfg.Timing.TickInterval = time.Millisecond
	cfg.Timing.AutoshiftBase = 20 * time.Millisecond
	cfg.Timing.AutoshiftStep = time.Millisecond
	cfg.Timing.AutoshiftFloor = 5 * time.Millisecond
	cfg.Timing.ClearDelay = 0
	cfg.Seed = 42
	return cfg
}

// newBareEngine returns an engine in the running phase without worker
// goroutines, so tests can drive tick directly.
func newBareEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e := New(append([]Option{WithConfig(testConfig())}, opts...)...)
	e.rng = rand.New(rand.NewSource(7))
	e.speed, e.level = 1, 1
	e.phase = PhaseRunning
	e.refillPreview()
	return e
}

// spawnShape makes s the next shape and spawns it.
func spawnShape(e *Engine, s Shape) Piece {
	e.next = s
	return e.spawn()
}

// countCells counts board cells in state c.
func countCells(b *Board, c CellState) int {
	n := 0
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if b.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

// waitFor polls cond until it returns true or the deadline passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(2 * time.Millisecond)
	}
	return cond()
}
