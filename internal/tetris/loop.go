package tetris

import (
	"context"
	"time"
)

// tickLoop applies queued commands at a fixed cadence until the game ends.
func (e *Engine) tickLoop(ctx context.Context, piece Piece) {
	defer e.workers.Done()

	for {
		e.mu.Lock()
		e.waitWhilePaused()
		if !e.phase.active() {
			e.mu.Unlock()
			return
		}
		e.tick(e.now(), &piece)
		e.mu.Unlock()

		if !sleep(ctx, e.prog.TickInterval()) {
			return
		}
	}
}

// autoshiftLoop queues a forced soft drop at a speed dependent interval.
// It never touches the board.
func (e *Engine) autoshiftLoop(ctx context.Context) {
	defer e.workers.Done()

	for {
		e.mu.Lock()
		e.waitWhilePaused()
		if !e.phase.active() {
			e.mu.Unlock()
			return
		}
		interval := e.prog.AutoshiftInterval(e.speed)
		e.mu.Unlock()

		if !sleep(ctx, interval) {
			return
		}

		e.mu.Lock()
		if e.phase == PhaseRunning {
			e.queue.Push(softDrop)
		}
		e.mu.Unlock()
	}
}

// tick runs one step of game logic. Caller holds e.mu.
func (e *Engine) tick(now time.Time, p *Piece) {
	e.score += e.destroyMarkedRows(now, p)
	e.adjustSpeed()

	cmd, ok := e.queue.Pop()
	if !ok {
		return
	}
	e.apply(cmd, p)
	e.markFilledRows(now)
	if e.isGameOver() {
		e.endGame()
	}
}

// adjustSpeed derives speed and level from the score.
func (e *Engine) adjustSpeed() {
	e.speed = e.prog.Speed(e.score)
	e.level = e.speed
}

// isGameOver reports whether a settled block reached the top row or the
// last spawned piece had no room.
func (e *Engine) isGameOver() bool {
	if e.blockedOut {
		return true
	}
	for x := 0; x < Width; x++ {
		if e.board.At(x, 0) == Settled {
			return true
		}
	}
	return false
}

// endGame stops the game and records a new best score.
func (e *Engine) endGame() {
	e.setPhase(PhaseEnded)
	e.level = 0
	e.speed = 0
	e.logger.Info("game over", "score", e.score, "best", e.highScore)

	if e.score > e.highScore {
		e.highScore = e.score
		e.keeper.WriteBest(e.score)
		e.logger.Info("new best score", "score", e.score)
	}
}

// sleep waits for d or until ctx is cancelled. It returns false when
// cancelled.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
