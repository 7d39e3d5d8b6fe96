package tetris

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/Tranquil-fella/brick-game/internal/core"
)

// lifecycleCommand is what a lifecycle action resolves to in a given phase.
type lifecycleCommand uint8

const (
	cmdNone lifecycleCommand = iota
	cmdStart
	cmdPause
	cmdTerminate
)

// lifecycleTable resolves [phase][action] for Start, Pause and Terminate.
// Combinations that map to cmdNone are ignored.
var lifecycleTable = [phaseCount][core.FirstMovement]lifecycleCommand{
	PhaseIdle:    {cmdStart, cmdNone, cmdNone},
	PhasePaused:  {cmdNone, cmdPause, cmdTerminate},
	PhaseRunning: {cmdNone, cmdPause, cmdTerminate},
	PhaseEnded:   {cmdNone, cmdNone, cmdTerminate},
}

// SubmitAction handles one player action. Movement actions are queued for
// the tick loop and accepted only while running. Lifecycle actions run
// immediately and may start or stop the worker goroutines. Actions that
// are not valid in the current phase are ignored.
func (e *Engine) SubmitAction(action core.UserAction, hold bool) {
	if !action.Valid() {
		return
	}

	if cmd, ok := commandFor(action, hold); ok {
		e.enqueue(cmd)
		return
	}

	switch e.lifecycleCommand(action) {
	case cmdStart:
		if err := e.Start(); err != nil {
			e.logger.Error("cannot start game", "error", err)
		}
	case cmdPause:
		e.togglePause()
	case cmdTerminate:
		e.Terminate()
	}
}

// lifecycleCommand looks up the command for action in the current phase.
func (e *Engine) lifecycleCommand(action core.UserAction) lifecycleCommand {
	e.mu.Lock()
	phase := e.phase
	e.mu.Unlock()
	return lifecycleTable[phase][action]
}

// enqueue pushes a movement command if the game is running.
func (e *Engine) enqueue(cmd Command) {
	if cmd.Move() == MoveNone {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.phase == PhaseRunning {
		e.queue.Push(cmd)
	}
}

// Start initializes a new game and launches the tick loop and the
// autoshift scheduler. It fails with ErrNotIdle if a game is in progress
// and with ErrInit if the configuration cannot drive the loops; in both
// cases nothing is started.
func (e *Engine) Start() error {
	e.lifecycle.Lock()
	defer e.lifecycle.Unlock()

	if err := e.cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInit, err)
	}
	best := e.keeper.ReadBest()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseIdle {
		return ErrNotIdle
	}

	e.resetLocked()
	e.rng = rand.New(rand.NewSource(e.seed()))
	e.highScore = best
	e.speed = 1
	e.level = 1
	e.refillPreview()
	piece := e.spawn()

	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.setPhase(PhaseRunning)

	e.workers.Add(2)
	go e.tickLoop(ctx, piece)
	go e.autoshiftLoop(ctx)

	e.logger.Debug("game started", "best", best)
	return nil
}

// togglePause switches between Running and Paused. Leaving Paused wakes
// both workers.
func (e *Engine) togglePause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.phase {
	case PhaseRunning:
		e.paused = true
		e.setPhase(PhasePaused)
	case PhasePaused:
		e.paused = false
		e.setPhase(PhaseRunning)
	}
}

// Terminate ends the current game, waits for both workers to exit and
// resets the engine to idle. It does nothing when the engine is idle.
func (e *Engine) Terminate() {
	e.lifecycle.Lock()
	defer e.lifecycle.Unlock()

	e.mu.Lock()
	if e.phase == PhaseIdle {
		e.mu.Unlock()
		return
	}
	e.paused = false
	e.setPhase(PhaseEnded)
	cancel := e.cancel
	e.cancel = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.workers.Wait()

	e.mu.Lock()
	e.resetLocked()
	e.setPhase(PhaseIdle)
	e.mu.Unlock()
	e.logger.Debug("game terminated")
}
