package tetris

import "time"

// Completed rows are cleared in two phases so they can be shown for at
// least one snapshot before they disappear: markFilledRows turns full rows
// Volatile, and a later tick runs destroyMarkedRows.

// markFilledRows marks every fully settled row. Caller holds e.mu.
func (e *Engine) markFilledRows(now time.Time) {
	found := false
	for y := 0; y < Height; y++ {
		if e.board.rowIs(y, Settled) {
			e.board.fillRow(y, Volatile)
			found = true
		}
	}
	if found {
		e.marked = true
		e.markedAt = now
	}
}

// destroyMarkedRows removes marked rows once the clear delay has passed and
// returns the reward. Each maximal run of adjacent marked rows is one
// combo, collapsed with a single shift and rewarded on its own; rewards of
// separate runs are summed. Caller holds e.mu.
func (e *Engine) destroyMarkedRows(now time.Time, p *Piece) int {
	if !e.marked || now.Sub(e.markedAt) < e.prog.ClearDelay() {
		return 0
	}
	e.marked = false

	reward := 0
	run := 0
	for y := 0; y <= Height; y++ {
		if y < Height && e.board.rowIs(y, Volatile) {
			run++
			continue
		}
		if run == 0 {
			continue
		}
		// Row indices move under the piece, so lift it off first.
		if !e.blockedOut {
			removePiece(&e.board, *p)
		}
		e.board.shiftDown(y, run)
		if !e.blockedOut {
			placePiece(&e.board, *p)
		}
		reward += e.prog.Reward(run)
		run = 0
	}
	return reward
}
