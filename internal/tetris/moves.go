package tetris

// Board operations applied by the tick loop. All of them run with e.mu
// held. Each one lifts the piece off the board, tries the new pose and
// stamps whichever pose won back on, so the board is only inconsistent
// inside a single critical section.

// apply performs the movement a command resolves to.
func (e *Engine) apply(cmd Command, p *Piece) {
	switch cmd.Move() {
	case MoveLeft:
		e.shift(p, -1)
	case MoveRight:
		e.shift(p, 1)
	case MoveSoftDrop:
		e.moveDown(p)
	case MoveHardDrop:
		e.hardDrop(p)
	case MoveRotate:
		e.rotatePiece(p)
	}
}

// shift moves the piece dx columns if the target is free.
func (e *Engine) shift(p *Piece, dx int) bool {
	candidate := *p
	candidate.Center.X += dx

	removePiece(&e.board, *p)
	ok := CanPlace(candidate, &e.board)
	if ok {
		*p = candidate
	}
	placePiece(&e.board, *p)
	return ok
}

// rotatePiece turns the piece clockwise using the kick retries.
func (e *Engine) rotatePiece(p *Piece) bool {
	candidate := p.rotated()

	removePiece(&e.board, *p)
	ok := kickRotation(&candidate, &e.board)
	if ok {
		*p = candidate
	}
	placePiece(&e.board, *p)
	return ok
}

// moveDown drops the piece one row. When it cannot move it is settled and
// replaced with the next shape; moveDown then returns false.
func (e *Engine) moveDown(p *Piece) bool {
	candidate := *p
	candidate.Center.Y++

	removePiece(&e.board, *p)
	if CanPlace(candidate, &e.board) {
		*p = candidate
		placePiece(&e.board, *p)
		return true
	}

	settlePiece(&e.board, *p)
	*p = e.spawn()
	return false
}

// hardDrop drops the piece until it settles and discards commands that
// were queued for the piece that just landed.
func (e *Engine) hardDrop(p *Piece) {
	for e.moveDown(p) {
	}
	e.queue.Reset()
}

// spawn takes the previewed shape as the new active piece, refills the
// preview and stamps the piece on the board. A piece that does not fit
// marks the game as blocked out and is left off the board.
func (e *Engine) spawn() Piece {
	p := newPiece(e.next)
	e.refillPreview()

	if !CanPlace(p, &e.board) {
		e.blockedOut = true
		return p
	}
	placePiece(&e.board, p)
	return p
}

// refillPreview picks a random upcoming shape and draws it in the preview.
func (e *Engine) refillPreview() {
	e.next = Shape(e.rng.Intn(int(shapeCount)))
	e.preview.Clear()
	placePiece(&e.preview, Piece{Center: previewCenter, Shape: e.next})
}
