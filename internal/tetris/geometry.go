package tetris

// CanPlace reports whether p fits on b: every block is inside the side
// walls and above the floor, and blocks inside the visible board land on
// empty cells. Blocks above the top edge are always allowed.
func CanPlace(p Piece, b *Board) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= Width || c.Y >= Height {
			return false
		}
		if c.Y >= 0 && b.At(c.X, c.Y) != Empty {
			return false
		}
	}
	return true
}

// kickRotation tries to place the rotated candidate, shifting it sideways
// when the direct pose is blocked. On success candidate holds the accepted
// pose.
//
// The retries are a small fixed table rather than a full kick system:
// one column right (two for I entering 90 degrees), then one column left of
// the original position (two for I returning to 0 degrees).
func kickRotation(candidate *Piece, b *Board) bool {
	if CanPlace(*candidate, b) {
		return true
	}

	origin := candidate.Center

	candidate.Center.X = origin.X + 1
	if candidate.Shape == ShapeI && candidate.Rotation == Angle90 {
		candidate.Center.X++
	}
	if CanPlace(*candidate, b) {
		return true
	}

	candidate.Center.X = origin.X - 1
	if candidate.Shape == ShapeI && candidate.Rotation == Angle0 {
		candidate.Center.X--
	}
	if CanPlace(*candidate, b) {
		return true
	}

	candidate.Center = origin
	return false
}

// stamp writes c into every visible cell of p.
func stamp(f field, p Piece, c CellState) {
	for _, pt := range p.Cells() {
		if pt.Y >= 0 {
			f.set(pt.X, pt.Y, c)
		}
	}
}

// removePiece clears the piece's footprint.
func removePiece(f field, p Piece) {
	stamp(f, p, Empty)
}

// placePiece draws the piece with its shape color.
func placePiece(f field, p Piece) {
	stamp(f, p, p.Shape.Cell())
}

// settlePiece locks the piece into the board.
func settlePiece(f field, p Piece) {
	stamp(f, p, Settled)
}
