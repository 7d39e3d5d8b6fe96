package tetris

import (
	"testing"

	"github.com/Tranquil-fella/brick-game/internal/core"
)

func TestCanPlace(t *testing.T) {
	var b Board
	b.set(4, 10, Settled)

	tests := []struct {
		name     string
		piece    Piece
		expected bool
	}{
		{"spawn", newPiece(ShapeT), true},
		{"fully above top edge", Piece{Center: core.Point{X: 5, Y: -1}, Shape: ShapeI}, true},
		{"left wall", Piece{Center: core.Point{X: 0, Y: 5}, Shape: ShapeI}, false},
		{"right wall", Piece{Center: core.Point{X: 8, Y: 5}, Shape: ShapeI}, false},
		{"touching right wall", Piece{Center: core.Point{X: 7, Y: 5}, Shape: ShapeI}, true},
		{"floor", Piece{Center: core.Point{X: 4, Y: 19}, Shape: ShapeO}, false},
		{"resting on floor", Piece{Center: core.Point{X: 4, Y: 18}, Shape: ShapeO}, true},
		{"overlaps settled", Piece{Center: core.Point{X: 4, Y: 9}, Shape: ShapeO}, false},
		{"next to settled", Piece{Center: core.Point{X: 5, Y: 9}, Shape: ShapeO}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanPlace(tc.piece, &b); got != tc.expected {
				t.Errorf("CanPlace(%+v) = %v, expected %v", tc.piece, got, tc.expected)
			}
		})
	}
}

func TestRotateTransforms(t *testing.T) {
	pt := core.Point{X: 2, Y: 1}
	tests := []struct {
		angle    Angle
		expected core.Point
	}{
		{Angle0, core.Point{X: 2, Y: 1}},
		{Angle90, core.Point{X: -1, Y: 2}},
		{Angle180, core.Point{X: -2, Y: -1}},
		{Angle270, core.Point{X: 1, Y: -2}},
	}

	for _, tc := range tests {
		if got := rotate(pt, ShapeT, tc.angle); got != tc.expected {
			t.Errorf("rotate(%v, %d) = %v, expected %v", pt, tc.angle, got, tc.expected)
		}
	}
}

func TestORotationIsIdentity(t *testing.T) {
	base := Piece{Center: core.Point{X: 4, Y: 4}, Shape: ShapeO}.Cells()
	for a := Angle0; a <= Angle270; a++ {
		p := Piece{Center: core.Point{X: 4, Y: 4}, Shape: ShapeO, Rotation: a}
		if p.Cells() != base {
			t.Errorf("O cells at angle %d = %v, expected %v", a, p.Cells(), base)
		}
	}

	e := newBareEngine(t)
	p := Piece{Center: core.Point{X: 4, Y: 4}, Shape: ShapeO}
	placePiece(&e.board, p)
	before := e.board
	e.rotatePiece(&p)
	if e.board != before {
		t.Error("rotating O changed the board")
	}
}

func TestIAlternatesTwoPoses(t *testing.T) {
	p := Piece{Center: core.Point{X: 4, Y: 4}, Shape: ShapeI}
	for i, expected := range []Angle{Angle90, Angle0, Angle90, Angle0} {
		p = p.rotated()
		if p.Rotation != expected {
			t.Fatalf("rotation #%d: got angle %d, expected %d", i+1, p.Rotation, expected)
		}
	}

	vertical := Piece{Center: core.Point{X: 4, Y: 4}, Shape: ShapeI, Rotation: Angle90}
	for _, c := range vertical.Cells() {
		if c.X != 4 {
			t.Errorf("vertical I block at %v, expected column 4", c)
		}
	}
}

func TestRotationKicks(t *testing.T) {
	tests := []struct {
		name       string
		piece      Piece
		blocked    []core.Point
		expectedX  int
		expectedOK bool
	}{
		{
			name:       "in place",
			piece:      Piece{Center: core.Point{X: 4, Y: 10}, Shape: ShapeT},
			expectedX:  4,
			expectedOK: true,
		},
		{
			name:       "right off the left wall",
			piece:      Piece{Center: core.Point{X: 0, Y: 10}, Shape: ShapeT},
			expectedX:  1,
			expectedOK: true,
		},
		{
			name:       "left off the right wall",
			piece:      Piece{Center: core.Point{X: 9, Y: 10}, Shape: ShapeT, Rotation: Angle180},
			expectedX:  8,
			expectedOK: true,
		},
		{
			name:       "I entering vertical moves two columns",
			piece:      Piece{Center: core.Point{X: 1, Y: 10}, Shape: ShapeI},
			blocked:    []core.Point{{X: 1, Y: 12}},
			expectedX:  3,
			expectedOK: true,
		},
		{
			name:       "I returning horizontal moves two columns",
			piece:      Piece{Center: core.Point{X: 9, Y: 10}, Shape: ShapeI, Rotation: Angle90},
			expectedX:  7,
			expectedOK: true,
		},
		{
			name:       "no room",
			piece:      Piece{Center: core.Point{X: 0, Y: 10}, Shape: ShapeT},
			blocked:    []core.Point{{X: 2, Y: 10}},
			expectedX:  0,
			expectedOK: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newBareEngine(t)
			for _, pt := range tc.blocked {
				e.board.set(pt.X, pt.Y, Settled)
			}
			p := tc.piece
			placePiece(&e.board, p)

			ok := e.rotatePiece(&p)
			if ok != tc.expectedOK {
				t.Fatalf("rotatePiece() = %v, expected %v", ok, tc.expectedOK)
			}
			if p.Center.X != tc.expectedX {
				t.Errorf("center x = %d, expected %d", p.Center.X, tc.expectedX)
			}
			if !ok && p.Rotation != tc.piece.Rotation {
				t.Errorf("rejected rotation changed angle to %d", p.Rotation)
			}
			for _, c := range p.Cells() {
				if got := e.board.At(c.X, c.Y); got != p.Shape.Cell() {
					t.Errorf("board at %v = %s, expected piece cell", c, got)
				}
			}
		})
	}
}

func TestShiftBlockedByWall(t *testing.T) {
	e := newBareEngine(t)
	p := Piece{Center: core.Point{X: 0, Y: 5}, Shape: ShapeO}
	placePiece(&e.board, p)

	if e.shift(&p, -1) {
		t.Error("shift into the left wall should fail")
	}
	if p.Center.X != 0 {
		t.Errorf("center x = %d after blocked shift", p.Center.X)
	}
	if !e.shift(&p, 1) || p.Center.X != 1 {
		t.Errorf("shift right failed, center %v", p.Center)
	}
	if got := countCells(&e.board, ShapeO.Cell()); got != pieceCells {
		t.Errorf("board holds %d O cells, expected %d", got, pieceCells)
	}
}
