package tetris

import "github.com/Tranquil-fella/brick-game/internal/core"

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL

	shapeCount
)

// Cell returns the board state used to draw this shape.
func (s Shape) Cell() CellState {
	return CellI + CellState(s)
}

func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}

// Angle is a clockwise rotation step of 90 degrees.
type Angle uint8

const (
	Angle0 Angle = iota
	Angle90
	Angle180
	Angle270
)

// pieceCells is the number of blocks in every tetromino.
const pieceCells = 4

// shapeOffsets lists each shape's blocks as {row, column} offsets from the
// rotation center.
var shapeOffsets = [shapeCount][pieceCells][2]int{
	ShapeI: {{0, -1}, {0, 0}, {0, 1}, {0, 2}},
	ShapeO: {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	ShapeT: {{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
	ShapeS: {{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
	ShapeZ: {{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
	ShapeJ: {{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
	ShapeL: {{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
}

// Spawn position of new pieces. Y is above the visible board so a fresh
// piece enters partially hidden.
var spawnCenter = core.Point{X: Width / 2, Y: -1}

// previewCenter is where the upcoming shape is drawn inside the preview.
var previewCenter = core.Point{X: 1, Y: 1}

// Piece is the active, falling tetromino.
type Piece struct {
	Center   core.Point
	Shape    Shape
	Rotation Angle
}

// newPiece returns a shape at the spawn position with no rotation.
func newPiece(s Shape) Piece {
	return Piece{Center: spawnCenter, Shape: s, Rotation: Angle0}
}

// Cells returns the absolute coordinates of the piece's four blocks.
func (p Piece) Cells() [pieceCells]core.Point {
	var cells [pieceCells]core.Point
	for i, off := range shapeOffsets[p.Shape] {
		local := rotate(core.Point{X: off[1], Y: off[0]}, p.Shape, p.Rotation)
		cells[i] = local.Add(p.Center)
	}
	return cells
}

// rotated returns the piece turned one step clockwise. The I shape only
// alternates between 0 and 90 degrees; its other two poses are identical.
func (p Piece) rotated() Piece {
	if p.Shape == ShapeI {
		p.Rotation = (p.Rotation + 1) % 2
	} else {
		p.Rotation = (p.Rotation + 1) % 4
	}
	return p
}

// rotate applies the rotation transform to one local offset.
// The O shape is symmetric and never changes.
func rotate(pt core.Point, s Shape, a Angle) core.Point {
	if s == ShapeO {
		return pt
	}
	switch a {
	case Angle90:
		return core.Point{X: -pt.Y, Y: pt.X}
	case Angle180:
		return core.Point{X: -pt.X, Y: -pt.Y}
	case Angle270:
		return core.Point{X: pt.Y, Y: -pt.X}
	default:
		return pt
	}
}
