package tetris

// Field dimensions. The board size is fixed.
const (
	Width       = 10
	Height      = 20
	PreviewSize = 4
)

// CellState is the content of one board cell.
type CellState uint8

const (
	Empty    CellState = iota
	Settled            // Locked block of a landed piece
	Volatile           // Part of a completed row waiting to be cleared
	CellI
	CellO
	CellT
	CellS
	CellZ
	CellJ
	CellL
)

// IsShape reports whether c holds a cell of the falling piece.
func (c CellState) IsShape() bool {
	return c >= CellI && c <= CellL
}

// String returns a short name for the cell state.
func (c CellState) String() string {
	switch c {
	case Empty:
		return "empty"
	case Settled:
		return "settled"
	case Volatile:
		return "volatile"
	}
	if c.IsShape() {
		return Shape(c - CellI).String()
	}
	return "unknown"
}

// field is implemented by the board and the preview so pieces can be
// stamped onto either.
type field interface {
	inBounds(x, y int) bool
	set(x, y int, c CellState)
}

// Board is the Width x Height playfield stored row-major in one array.
// It is a value type: copying a Board copies every cell.
type Board struct {
	cells [Width * Height]CellState
}

// At returns the cell at (x, y). Out-of-bounds reads return Empty.
func (b *Board) At(x, y int) CellState {
	if !b.inBounds(x, y) {
		return Empty
	}
	return b.cells[y*Width+x]
}

// Clear empties every cell.
func (b *Board) Clear() {
	b.cells = [Width * Height]CellState{}
}

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

func (b *Board) set(x, y int, c CellState) {
	if b.inBounds(x, y) {
		b.cells[y*Width+x] = c
	}
}

// fillRow overwrites row y with c.
func (b *Board) fillRow(y int, c CellState) {
	for x := 0; x < Width; x++ {
		b.cells[y*Width+x] = c
	}
}

// rowIs reports whether every cell of row y equals c.
func (b *Board) rowIs(y int, c CellState) bool {
	for x := 0; x < Width; x++ {
		if b.cells[y*Width+x] != c {
			return false
		}
	}
	return true
}

// shiftDown moves rows [0, end) down by n rows in one bulk copy and
// empties the top n rows.
func (b *Board) shiftDown(end, n int) {
	copy(b.cells[n*Width:end*Width], b.cells[:(end-n)*Width])
	for i := 0; i < n*Width; i++ {
		b.cells[i] = Empty
	}
}

// Preview is the small grid that shows the upcoming shape.
type Preview struct {
	cells [PreviewSize * PreviewSize]CellState
}

// At returns the preview cell at (x, y).
func (p *Preview) At(x, y int) CellState {
	if !p.inBounds(x, y) {
		return Empty
	}
	return p.cells[y*PreviewSize+x]
}

// Clear empties the preview.
func (p *Preview) Clear() {
	p.cells = [PreviewSize * PreviewSize]CellState{}
}

func (p *Preview) inBounds(x, y int) bool {
	return x >= 0 && x < PreviewSize && y >= 0 && y < PreviewSize
}

func (p *Preview) set(x, y int, c CellState) {
	if p.inBounds(x, y) {
		p.cells[y*PreviewSize+x] = c
	}
}
