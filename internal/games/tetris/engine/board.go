package engine

// Board is a fixed-size grid of cells stored row-major in one slice.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	b.Clear()
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Clear empties every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
}

// inside reports whether (x, y) addresses a stored cell.
func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y), or Empty outside the board.
func (b *Board) At(x, y int) Cell {
	if !b.inside(x, y) {
		return Empty
	}
	return b.cells[y*b.width+x]
}

// IsOccupied reports whether (x, y) is blocked. Columns outside the board
// and rows at or below the bottom edge are blocked; rows above the top
// edge are open since the board does not store them.
func (b *Board) IsOccupied(x, y int) bool {
	if x < 0 || x >= b.width || y >= b.height {
		return true
	}
	if y < 0 {
		return false
	}
	return b.cells[y*b.width+x] != Empty
}

// Set writes a marker at (x, y). Writes outside the board are dropped.
func (b *Board) Set(x, y int, c Cell) {
	if !b.inside(x, y) {
		return
	}
	b.cells[y*b.width+x] = c
}

// IsRowFull reports whether every cell in row y is filled.
func (b *Board) IsRowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	row := b.cells[y*b.width : (y+1)*b.width]
	for _, c := range row {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearRow removes row y and shifts every row above it down by one.
// Row 0 becomes empty.
func (b *Board) ClearRow(y int) {
	if y < 0 || y >= b.height {
		return
	}
	// Rows 0..y-1 move to 1..y; copy handles the overlap.
	copy(b.cells[b.width:(y+1)*b.width], b.cells[:y*b.width])
	for x := 0; x < b.width; x++ {
		b.cells[x] = Empty
	}
}

// FilledCount returns the number of non-empty cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		width:  b.width,
		height: b.height,
		cells:  make([]Cell, len(b.cells)),
	}
	copy(c.cells, b.cells)
	return c
}

// Rows returns the board as strings, one per row, with spaces for empty cells.
func (b *Board) Rows() []string {
	rows := make([]string, b.height)
	line := make([]rune, b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if c := b.cells[y*b.width+x]; c != Empty {
				line[x] = rune(c)
			} else {
				line[x] = ' '
			}
		}
		rows[y] = string(line)
	}
	return rows
}
