// Package engine implements the falling-block game state: board, shapes,
// collision, rotation, gravity, line clearing and level progression.
// It has no terminal or timing dependencies; callers drive it one operation at a time.
package engine

import "strings"

// MaxShapeSize is the storage bound of a shape matrix in both dimensions.
const MaxShapeSize = 5

// Cell is a single board or shape cell. Empty marks an unfilled cell;
// any other value is the marker of the piece that filled it.
type Cell rune

// Empty is the unfilled cell value.
const Empty Cell = 0

// Shape is a piece template: a fixed matrix of cells with an explicit
// bounding box. Only Data[row][col] with row < H and col < W is meaningful.
type Shape struct {
	Data [MaxShapeSize][MaxShapeSize]Cell
	W    int
	H    int
}

// NewShape builds a shape from row strings. A space is an empty cell,
// anything else is a filled cell carrying that rune as its marker.
// The bounding box is w×h regardless of the row lengths.
func NewShape(w, h int, rows ...string) Shape {
	s := Shape{W: w, H: h}
	for y, row := range rows {
		if y >= MaxShapeSize {
			break
		}
		for x, r := range []rune(row) {
			if x >= MaxShapeSize {
				break
			}
			if r != ' ' {
				s.Data[y][x] = Cell(r)
			}
		}
	}
	return s
}

// Filled reports whether the cell at (row, col) inside the bounding box is filled.
func (s Shape) Filled(row, col int) bool {
	if row < 0 || row >= s.H || col < 0 || col >= s.W {
		return false
	}
	return s.Data[row][col] != Empty
}

// Area returns the number of filled cells.
func (s Shape) Area() int {
	n := 0
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if s.Data[y][x] != Empty {
				n++
			}
		}
	}
	return n
}

// Marker returns the rune of the first filled cell, or Empty.
func (s Shape) Marker() Cell {
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if s.Data[y][x] != Empty {
				return s.Data[y][x]
			}
		}
	}
	return Empty
}

// String renders the bounding box, one line per row, spaces for empty cells.
func (s Shape) String() string {
	var sb strings.Builder
	for y := 0; y < s.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.W; x++ {
			if c := s.Data[y][x]; c != Empty {
				sb.WriteRune(rune(c))
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}

// Rotate returns the shape turned 90° clockwise. Width and height swap and
// new[x][y] = old[H-1-y][x]. The receiver is left untouched.
func Rotate(s Shape) Shape {
	r := Shape{W: s.H, H: s.W}
	for x := 0; x < s.W; x++ {
		for y := 0; y < s.H; y++ {
			r.Data[x][y] = s.Data[s.H-1-y][x]
		}
	}
	return r
}
