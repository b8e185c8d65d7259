package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one screen position: a rune and its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a fixed-size cell buffer, row-major in a single slice.
// Games draw into it; frontends copy it to the terminal.
// Writes outside the buffer are dropped and reads outside it return a blank cell.
type Screen struct {
	width, height int
	cells         []Cell
}

// NewScreen creates a blank width×height buffer. Negative sizes become 0.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the number of columns.
func (s *Screen) Width() int { return s.width }

// Height returns the number of rows.
func (s *Screen) Height() int { return s.height }

// Resize changes the dimensions. The overlapping top-left area keeps its content.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.cells != nil && width == s.width && height == s.height {
		return
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blank
	}
	for y := 0; y < min(height, s.height); y++ {
		n := min(width, s.width)
		copy(cells[y*width:y*width+n], s.cells[y*s.width:y*s.width+n])
	}

	s.width, s.height, s.cells = width, height, cells
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set writes r in the default color.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored writes r in color c.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y).
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y).
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blank
	}
	return s.cells[y*s.width+x]
}

// Fill blanks the area covered by r.
func (s *Screen) Fill(r Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColored(x, y, ' ', ColorDefault)
		}
	}
}

// DrawText writes text left to right from (x, y), one rune per column.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawColoredText(x, y, text, ColorDefault)
}

// DrawColoredText writes text in color c.
func (s *Screen) DrawColoredText(x, y int, text string, c Color) {
	col := x
	for _, r := range text {
		s.SetColored(col, y, r, c)
		col++
	}
}

// DrawTextCentered writes text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-utf8.RuneCountInString(text))/2, y, text)
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, bottom, '─')
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, '│')
		s.Set(right, y, '│')
	}
	s.Set(r.X, r.Y, '┌')
	s.Set(right, r.Y, '┐')
	s.Set(r.X, bottom, '└')
	s.Set(right, bottom, '┘')
}

// Row returns row y as plain text, or spaces if y is out of range.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the buffer as plain text, rows joined by \n.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
