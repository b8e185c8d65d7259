package tetris

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellWidth = 2 // screen columns per board cell
	hudHeight = 1
)

// markerColors maps each catalog marker to its display color.
var markerColors = map[engine.Cell]core.Color{
	'#': core.ColorYellow,
	'X': core.ColorMagenta,
	'@': core.ColorCyan,
	'O': core.ColorOrange,
	'&': core.ColorBlue,
	'Z': core.ColorRed,
}

// MarkerColor returns the color a piece marker is drawn in.
func MarkerColor(c engine.Cell) core.Color {
	if color, ok := markerColors[c]; ok {
		return color
	}
	return core.ColorWhite
}

// Render draws the HUD, the bordered board with the active piece and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.eng == nil {
		return
	}

	minW, minH := g.MinSize()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d", minW, minH))
		return
	}

	board := g.boardRect(dst)
	g.renderHUD(dst, board)
	dst.DrawBox(board)
	g.renderCells(dst, board)

	switch {
	case g.eng.GameOver():
		g.renderOverlay(dst, board, "GAME OVER", fmt.Sprintf("Score: %d", g.eng.Score()), "R restart  Q quit")
	case g.paused:
		g.renderOverlay(dst, board, "PAUSED", "P to continue")
	}
}

// boardRect returns the bordered board area, centered horizontally below the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	b := g.eng.Board()
	w := b.Width()*cellWidth + 2
	h := b.Height() + 2
	x := max((dst.Width()-w)/2, 0)
	return core.NewRect(x, hudHeight, w, h)
}

// renderHUD draws the status line above the board.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	hud := HUD(g.eng.Level(), g.eng.Score(), g.eng.Lines())
	x := board.X
	if utf8.RuneCountInString(hud) > board.W {
		x = max((dst.Width()-utf8.RuneCountInString(hud))/2, 0)
	}
	dst.DrawText(x, 0, hud)
}

// HUD formats the status line.
func HUD(level, score, lines int) string {
	return fmt.Sprintf("[LEVEL: %d | SCORE: %d | LINES: %d]", level, score, lines)
}

// renderCells draws the stack and the active piece inside the border.
func (g *Game) renderCells(dst *core.Screen, board core.Rect) {
	b := g.eng.Board()
	s, px, py, ok := g.eng.Piece()
	piece := core.NewRect(px, py, s.W, s.H)

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			c := b.At(x, y)
			if ok && piece.Contains(x, y) && s.Filled(y-py, x-px) {
				c = s.Data[y-py][x-px]
			}

			sx := board.X + 1 + x*cellWidth
			sy := board.Y + 1 + y
			if c == engine.Empty {
				dst.SetColored(sx+1, sy, '.', core.ColorGray)
				continue
			}
			color := MarkerColor(c)
			dst.SetColored(sx, sy, rune(c), color)
			dst.SetColored(sx+1, sy, rune(c), color)
		}
	}
}

// renderOverlay draws a boxed message centered on the board.
func (g *Game) renderOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}

	cx, cy := board.Center()
	box := core.CenterAt(cx, cy, min(maxLen+4, dst.Width()), len(lines)+2)

	dst.Fill(box.Inset(1))
	dst.DrawBox(box)

	for i, l := range lines {
		x := box.X + (box.W-utf8.RuneCountInString(l))/2
		dst.DrawColoredText(x, box.Y+1+i, l, core.ColorBrightWhite)
	}
}
