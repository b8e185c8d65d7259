package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Text returns the classic plain-text frame: a status line, a ~ border above
// and below, ! on both sides and two columns per cell (marker, space).
// Lines are separated by \n.
func (g *Game) Text() string {
	if g.eng == nil {
		return ""
	}
	b := g.eng.Board()
	s, px, py, ok := g.eng.Piece()
	border := strings.Repeat("~", b.Width()*cellWidth+2)

	var sb strings.Builder
	sb.WriteString(StatusLine(g.eng.Level(), g.eng.Score()))
	sb.WriteByte('\n')
	sb.WriteString(border)
	sb.WriteByte('\n')

	for y := 0; y < b.Height(); y++ {
		sb.WriteByte('!')
		for x := 0; x < b.Width(); x++ {
			c := b.At(x, y)
			if ok && s.Filled(y-py, x-px) {
				c = s.Data[y-py][x-px]
			}
			if c == engine.Empty {
				sb.WriteByte(' ')
			} else {
				sb.WriteRune(rune(c))
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("!\n")
	}

	sb.WriteString(border)
	return sb.String()
}

// StatusLine formats the plain-text status line.
func StatusLine(level, score int) string {
	return fmt.Sprintf("[LEVEL: %d | SCORE: %d]", level, score)
}
