package solution

import (
	"fmt"
	"strings"

	"github.com/dotypuzzle/doty/pkg/puzzle"
)

// connectors maps the 4-bit "same piece" mask of the cell pairs around
// a grid crossing to the box-drawing rune joining the borders there.
// Bit 0: bottom-left/top-left, bit 1: bottom-right/bottom-left, bit 2:
// top-right/bottom-right, bit 3: top-left/top-right.
var connectors = []rune("╋┣┻┗┫┃┛╹┳┏━╺┓╻╸ ")

// Render draws the solution as box-drawing art. Cell interiors are 3
// characters wide and hold spaces when covered, the right-justified
// label when visible. Borders appear only between cells covered by
// different pieces; tabu cells and everything beyond the board edge
// count as one surrounding virtual piece, so the frame opens up around
// them. The output has 2H+1 lines and ends in a newline.
func (s *Solution) Render() string {
	var b strings.Builder
	height, width := s.board.Height(), s.board.Width()

	for i := 0; i <= height; i++ {
		for j := 0; j <= width; j++ {
			b.WriteRune(s.connector(i, j))
			if j < width {
				if s.samePiece(puzzle.Cell{Row: i - 1, Col: j}, puzzle.Cell{Row: i, Col: j}) {
					b.WriteString("   ")
				} else {
					b.WriteString("━━━")
				}
			}
		}
		if i < height {
			b.WriteString("\n")
			for j := 0; j <= width; j++ {
				if s.samePiece(puzzle.Cell{Row: i, Col: j - 1}, puzzle.Cell{Row: i, Col: j}) {
					b.WriteString(" ")
				} else {
					b.WriteString("┃")
				}
				if j < width {
					b.WriteString(s.text(puzzle.Cell{Row: i, Col: j}))
				}
			}
			b.WriteString("\n")
		}
	}

	// The bottom border line carries the width of one content row in
	// trailing spaces before the final newline.
	b.WriteString(strings.Repeat(" ", width))
	b.WriteString("\n")
	return b.String()
}

// samePiece reports whether two cells merge visually: both covered by
// the same piece, or both part of the virtual piece made of tabu cells
// and the world outside the board. Visible cells merge with nothing.
func (s *Solution) samePiece(c1, c2 puzzle.Cell) bool {
	p1, ok1 := s.pieceAt(c1)
	p2, ok2 := s.pieceAt(c2)
	if ok1 && ok2 && p1 == p2 {
		return true
	}
	return s.virtual(c1) && s.virtual(c2)
}

func (s *Solution) virtual(c puzzle.Cell) bool {
	return !s.board.InBounds(c) || s.board.IsTabu(c)
}

func (s *Solution) connector(i, j int) rune {
	topLeft := puzzle.Cell{Row: i - 1, Col: j - 1}
	topRight := puzzle.Cell{Row: i - 1, Col: j}
	botLeft := puzzle.Cell{Row: i, Col: j - 1}
	botRight := puzzle.Cell{Row: i, Col: j}

	mask := 0
	if s.samePiece(botLeft, topLeft) {
		mask |= 1
	}
	if s.samePiece(botRight, botLeft) {
		mask |= 2
	}
	if s.samePiece(topRight, botRight) {
		mask |= 4
	}
	if s.samePiece(topLeft, topRight) {
		mask |= 8
	}
	return connectors[mask]
}

func (s *Solution) text(c puzzle.Cell) string {
	if s.board.IsTabu(c) {
		return "   "
	}
	if visible, ok := s.cells[c.Row][c.Col].(Visible); ok {
		return fmt.Sprintf("%3s", visible.Label)
	}
	return "   "
}
