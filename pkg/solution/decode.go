// Package solution turns SAT models back into board pictures: which
// piece hides which cell, which labels stay visible, and the
// box-drawing rendering of the arrangement.
package solution

import (
	"github.com/dotypuzzle/doty/pkg/cnf"
	"github.com/dotypuzzle/doty/pkg/puzzle"
)

// Content is what a solved board shows at one cell.
type Content interface {
	isContent()
}

// Covered marks a cell hidden under the piece with the given index.
type Covered struct {
	Piece int
}

// Visible marks a cell no piece covers, showing its original label.
type Visible struct {
	Label string
}

func (Covered) isContent() {}
func (Visible) isContent() {}

// Solution is a decoded model: one Content per board cell.
type Solution struct {
	board *puzzle.Board
	cells [][]Content
}

// Decode interprets a model against the board. For every cell the
// lowest piece index whose variable holds wins; under the no-overlap
// constraint there is at most one. Variables absent from the model
// count as false, so partial or even inconsistent models decode
// without panicking.
func Decode(m cnf.Model, board *puzzle.Board, alloc *cnf.Allocator) *Solution {
	cells := make([][]Content, board.Height())
	for row := range cells {
		cells[row] = make([]Content, board.Width())
		for col := range cells[row] {
			cell := puzzle.Cell{Row: row, Col: col}
			cells[row][col] = decodeCell(m, cell, board, alloc)
		}
	}
	return &Solution{board: board, cells: cells}
}

func decodeCell(m cnf.Model, cell puzzle.Cell, board *puzzle.Board, alloc *cnf.Allocator) Content {
	for p := 0; p < alloc.Pieces(); p++ {
		if m.Value(alloc.PieceAt(p, cell)) {
			return Covered{Piece: p}
		}
	}
	return Visible{Label: board.Label(cell)}
}

// Board returns the board the solution was decoded against.
func (s *Solution) Board() *puzzle.Board {
	return s.board
}

// At returns the content of cell c, which must be in bounds.
func (s *Solution) At(c puzzle.Cell) Content {
	return s.cells[c.Row][c.Col]
}

// pieceAt returns the index of the piece covering c, if any. Cells off
// the board are covered by nothing.
func (s *Solution) pieceAt(c puzzle.Cell) (int, bool) {
	if !s.board.InBounds(c) {
		return 0, false
	}
	if covered, ok := s.cells[c.Row][c.Col].(Covered); ok {
		return covered.Piece, true
	}
	return 0, false
}
