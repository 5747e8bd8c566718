package cnf

import (
	"math"

	"github.com/dotypuzzle/doty/pkg/puzzle"
)

// Allocator owns the variable numbering for one puzzle. The core block
// encodes "piece p covers cell (r,c)" as a bijection onto 1..P·H·W,
// ordered by (piece, row, column); auxiliary variables are minted on
// demand above the core block. An Allocator is not safe for concurrent
// use.
type Allocator struct {
	pieces int
	height int
	width  int
	next   int
}

// NewAllocator returns an Allocator for the given number of pieces on
// an height×width board, with no auxiliaries minted yet.
func NewAllocator(pieces, height, width int) *Allocator {
	return &Allocator{
		pieces: pieces,
		height: height,
		width:  width,
		next:   pieces*height*width + 1,
	}
}

// PieceAt returns the core variable asserting that piece index p
// covers cell c.
func (a *Allocator) PieceAt(p int, c puzzle.Cell) int {
	return 1 + (c.Row*a.width + c.Col) + p*a.width*a.height
}

// PieceCell inverts PieceAt, reporting false for variables outside the
// core block.
func (a *Allocator) PieceCell(v int) (int, puzzle.Cell, bool) {
	if v < 1 || v > a.CoreCount() {
		return 0, puzzle.Cell{}, false
	}
	idx := v - 1
	cells := a.width * a.height
	return idx / cells, puzzle.Cell{Row: (idx % cells) / a.width, Col: idx % a.width}, true
}

// Aux mints a fresh auxiliary variable. The first auxiliary is
// CoreCount()+1 and later ones count up from there.
func (a *Allocator) Aux() int {
	if a.next == math.MaxInt {
		panic("cnf: variable space exhausted")
	}
	v := a.next
	a.next++
	return v
}

// CoreCount returns the size of the core block.
func (a *Allocator) CoreCount() int {
	return a.pieces * a.height * a.width
}

// Count returns the largest variable handed out so far.
func (a *Allocator) Count() int {
	return a.next - 1
}

func (a *Allocator) Pieces() int { return a.pieces }
func (a *Allocator) Height() int { return a.height }
func (a *Allocator) Width() int  { return a.width }
