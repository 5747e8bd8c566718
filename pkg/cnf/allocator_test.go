package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotypuzzle/doty/pkg/puzzle"
)

func TestAllocatorCoreBijection(t *testing.T) {
	a := NewAllocator(10, 8, 7)
	require.Equal(t, 560, a.CoreCount())

	seen := make(map[int]bool, a.CoreCount())
	next := 1
	for p := 0; p < a.Pieces(); p++ {
		for row := 0; row < a.Height(); row++ {
			for col := 0; col < a.Width(); col++ {
				cell := puzzle.Cell{Row: row, Col: col}
				v := a.PieceAt(p, cell)
				assert.Equal(t, next, v, "variables must count up by (piece, row, column)")
				assert.False(t, seen[v])
				seen[v] = true
				next++

				gotPiece, gotCell, ok := a.PieceCell(v)
				require.True(t, ok)
				assert.Equal(t, p, gotPiece)
				assert.Equal(t, cell, gotCell)
			}
		}
	}
	assert.Len(t, seen, 560)

	assert.Equal(t, 1, a.PieceAt(0, puzzle.Cell{}))
	assert.Equal(t, 560, a.PieceAt(9, puzzle.Cell{Row: 7, Col: 6}))
}

func TestAllocatorPieceCellRange(t *testing.T) {
	a := NewAllocator(2, 2, 2)
	for _, v := range []int{-1, 0, 9, 10, 100} {
		_, _, ok := a.PieceCell(v)
		assert.False(t, ok, "variable %d is outside the core block", v)
	}
}

func TestAllocatorAux(t *testing.T) {
	a := NewAllocator(10, 8, 7)
	assert.Equal(t, 560, a.Count(), "no auxiliaries minted yet")

	assert.Equal(t, 561, a.Aux())
	assert.Equal(t, 562, a.Aux())
	assert.Equal(t, 563, a.Aux())
	assert.Equal(t, 563, a.Count())
	assert.Equal(t, 560, a.CoreCount(), "minting must not grow the core block")

	_, _, ok := a.PieceCell(561)
	assert.False(t, ok, "auxiliaries have no piece/cell reading")
}
