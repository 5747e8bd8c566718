package theory

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotypuzzle/doty/pkg/cnf"
	"github.com/dotypuzzle/doty/pkg/puzzle"
)

const tinyBoard = `┏━━━┳━━━┓
┃  a┃  b┃
┣━━━╋━━━┫
┃  c┃  d┃
┗━━━┻━━━┛
`

func tinyPuzzle(t *testing.T) (*puzzle.Board, []puzzle.Piece) {
	t.Helper()
	board, err := puzzle.ParseBoard(tinyBoard)
	require.NoError(t, err)
	return board, []puzzle.Piece{{Name: "I2", Offsets: []puzzle.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}}}}
}

// A 2x2 board with a single domino pins down the entire emission: 4
// placements, selectors 5..8, and with one piece the overlap clauses
// degenerate to nothing.
func TestTheoryTinyBoard(t *testing.T) {
	board, pieces := tinyPuzzle(t)
	a := NewAssembler(board, pieces, DefaultConfig())

	theory, err := a.Theory()
	require.NoError(t, err)

	assert.Equal(t, []cnf.Clause{
		{5, 6, 7, 8},
		{-5, 1}, {-5, 2}, {-5, -3}, {-5, -4},
		{-6, 1}, {-6, 3}, {-6, -2}, {-6, -4},
		{-7, 2}, {-7, 4}, {-7, -1}, {-7, -3},
		{-8, 3}, {-8, 4}, {-8, -1}, {-8, -2},
	}, theory)
	assert.Equal(t, 8, a.Allocator().Count())
	assert.Equal(t, 4, a.Allocator().CoreCount())
}

func TestInstanceTinyBoard(t *testing.T) {
	board, pieces := tinyPuzzle(t)
	a := NewAssembler(board, pieces, DefaultConfig())
	_, err := a.Theory()
	require.NoError(t, err)

	target, ok := board.Locate("b")
	require.True(t, ok)

	assert.Equal(t, []cnf.Clause{
		{-2},
		{1}, {3}, {4},
	}, a.Instance([]puzzle.Cell{target}))
}

func TestFormulaTinyBoardRepeatable(t *testing.T) {
	board, pieces := tinyPuzzle(t)
	a := NewAssembler(board, pieces, DefaultConfig())

	target, ok := board.Locate("d")
	require.True(t, ok)

	first, err := a.Formula([]puzzle.Cell{target})
	require.NoError(t, err)
	second, err := a.Formula([]puzzle.Cell{target})
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("formula changed between calls:\n%s", diff)
	}
	assert.Equal(t, 8, first.Vars, "rebuilding an instance must not mint selectors again")
	assert.Len(t, first.Clauses, 21)
}

func TestSelectorNumberingIgnoresConfig(t *testing.T) {
	board, pieces := tinyPuzzle(t)

	a := NewAssembler(board, pieces, Config{})
	theory, err := a.Theory()
	require.NoError(t, err)
	assert.Empty(t, theory, "no enabled components, no clauses")
	assert.Equal(t, 8, a.Allocator().Count(), "selectors are minted even for an empty configuration")
}

func TestUnplaceablePiece(t *testing.T) {
	board, _ := tinyPuzzle(t)
	pieces := []puzzle.Piece{
		{Name: "I2", Offsets: []puzzle.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}}},
		{Name: "I3", Offsets: []puzzle.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}}},
	}
	a := NewAssembler(board, pieces, DefaultConfig())

	_, err := a.Theory()
	require.Error(t, err)
	var unplaceable UnplaceablePiece
	require.ErrorAs(t, err, &unplaceable)
	assert.Equal(t, "I3", string(unplaceable))
	assert.Contains(t, err.Error(), `piece "I3"`)

	_, err = a.Formula(nil)
	assert.Error(t, err, "formula assembly surfaces the same failure")
}

// TestFormulaStandardSize pins the encoding of the standard puzzle:
// 560 core variables plus 1743 selectors, and the clause/literal totals
// under the default configuration.
func TestFormulaStandardSize(t *testing.T) {
	board, pieces, err := puzzle.Default()
	require.NoError(t, err)

	a := NewAssembler(board, pieces, DefaultConfig())
	theory, err := a.Theory()
	require.NoError(t, err)
	assert.Len(t, theory, 100198)
	assert.Equal(t, 2303, a.Allocator().Count())
	assert.Equal(t, 560, a.Allocator().CoreCount())

	// T.1 leads the emission: the first pair of pieces excluded from
	// the top-left cell.
	require.NotEmpty(t, theory)
	assert.Equal(t, cnf.Clause{-1, -57}, theory[0])

	var targets []puzzle.Cell
	for _, label := range []string{"MON", "JAN", "1"} {
		cell, ok := board.Locate(label)
		require.True(t, ok, label)
		targets = append(targets, cell)
	}
	assert.Len(t, a.Instance(targets), 77)

	f, err := a.Formula(targets)
	require.NoError(t, err)
	assert.Equal(t, 2303, f.Vars)
	assert.Len(t, f.Clauses, 100275)
	assert.Equal(t, 202559, f.Literals())
}

// Dropping the optional complement literals shrinks every conjunct to
// the piece size, which shows up directly in the literal total.
func TestFormulaWithoutPlacementExcludes(t *testing.T) {
	board, pieces, err := puzzle.Default()
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Disable(PlacementExcludes)
	a := NewAssembler(board, pieces, cfg)

	theory, err := a.Theory()
	require.NoError(t, err)

	// E.2.1 drops from 1743x56 to sum(placements x piece size):
	// 7 pentominoes and 3 tetrominoes.
	wantBinding := 120*5 + 120*5 + 120*5 + 232*5 + 232*5 + 284*5 + 142*5 + 284*4 + 142*4 + 67*4
	assert.Len(t, theory, 2520+60+10+wantBinding)
	assert.Equal(t, 2303, a.Allocator().Count(), "selector count is configuration-independent")
}
