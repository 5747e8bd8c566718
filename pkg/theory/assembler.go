package theory

import (
	"fmt"

	"github.com/dotypuzzle/doty/pkg/cnf"
	"github.com/dotypuzzle/doty/pkg/puzzle"
)

// UnplaceablePiece reports a piece that fits nowhere on the board.
// Without this check the formula would contain an empty clause and the
// solver would report plain unsatisfiability, hiding the cause.
type UnplaceablePiece string

func (e UnplaceablePiece) Error() string {
	return fmt.Sprintf("piece %q cannot be placed anywhere on the board", string(e))
}

// Assembler compiles one puzzle into CNF under a component
// configuration. It owns the variable allocator; clause emission is
// deterministic given the same board, pieces and configuration. Not
// safe for concurrent use.
type Assembler struct {
	board      *puzzle.Board
	pieces     []puzzle.Piece
	cfg        Config
	placements [][][]puzzle.Cell
	alloc      *cnf.Allocator

	assembled bool
	theory    []cnf.Clause
	theoryErr error
}

// NewAssembler precomputes the placements of every piece and sets up
// the variable allocator.
func NewAssembler(board *puzzle.Board, pieces []puzzle.Piece, cfg Config) *Assembler {
	placements := make([][][]puzzle.Cell, len(pieces))
	for i, p := range pieces {
		placements[i] = puzzle.Placements(p, board.Height(), board.Width())
	}
	return &Assembler{
		board:      board,
		pieces:     pieces,
		cfg:        cfg,
		placements: placements,
		alloc:      cnf.NewAllocator(len(pieces), board.Height(), board.Width()),
	}
}

// Allocator exposes the variable numbering for decoding and blocking.
func (a *Assembler) Allocator() *cnf.Allocator {
	return a.alloc
}

// Theory returns the date-independent clauses of the puzzle. The first
// call assembles them, minting one selector variable per placement;
// later calls return the same clauses, so instances for several dates
// can share one theory.
func (a *Assembler) Theory() ([]cnf.Clause, error) {
	if !a.assembled {
		a.assembled = true
		a.theory, a.theoryErr = a.assemble()
	}
	return a.theory, a.theoryErr
}

func (a *Assembler) assemble() ([]cnf.Clause, error) {
	var clauses []cnf.Clause

	// No cell may be covered twice, tabu cells included.
	if a.cfg.Enabled(NoOverlap) {
		a.eachCell(func(cell puzzle.Cell) {
			clauses = append(clauses, cnf.AtMostOne(a.pieceVars(cell))...)
		})
	}

	// Tabu cells stay empty.
	if a.cfg.Enabled(NoTabu) {
		for _, cell := range a.board.TabuCells() {
			clauses = append(clauses, cnf.NoneOf(a.pieceVars(cell))...)
		}
	}

	// One Tseytin group per piece over all of its placements. The
	// transform runs whether or not any of its sub-components is
	// enabled, keeping selector numbering independent of the
	// configuration.
	tseytin := cnf.TseytinConfig{
		SelectorAtLeastOne: a.cfg.Enabled(SelectorAtLeastOne),
		SelectorAtMostOne:  a.cfg.Enabled(SelectorAtMostOne),
		SelectorImplies:    a.cfg.Enabled(SelectorImplies),
		SelectorImplied:    a.cfg.Enabled(SelectorImplied),
	}
	for idx, piece := range a.pieces {
		if len(a.placements[idx]) == 0 {
			return nil, UnplaceablePiece(piece.Name)
		}
		conjuncts := make([][]int, 0, len(a.placements[idx]))
		for _, placement := range a.placements[idx] {
			conjuncts = append(conjuncts, a.conjunct(idx, placement))
		}
		group, _ := cnf.AtLeastOneConjunct(a.alloc, conjuncts, tseytin)
		clauses = append(clauses, group...)
	}

	// Every piece lands somewhere.
	if a.cfg.Enabled(AllPiecesPlaced) {
		for idx := range a.pieces {
			var lits []int
			a.eachCell(func(cell puzzle.Cell) {
				lits = append(lits, a.alloc.PieceAt(idx, cell))
			})
			clauses = append(clauses, cnf.AtLeastOne(lits)...)
		}
	}

	return clauses, nil
}

// Instance returns the date-dependent clauses pinning the target
// cells. Only core variables appear, so instances may be regenerated
// freely.
func (a *Assembler) Instance(targets []puzzle.Cell) []cnf.Clause {
	var clauses []cnf.Clause

	// The target cells stay piece-free so their labels read out.
	if a.cfg.Enabled(TargetUncovered) {
		var lits []int
		for idx := range a.pieces {
			for _, cell := range targets {
				lits = append(lits, a.alloc.PieceAt(idx, cell))
			}
		}
		clauses = append(clauses, cnf.NoneOf(lits)...)
	}

	// Every playable cell outside the target date is covered.
	if a.cfg.Enabled(OthersCovered) {
		istarget := make(map[puzzle.Cell]bool, len(targets))
		for _, cell := range targets {
			istarget[cell] = true
		}
		a.eachCell(func(cell puzzle.Cell) {
			if istarget[cell] || a.board.IsTabu(cell) {
				return
			}
			clauses = append(clauses, cnf.AtLeastOne(a.pieceVars(cell))...)
		})
	}

	return clauses
}

// Formula assembles theory plus instance for the given target cells.
func (a *Assembler) Formula(targets []puzzle.Cell) (*cnf.Formula, error) {
	theory, err := a.Theory()
	if err != nil {
		return nil, err
	}
	clauses := make([]cnf.Clause, 0, len(theory)+len(targets))
	clauses = append(clauses, theory...)
	clauses = append(clauses, a.Instance(targets)...)
	return &cnf.Formula{Vars: a.alloc.Count(), Clauses: clauses}, nil
}

// conjunct builds the literal list asserting that the piece sits
// exactly at the given placement.
func (a *Assembler) conjunct(idx int, placement []puzzle.Cell) []int {
	var lits []int
	if a.cfg.Enabled(PlacementCovers) {
		for _, cell := range placement {
			lits = append(lits, a.alloc.PieceAt(idx, cell))
		}
	}
	if a.cfg.Enabled(PlacementExcludes) {
		covered := make(map[puzzle.Cell]bool, len(placement))
		for _, cell := range placement {
			covered[cell] = true
		}
		a.eachCell(func(cell puzzle.Cell) {
			if !covered[cell] {
				lits = append(lits, -a.alloc.PieceAt(idx, cell))
			}
		})
	}
	return lits
}

func (a *Assembler) pieceVars(cell puzzle.Cell) []int {
	lits := make([]int, len(a.pieces))
	for idx := range a.pieces {
		lits[idx] = a.alloc.PieceAt(idx, cell)
	}
	return lits
}

// eachCell visits the board row-major.
func (a *Assembler) eachCell(f func(puzzle.Cell)) {
	for row := 0; row < a.board.Height(); row++ {
		for col := 0; col < a.board.Width(); col++ {
			f(puzzle.Cell{Row: row, Col: col})
		}
	}
}
