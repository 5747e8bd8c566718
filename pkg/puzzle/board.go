package puzzle

import (
	"fmt"
	"strings"
)

// TabuMarker is the cell text that marks a board cell as unusable.
const TabuMarker = "╳"

// Cell addresses one board position, 0-indexed from the top-left corner.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Board is the rectangular playing field: a matrix of cell labels, the
// subset of tabu cells on which no piece may ever rest, and a reverse
// lookup from label text to its unique cell. Immutable once parsed.
type Board struct {
	cells  [][]string
	height int
	width  int
	tabu   []Cell
	isTabu map[Cell]bool
	lookup map[string]Cell
}

// ParseBoard reads a textual grid drawing into a Board. Lines containing
// horizontal chrome (━) separate rows; within a row, cell texts are
// delimited by ┃ and surrounding whitespace is not significant. Cells
// containing the tabu marker are recorded as forbidden; all other labels
// must be unique.
func ParseBoard(text string) (*Board, error) {
	var cells [][]string
	for _, line := range strings.Split(text, "\n") {
		if strings.ContainsRune(line, '━') || !strings.ContainsRune(line, '┃') {
			continue
		}
		parts := strings.Split(line, "┃")
		if len(parts) < 3 {
			return nil, fmt.Errorf("malformed board row %q", line)
		}
		row := make([]string, 0, len(parts)-2)
		for _, txt := range parts[1 : len(parts)-1] {
			row = append(row, strings.TrimSpace(txt))
		}
		cells = append(cells, row)
	}
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("board definition contains no cells")
	}

	b := &Board{
		cells:  cells,
		height: len(cells),
		width:  len(cells[0]),
		isTabu: map[Cell]bool{},
		lookup: map[string]Cell{},
	}
	for i, row := range cells {
		if len(row) != b.width {
			return nil, fmt.Errorf("board is not rectangular: row %d has %d cells, want %d", i, len(row), b.width)
		}
		for j, txt := range row {
			c := Cell{Row: i, Col: j}
			if txt == TabuMarker {
				b.tabu = append(b.tabu, c)
				b.isTabu[c] = true
				continue
			}
			if prev, ok := b.lookup[txt]; ok {
				return nil, fmt.Errorf("board label %q appears at both %s and %s", txt, prev, c)
			}
			b.lookup[txt] = c
		}
	}
	return b, nil
}

// Height returns the number of board rows.
func (b *Board) Height() int {
	return b.height
}

// Width returns the number of board columns.
func (b *Board) Width() int {
	return b.width
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < b.height && c.Col < b.width
}

// Label returns the original text of cell c. Out-of-bounds cells have no
// label.
func (b *Board) Label(c Cell) string {
	if !b.InBounds(c) {
		return ""
	}
	return b.cells[c.Row][c.Col]
}

// IsTabu reports whether c is a forbidden cell. Out-of-bounds cells are not
// tabu; they are simply not part of the board.
func (b *Board) IsTabu(c Cell) bool {
	return b.isTabu[c]
}

// TabuCells returns the forbidden cells in row-major order.
func (b *Board) TabuCells() []Cell {
	return b.tabu
}

// Locate returns the cell displaying the given label text.
func (b *Board) Locate(label string) (Cell, bool) {
	c, ok := b.lookup[label]
	return c, ok
}
