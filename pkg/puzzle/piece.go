package puzzle

import (
	"fmt"
	"sort"
	"strings"
)

// Piece is one free polyomino: a name and the canonical set of coordinate
// offsets of its filled cells, anchored so the minimum row and column are
// both zero and sorted in row-major order.
type Piece struct {
	Name    string
	Offsets []Cell
}

// Size returns the number of cells the piece covers.
func (p Piece) Size() int {
	return len(p.Offsets)
}

const (
	filledMarker = "🟦"
	emptyMarker  = "⬜️"
)

// ParsePieces reads a piece catalogue drawing. The first non-empty line
// names the pieces; each following line carries one marker token per piece,
// so a piece's shape is the column of tokens underneath its name. Filled
// cells are 🟦, empty cells ⬜️.
func ParsePieces(text string) ([]Piece, error) {
	text = strings.ReplaceAll(text, filledMarker, "1")
	text = strings.ReplaceAll(text, emptyMarker, "0")

	var names []string
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if names == nil {
			names = fields
			continue
		}
		if len(fields) != len(names) {
			return nil, fmt.Errorf("piece row %q has %d shapes, want %d", strings.TrimSpace(line), len(fields), len(names))
		}
		rows = append(rows, fields)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("piece definition contains no names")
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("piece definition contains no shapes")
	}

	pieces := make([]Piece, 0, len(names))
	for k, name := range names {
		var offsets []Cell
		for i := range rows {
			col := 0
			for _, r := range rows[i][k] {
				if r == '1' {
					offsets = append(offsets, Cell{Row: i, Col: col})
				}
				col++
			}
		}
		if len(offsets) == 0 {
			return nil, fmt.Errorf("piece %q has an empty shape", name)
		}
		pieces = append(pieces, Piece{Name: name, Offsets: canonical(offsets)})
	}
	return pieces, nil
}

// canonical re-anchors offsets so the minimum row and column are zero and
// sorts them in row-major order.
func canonical(offsets []Cell) []Cell {
	minRow, minCol := offsets[0].Row, offsets[0].Col
	for _, c := range offsets[1:] {
		if c.Row < minRow {
			minRow = c.Row
		}
		if c.Col < minCol {
			minCol = c.Col
		}
	}
	out := make([]Cell, len(offsets))
	for i, c := range offsets {
		out[i] = Cell{Row: c.Row - minRow, Col: c.Col - minCol}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
