package puzzle

import (
	"sort"
	"strconv"
	"strings"
)

// rotations holds the four 90°-multiple rotation matrices as (cos, sin)
// pairs; a cell (r, c) maps to (r·cos − c·sin, c·cos + r·sin).
var rotations = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// FixedForms returns every distinct fixed polyomino obtainable from p under
// the dihedral symmetries: the piece and its mirror image, each in all four
// rotations, re-anchored and deduplicated. The result is ordered by
// canonical offset key, so it is stable across runs. A piece keeps between
// 2 and 8 forms depending on its own symmetry.
func FixedForms(p Piece) [][]Cell {
	mirrored := make([]Cell, len(p.Offsets))
	for i, c := range p.Offsets {
		mirrored[i] = Cell{Row: c.Col, Col: c.Row}
	}

	seen := map[string][]Cell{}
	for _, base := range [][]Cell{p.Offsets, mirrored} {
		for _, rot := range rotations {
			cos, sin := rot[0], rot[1]
			form := make([]Cell, len(base))
			for i, c := range base {
				form[i] = Cell{
					Row: c.Row*cos - c.Col*sin,
					Col: c.Col*cos + c.Row*sin,
				}
			}
			form = canonical(form)
			seen[formKey(form)] = form
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	forms := make([][]Cell, len(keys))
	for i, k := range keys {
		forms[i] = seen[k]
	}
	return forms
}

// Placements returns every placement of p on an h×w board: each fixed form
// translated to every offset at which it stays fully in bounds. Translations
// run row-major with the forms innermost, so the order is deterministic.
// The result is empty when no form fits anywhere (or the piece has no
// cells); callers decide whether that is an error.
func Placements(p Piece, h, w int) [][]Cell {
	if len(p.Offsets) == 0 {
		return nil
	}
	forms := FixedForms(p)
	var placements [][]Cell
	for di := 0; di < h; di++ {
		for dj := 0; dj < w; dj++ {
			for _, form := range forms {
				cells, ok := translate(form, di, dj, h, w)
				if ok {
					placements = append(placements, cells)
				}
			}
		}
	}
	return placements
}

// translate shifts form by (di, dj), reporting whether every cell stays
// within the h×w bounds.
func translate(form []Cell, di, dj, h, w int) ([]Cell, bool) {
	cells := make([]Cell, len(form))
	for i, c := range form {
		cells[i] = Cell{Row: c.Row + di, Col: c.Col + dj}
		if cells[i].Row < 0 || cells[i].Col < 0 || cells[i].Row >= h || cells[i].Col >= w {
			return nil, false
		}
	}
	return cells, true
}

func formKey(form []Cell) string {
	var b strings.Builder
	for _, c := range form {
		b.WriteString(strconv.Itoa(c.Row))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Col))
		b.WriteByte(';')
	}
	return b.String()
}
