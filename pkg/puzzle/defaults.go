package puzzle

// The standard Day-of-the-Year puzzle, embedded so the binary is
// self-contained. Both drawings parse through ParseBoard and ParsePieces,
// so editing them (or supplying a definition file) yields a playable
// variant rather than a code change.

// DefaultBoard is the 8x7 calendar board: 12 month cells, 31 day cells,
// 7 weekday cells and 6 tabu cells.
const DefaultBoard = `┏━━━┳━━━┳━━━┳━━━┳━━━┳━━━┳━━━┓
┃JAN┃FEB┃MAR┃APR┃MAY┃JUN┃ ╳ ┃
┣━━━╋━━━╋━━━╋━━━╋━━━╋━━━╋━━━┫
┃JUL┃AUG┃SEP┃OCT┃NOV┃DEC┃ ╳ ┃
┣━━━╋━━━╋━━━╋━━━╋━━━╋━━━╋━━━┫
┃  1┃  2┃  3┃  4┃  5┃  6┃  7┃
┣━━━╋━━━╋━━━╋━━━╋━━━╋━━━╋━━━┫
┃  8┃  9┃ 10┃ 11┃ 12┃ 13┃ 14┃
┣━━━╋━━━╋━━━╋━━━╋━━━╋━━━╋━━━┫
┃ 15┃ 16┃ 17┃ 18┃ 19┃ 20┃ 21┃
┣━━━╋━━━╋━━━╋━━━╋━━━╋━━━╋━━━┫
┃ 22┃ 23┃ 24┃ 25┃ 26┃ 27┃ 28┃
┣━━━╋━━━╋━━━╋━━━╋━━━╋━━━╋━━━┫
┃ 29┃ 30┃ 31┃SUN┃MON┃TUE┃WED┃
┣━━━╋━━━╋━━━╋━━━╋━━━╋━━━╋━━━┫
┃ ╳ ┃ ╳ ┃ ╳ ┃ ╳ ┃THU┃FRI┃SAT┃
┗━━━┻━━━┻━━━┻━━━┻━━━┻━━━┻━━━┛
`

// DefaultPieces holds the 7 pentominoes and 3 tetrominoes of the standard
// set, one column per piece.
const DefaultPieces = `   L      T      Z      R    J    P    C       r    g   i
🟦⬜️⬜️ 🟦🟦🟦 🟦🟦⬜️ 🟦🟦 🟦⬜️ 🟦🟦 🟦🟦   🟦🟦 🟦⬜️ 🟦
🟦⬜️⬜️ ⬜️🟦⬜️ ⬜️🟦⬜️ 🟦⬜️ 🟦🟦 🟦🟦 🟦⬜️   🟦⬜️ 🟦🟦 🟦
🟦🟦🟦 ⬜️🟦⬜️ ⬜️🟦🟦 🟦⬜️ ⬜️🟦 🟦⬜️ 🟦🟦   🟦⬜️ ⬜️🟦 🟦
⬜️⬜️⬜️ ⬜️⬜️⬜️ ⬜️⬜️⬜️ 🟦⬜️ ⬜️🟦 ⬜️⬜️ ⬜️⬜️   ⬜️⬜️ ⬜️⬜️ 🟦
`

// Default parses the embedded standard puzzle.
func Default() (*Board, []Piece, error) {
	b, err := ParseBoard(DefaultBoard)
	if err != nil {
		return nil, nil, err
	}
	pieces, err := ParsePieces(DefaultPieces)
	if err != nil {
		return nil, nil, err
	}
	return b, pieces, nil
}
