package domain

// The 8 unit directions a capturing line can run in.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Flips returns every opponent disc that placing player's disc at
// (row, col) would capture. An empty result means the move is illegal:
// the target is out of range, occupied, or no direction holds a run of
// one or more opponent discs terminated by one of player's own. A run
// that reaches the board edge or an empty cell first contributes nothing.
func Flips(b Board, player Cell, row, col int) []Move {
	if !inBounds(row, col) || b[row][col] != Empty {
		return nil
	}
	opponent := player.Opponent()
	var flips []Move
	for _, d := range directions {
		r, c := row+d[0], col+d[1]
		var line []Move
		for inBounds(r, c) && b[r][c] == opponent {
			line = append(line, Move{Row: r, Col: c})
			r += d[0]
			c += d[1]
		}
		if len(line) > 0 && inBounds(r, c) && b[r][c] == player {
			flips = append(flips, line...)
		}
	}
	return flips
}

// IsLegalMove reports whether player may move at (row, col).
func IsLegalMove(b Board, player Cell, row, col int) bool {
	return len(Flips(b, player, row, col)) > 0
}

// ApplyMove places player's disc at (row, col) and flips every captured
// disc, returning the new board together with the flipped cells. The
// input board is left untouched; a rejected move is an ordinary error,
// never a panic.
func ApplyMove(b Board, player Cell, row, col int) (Board, []Move, error) {
	if !inBounds(row, col) {
		return b, nil, ErrOutOfBounds
	}
	if b[row][col] != Empty {
		return b, nil, ErrOccupied
	}
	flips := Flips(b, player, row, col)
	if len(flips) == 0 {
		return b, nil, ErrNoCapture
	}
	next := b
	next[row][col] = player
	for _, m := range flips {
		next[m.Row][m.Col] = player
	}
	return next, flips, nil
}

// LegalMoves enumerates every legal move for player in row-major order.
func LegalMoves(b Board, player Cell) []Move {
	var moves []Move
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if IsLegalMove(b, player, r, c) {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// HasAnyMove reports whether player has at least one legal move.
func HasAnyMove(b Board, player Cell) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if IsLegalMove(b, player, r, c) {
				return true
			}
		}
	}
	return false
}

// IsTerminal reports whether neither side can move; the game is over.
// The board may still have empty cells.
func IsTerminal(b Board) bool {
	return !HasAnyMove(b, Black) && !HasAnyMove(b, White)
}
