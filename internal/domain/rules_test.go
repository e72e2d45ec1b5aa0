package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// blackBlocked has no legal move for Black while White can still play
// (0,3): the Black disc at (0,2) is captured leftward into (0,1).
func blackBlocked(t *testing.T) Board {
	t.Helper()
	return parseBoard(t, [Size]string{
		"WWB.....",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	})
}

func TestStartingMovesForBlack(t *testing.T) {
	moves := LegalMoves(NewBoard(), Black)

	require.Equal(t, []Move{
		{Row: 2, Col: 3},
		{Row: 3, Col: 2},
		{Row: 4, Col: 5},
		{Row: 5, Col: 4},
	}, moves)
}

func TestApplyMoveFlipsCapturedLine(t *testing.T) {
	start := NewBoard()

	next, flips, err := ApplyMove(start, Black, 2, 3)
	require.NoError(t, err)
	require.Equal(t, []Move{{Row: 3, Col: 3}}, flips)
	require.Equal(t, Black, next[2][3])
	require.Equal(t, Black, next[3][3])
	require.Equal(t, 4, next.Count(Black))
	require.Equal(t, 1, next.Count(White))

	// The input snapshot is untouched.
	require.Equal(t, NewBoard(), start)
}

func TestApplyMoveRejectsNonCapturing(t *testing.T) {
	start := NewBoard()

	got, flips, err := ApplyMove(start, Black, 0, 0)
	require.ErrorIs(t, err, ErrNoCapture)
	require.Empty(t, flips)
	require.Equal(t, start, got)
}

func TestApplyMoveRejectsOccupied(t *testing.T) {
	_, _, err := ApplyMove(NewBoard(), Black, 3, 3)
	require.ErrorIs(t, err, ErrOccupied)
}

func TestApplyMoveRejectsOutOfBounds(t *testing.T) {
	for _, m := range []Move{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100}} {
		_, _, err := ApplyMove(NewBoard(), Black, m.Row, m.Col)
		require.ErrorIs(t, err, ErrOutOfBounds, "move %v", m)
	}
}

func TestAdjacentOwnDiscCapturesNothing(t *testing.T) {
	// (2,4) sits directly above Black's own (3,4); the only opponent run
	// from there, down-left through (3,3), ends on an empty cell.
	require.False(t, IsLegalMove(NewBoard(), Black, 2, 4))
}

func TestFlipMonotonicity(t *testing.T) {
	start := NewBoard()
	for _, m := range LegalMoves(start, Black) {
		next, flips, err := ApplyMove(start, Black, m.Row, m.Col)
		require.NoError(t, err)
		require.NotEmpty(t, flips)
		require.Equal(t, start.Count(Black)+1+len(flips), next.Count(Black), "move %v", m)
		require.Equal(t, start.Count(White)-len(flips), next.Count(White), "move %v", m)
		require.Equal(t, start.Count(Empty)-1, next.Count(Empty), "move %v", m)
	}
}

func TestLegalityConsistency(t *testing.T) {
	mid, _, err := ApplyMove(NewBoard(), Black, 2, 3)
	require.NoError(t, err)

	boards := []Board{NewBoard(), mid, blackBlocked(t)}
	for _, b := range boards {
		for _, p := range []Cell{Black, White} {
			set := make(map[Move]bool)
			for _, m := range LegalMoves(b, p) {
				set[m] = true
			}
			for r := 0; r < Size; r++ {
				for c := 0; c < Size; c++ {
					require.Equal(t, set[Move{Row: r, Col: c}], IsLegalMove(b, p, r, c),
						"player %v cell (%d,%d)", p, r, c)
				}
			}
		}
	}
}

func TestIdempotentEnumeration(t *testing.T) {
	b := NewBoard()
	first := LegalMoves(b, Black)
	second := LegalMoves(b, Black)
	require.Equal(t, first, second)
}

func TestForcedPassIsNotTerminal(t *testing.T) {
	b := blackBlocked(t)

	require.False(t, HasAnyMove(b, Black))
	require.True(t, HasAnyMove(b, White))
	require.False(t, IsTerminal(b))
	require.Equal(t, []Move{{Row: 0, Col: 3}}, LegalMoves(b, White))
}

func TestTerminalWithEmptyCells(t *testing.T) {
	// Only Black discs on the board: neither side can capture anything,
	// so the game is over even with most cells empty.
	b := parseBoard(t, [Size]string{
		"BBBBBBBB",
		"BBBBBBBB",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	})

	require.True(t, IsTerminal(b))
	require.Equal(t, Black, b.Winner())
}

func TestTerminalIsolatedDiscs(t *testing.T) {
	b := parseBoard(t, [Size]string{
		"B......W",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	})

	require.True(t, IsTerminal(b))
	require.Equal(t, Empty, b.Winner())
}

func TestTerminalMatchesMoveSets(t *testing.T) {
	boards := []Board{NewBoard(), blackBlocked(t), parseBoard(t, [Size]string{
		"BBBBBBBB",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	})}
	for i, b := range boards {
		want := len(LegalMoves(b, Black)) == 0 && len(LegalMoves(b, White)) == 0
		require.Equal(t, want, IsTerminal(b), "board %d", i)
	}
}

func TestFlipsOnOccupiedOrOutOfRange(t *testing.T) {
	b := NewBoard()
	require.Empty(t, Flips(b, Black, 3, 3))
	require.Empty(t, Flips(b, Black, -1, 4))
	require.Empty(t, Flips(b, Black, 4, 9))
}
