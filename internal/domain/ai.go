package domain

import (
	"math/rand"
	"time"
)

// Rand is the randomness a Selector draws from. *math/rand.Rand
// satisfies it; tests inject a deterministic source.
type Rand interface {
	Intn(n int) int
}

// Selector picks uniformly random legal moves for the automated
// opponent. No look-ahead, no heuristics.
type Selector struct {
	rng Rand
}

// NewSelector returns a Selector drawing from rng, or from a time-seeded
// source when rng is nil.
func NewSelector(rng Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rng: rng}
}

// Pick returns a uniformly random legal move for player. The second
// return is false when player has no legal move and must pass.
func (s *Selector) Pick(b Board, player Cell) (Move, bool) {
	moves := LegalMoves(b, player)
	if len(moves) == 0 {
		return Move{}, false
	}
	return moves[s.rng.Intn(len(moves))], true
}
