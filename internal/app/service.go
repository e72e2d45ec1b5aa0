package app

import (
	"go.uber.org/zap"

	"github.com/sanyamraina/othello-backend/internal/domain"
)

// MoveResult is the full state update handed back after a move: the new
// board, whose turn it is next (accounting for forced passes), that
// player's legal moves, and whether the game has ended.
type MoveResult struct {
	Board      domain.Board
	NextPlayer domain.Cell
	ValidMoves []domain.Move
	Flipped    []domain.Move
	Passed     bool
	GameOver   bool
	Winner     *domain.Cell
}

// Service runs rules queries on behalf of the transport layer. It holds
// no game state: every call carries the full board, so concurrent
// requests never share anything.
type Service struct {
	log      *zap.SugaredLogger
	selector *domain.Selector
}

// NewService builds a Service. A nil logger is replaced with a no-op
// logger and a nil selector with a time-seeded one.
func NewService(log *zap.SugaredLogger, selector *domain.Selector) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if selector == nil {
		selector = domain.NewSelector(nil)
	}
	return &Service{log: log, selector: selector}
}

// ApplyMove validates and applies player's move, then works out whose
// turn comes next. Rejections surface the domain error unchanged so the
// caller can map them onto its own responses.
func (s *Service) ApplyMove(b domain.Board, player domain.Cell, row, col int) (*MoveResult, error) {
	next, flips, err := domain.ApplyMove(b, player, row, col)
	if err != nil {
		s.log.Infow("move rejected", "player", player, "row", row, "col", col, "reason", err)
		return nil, err
	}
	res := s.resolveTurn(next, player)
	res.Flipped = flips
	return res, nil
}

// AIMove selects a uniformly random legal move for player and applies
// it. When player has no legal move the board comes back unchanged with
// Passed set, signalling a forced pass.
func (s *Service) AIMove(b domain.Board, player domain.Cell) (*MoveResult, error) {
	move, ok := s.selector.Pick(b, player)
	if !ok {
		s.log.Infow("ai pass", "player", player)
		res := s.resolveTurn(b, player)
		res.Passed = true
		return res, nil
	}
	s.log.Infow("ai move", "player", player, "row", move.Row, "col", move.Col)
	return s.ApplyMove(b, player, move.Row, move.Col)
}

// ValidMoves enumerates player's legal moves.
func (s *Service) ValidMoves(b domain.Board, player domain.Cell) []domain.Move {
	return domain.LegalMoves(b, player)
}

// resolveTurn decides who moves after mover acted on b. The opponent is
// next unless they have no legal move; then the turn stays with mover,
// and if mover cannot move either the game is over.
func (s *Service) resolveTurn(b domain.Board, mover domain.Cell) *MoveResult {
	res := &MoveResult{Board: b, NextPlayer: mover.Opponent()}
	res.ValidMoves = domain.LegalMoves(b, res.NextPlayer)
	if len(res.ValidMoves) == 0 {
		res.NextPlayer = mover
		res.ValidMoves = domain.LegalMoves(b, mover)
		res.Passed = true
	}
	if len(res.ValidMoves) == 0 {
		res.GameOver = true
		if w := b.Winner(); w != domain.Empty {
			res.Winner = &w
		}
	}
	return res
}
