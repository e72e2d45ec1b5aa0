package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sanyamraina/othello-backend/internal/app"
	"github.com/sanyamraina/othello-backend/internal/domain"
	ownMiddleware "github.com/sanyamraina/othello-backend/internal/middleware"
)

type handlers struct {
	svc *app.Service
	log *zap.SugaredLogger
}

// moveRequest is the wire contract shared by /move and /valid-moves.
// The board travels in full on every request; nothing is retained
// server-side.
type moveRequest struct {
	Board  [][]int `json:"board"`
	Player int     `json:"player"`
	Row    *int    `json:"row"`
	Col    *int    `json:"col"`
	UseAI  bool    `json:"use_ai"`
}

type moveResponse struct {
	Board      [][]int       `json:"board"`
	NextPlayer int           `json:"next_player"`
	ValidMoves []domain.Move `json:"valid_moves"`
	Passed     bool          `json:"passed"`
	GameOver   bool          `json:"game_over"`
	Winner     *int          `json:"winner"`
}

type validMovesResponse struct {
	ValidMoves []domain.Move `json:"valid_moves"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) move(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if !h.decode(w, r, &req) {
		return
	}
	board, player, ok := h.parse(w, r, req)
	if !ok {
		return
	}

	var (
		res *app.MoveResult
		err error
	)
	if req.UseAI {
		res, err = h.svc.AIMove(board, player)
	} else {
		if req.Row == nil || req.Col == nil {
			h.writeError(w, r, http.StatusBadRequest, "row and col are required unless use_ai is set")
			return
		}
		res, err = h.svc.ApplyMove(board, player, *req.Row, *req.Col)
	}
	if err != nil {
		h.writeMoveError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toMoveResponse(res))
}

func (h *handlers) validMoves(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if !h.decode(w, r, &req) {
		return
	}
	board, player, ok := h.parse(w, r, req)
	if !ok {
		return
	}

	moves := h.svc.ValidMoves(board, player)
	if moves == nil {
		moves = []domain.Move{}
	}
	h.writeJSON(w, http.StatusOK, validMovesResponse{ValidMoves: moves})
}

func (h *handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

func (h *handlers) parse(w http.ResponseWriter, r *http.Request, req moveRequest) (domain.Board, domain.Cell, bool) {
	board, err := domain.BoardFromGrid(req.Board)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return board, domain.Empty, false
	}
	player, err := domain.PlayerFromInt(req.Player)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return board, domain.Empty, false
	}
	return board, player, true
}

// writeMoveError splits malformed coordinates from moves that are
// well-formed but capture nothing, so the frontend can tell the two
// rejections apart.
func (h *handlers) writeMoveError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNoCapture):
		h.writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrOutOfBounds), errors.Is(err, domain.ErrOccupied):
		h.writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		h.log.Errorw("move failed", "requestID", ownMiddleware.GetReqID(r.Context()), "error", err)
		h.writeError(w, r, http.StatusInternalServerError, "internal error")
	}
}

func (h *handlers) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.log.Infow("request rejected",
		"requestID", ownMiddleware.GetReqID(r.Context()),
		"path", r.URL.Path,
		"status", status,
		"error", msg,
	)
	h.writeJSON(w, status, errorResponse{Error: msg})
}

func (h *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Errorw("write response", "error", err)
	}
}

func toMoveResponse(res *app.MoveResult) moveResponse {
	out := moveResponse{
		Board:      res.Board.Grid(),
		NextPlayer: int(res.NextPlayer),
		ValidMoves: res.ValidMoves,
		Passed:     res.Passed,
		GameOver:   res.GameOver,
	}
	if out.ValidMoves == nil {
		out.ValidMoves = []domain.Move{}
	}
	if res.Winner != nil {
		w := int(*res.Winner)
		out.Winner = &w
	}
	return out
}
