package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/sanyamraina/othello-backend/internal/app"
	ownMiddleware "github.com/sanyamraina/othello-backend/internal/middleware"
)

// NewServer wires routes and returns an http.Handler.
func NewServer(s *app.Service, log *zap.SugaredLogger, isLocalCors bool) http.Handler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(ownMiddleware.RequestID)
	if isLocalCors {
		r.Use(ownMiddleware.CORS)
	}

	h := &handlers{svc: s, log: log}
	r.Get("/health", h.health)
	r.Post("/move", h.move)
	r.Post("/valid-moves", h.validMoves)
	return r
}
