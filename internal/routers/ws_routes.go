package routers

import (
	"github.com/go-chi/chi/v5"

	"talentflow/interview/internal/ws"
)

func PushRoutes(router *chi.Mux, handler *ws.Handler) {
	router.Get("/ws/{sessionID}", handler.Serve)
}
