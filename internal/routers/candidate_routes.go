package routers

import (
	"github.com/go-chi/chi/v5"

	"talentflow/interview/internal/handlers"
)

func CandidateRoutes(router *chi.Mux, h *handlers.CandidateHandler) {
	router.Route("/api/candidates", func(r chi.Router) {
		r.Get("/", h.ListCandidatesHandler)
		r.Get("/{candidateID}", h.GetCandidateHandler)
	})
}
