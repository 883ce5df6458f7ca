package routers

import (
	"github.com/go-chi/chi/v5"

	"talentflow/interview/internal/handlers"
	"talentflow/interview/internal/middleware"
	"talentflow/interview/internal/models"
)

func InterviewRoutes(router *chi.Mux, h *handlers.InterviewHandler) {
	router.Route("/api/interview", func(r chi.Router) {
		r.Post("/upload-resume", h.UploadResumeHandler)
		r.With(middleware.ValidateRequest[*models.CreateOrCheckCandidateRequest]()).Post("/create-or-check-candidate", h.CreateOrCheckCandidateHandler)
		r.With(middleware.ValidateRequest[*models.UpdateCandidateInfoRequest]()).Post("/update-candidate-info/{candidateID}", h.UpdateCandidateInfoHandler)
		r.Post("/start-interview/{candidateID}", h.StartInterviewHandler)
		r.With(middleware.ValidateRequest[*models.SubmitAnswerRequest]()).Post("/submit-answer/{sessionID}", h.SubmitAnswerHandler)
	})
}
