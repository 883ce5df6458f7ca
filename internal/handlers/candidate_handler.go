package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"talentflow/interview/internal/interview"
	"talentflow/interview/internal/utils"
)

type CandidateHandler struct {
	candidates *interview.Candidates
	logger     *zap.Logger
}

func NewCandidateHandler(candidates *interview.Candidates, logger *zap.Logger) *CandidateHandler {
	return &CandidateHandler{candidates: candidates, logger: logger}
}

// ListCandidatesHandler returns candidates filtered by status and sorted
// by any field, default final score descending.
func (h *CandidateHandler) ListCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	candidates, err := h.candidates.List(r.Context(), query.Get("status"), query.Get("sort_by"), query.Get("order"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, candidates)
}

// GetCandidateHandler returns one candidate plus their session, if any.
func (h *CandidateHandler) GetCandidateHandler(w http.ResponseWriter, r *http.Request) {
	candidateID := chi.URLParam(r, "candidateID")

	detail, err := h.candidates.Get(r.Context(), candidateID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	utils.JSON(w, http.StatusOK, detail)
}
