package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"talentflow/interview/internal/interview"
	"talentflow/interview/internal/middleware"
	"talentflow/interview/internal/models"
	"talentflow/interview/internal/resume"
	"talentflow/interview/internal/utils"
)

// maxResumeSize bounds uploaded résumé bodies.
const maxResumeSize = 10 << 20

type InterviewHandler struct {
	service    *interview.Service
	candidates *interview.Candidates
	parser     resume.Parser
	logger     *zap.Logger
}

func NewInterviewHandler(service *interview.Service, candidates *interview.Candidates, parser resume.Parser, logger *zap.Logger) *InterviewHandler {
	return &InterviewHandler{
		service:    service,
		candidates: candidates,
		parser:     parser,
		logger:     logger,
	}
}

// UploadResumeHandler extracts contact fields from an uploaded résumé.
// Binary-to-text conversion and blob storage are external concerns; the
// optional resumeUrl form value is the storage reference, passed through.
func (h *InterviewHandler) UploadResumeHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "invalid_upload",
			Message: "Expected a multipart form with a file field",
		})
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		utils.JSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code:    "missing_file",
			Message: "File field is required",
		})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxResumeSize))
	if err != nil {
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "read_error",
			Message: "Failed to read uploaded file",
		})
		return
	}

	parsed := h.parser.Parse(string(content))

	h.logger.Info("Resume parsed",
		zap.Int("bytes", len(content)),
		zap.Strings("missing_fields", parsed.MissingFields()))

	utils.JSON(w, http.StatusOK, models.UploadResumeResponse{
		ParsedData: models.ParsedResume{
			Name:       parsed.Name,
			Email:      parsed.Email,
			Phone:      parsed.Phone,
			ResumeText: parsed.FullText,
			ResumeURL:  r.FormValue("resumeUrl"),
		},
		MissingFields: parsed.MissingFields(),
	})
}

func (h *InterviewHandler) CreateOrCheckCandidateHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.CreateOrCheckCandidateRequest](r)

	result, err := h.candidates.CreateOrCheck(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

func (h *InterviewHandler) UpdateCandidateInfoHandler(w http.ResponseWriter, r *http.Request) {
	candidateID := chi.URLParam(r, "candidateID")
	req := middleware.GetValidatedRequest[*models.UpdateCandidateInfoRequest](r)

	if err := h.candidates.UpdateInfo(r.Context(), candidateID, req); err != nil {
		h.writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Information updated successfully"})
}

func (h *InterviewHandler) StartInterviewHandler(w http.ResponseWriter, r *http.Request) {
	candidateID := chi.URLParam(r, "candidateID")

	result, err := h.service.Start(r.Context(), candidateID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

func (h *InterviewHandler) SubmitAnswerHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	req := middleware.GetValidatedRequest[*models.SubmitAnswerRequest](r)

	result, err := h.service.SubmitAnswer(r.Context(), sessionID, req.Answer)
	if err != nil {
		h.writeError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

// writeError maps the interview error taxonomy onto HTTP statuses.
func (h *InterviewHandler) writeError(w http.ResponseWriter, err error) {
	writeServiceError(w, h.logger, err)
}

func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var svcErr *interview.Error
	if errors.As(err, &svcErr) {
		status := http.StatusInternalServerError
		switch svcErr.Code {
		case interview.CodeValidation, interview.CodeInvalidState:
			status = http.StatusBadRequest
		case interview.CodeNotFound:
			status = http.StatusNotFound
		case interview.CodeConflict:
			status = http.StatusConflict
		case interview.CodeUnavailable:
			status = http.StatusServiceUnavailable
		}
		if status >= http.StatusInternalServerError {
			logger.Error("Interview service error", zap.Error(err))
		}
		utils.JSON(w, status, models.ErrorResponse{Code: svcErr.Code, Message: svcErr.Message})
		return
	}

	logger.Error("Unexpected error", zap.Error(err))
	utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Code:    "internal_error",
		Message: "Internal server error",
	})
}
