package interview

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"talentflow/interview/internal/models"
)

// Candidates manages candidate records. It never decides lifecycle status
// on its own; status transitions are driven by the state machine.
type Candidates struct {
	repo     CandidateRepository
	sessions SessionRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewCandidates(repo CandidateRepository, sessions SessionRepository, logger *zap.Logger) *Candidates {
	return &Candidates{
		repo:     repo,
		sessions: sessions,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CandidateData is the contact data returned for a pre-existing candidate.
type CandidateData struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	ResumeURL  string   `json:"resumeUrl"`
	FinalScore *float64 `json:"final_score"`
	Summary    string   `json:"summary"`
}

// CreateOrCheckResult reports whether the candidate pre-existed and, if
// so, what is already known about them.
type CreateOrCheckResult struct {
	Exists        bool           `json:"exists"`
	CandidateID   string         `json:"candidateId"`
	Status        string         `json:"status"`
	IsCompleted   bool           `json:"isCompleted"`
	CandidateData *CandidateData `json:"candidateData,omitempty"`
}

// CreateOrCheck looks a candidate up by email, creating the record when
// none exists.
func (c *Candidates) CreateOrCheck(ctx context.Context, req *models.CreateOrCheckCandidateRequest) (*CreateOrCheckResult, error) {
	existing, err := c.repo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, ErrCandidateNotFound) {
		return nil, unavailableErr(err)
	}

	if existing != nil {
		completed := false
		sess, err := c.sessions.GetByCandidate(ctx, existing.ID)
		if err != nil && !errors.Is(err, ErrSessionNotFound) {
			return nil, unavailableErr(err)
		}
		if sess != nil && sess.IsCompleted {
			completed = true
		}
		return &CreateOrCheckResult{
			Exists:      true,
			CandidateID: existing.ID,
			Status:      existing.Status,
			IsCompleted: completed,
			CandidateData: &CandidateData{
				Name:       existing.Name,
				Email:      existing.Email,
				Phone:      existing.Phone,
				ResumeURL:  existing.ResumeURL,
				FinalScore: existing.FinalScore,
				Summary:    existing.Summary,
			},
		}, nil
	}

	now := c.now()
	cand := &models.Candidate{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		ResumeText: req.ResumeText,
		ResumeURL:  req.ResumeURL,
		Status:     models.StatusReady,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := c.repo.Create(ctx, cand); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			// lost a create race to a concurrent request for the same email
			return nil, conflictErr("Email already exists in the system")
		}
		return nil, unavailableErr(err)
	}

	c.logger.Info("Candidate created", zap.String("candidate_id", cand.ID))

	return &CreateOrCheckResult{
		Exists:      false,
		CandidateID: cand.ID,
		Status:      cand.Status,
		IsCompleted: false,
	}, nil
}

// UpdateInfo fills currently-empty contact fields. An already-set email is
// never overwritten, and a new email must not belong to another candidate.
func (c *Candidates) UpdateInfo(ctx context.Context, candidateID string, req *models.UpdateCandidateInfoRequest) error {
	cand, err := c.repo.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, ErrCandidateNotFound) {
			return notFoundErr("Candidate not found")
		}
		return unavailableErr(err)
	}

	fields := map[string]any{}
	if req.Name != "" && cand.Name == "" {
		fields["name"] = req.Name
	}
	if req.Phone != "" && cand.Phone == "" {
		fields["phone"] = req.Phone
	}
	if req.Email != "" && cand.Email == "" {
		other, err := c.repo.GetByEmail(ctx, req.Email)
		if err != nil && !errors.Is(err, ErrCandidateNotFound) {
			return unavailableErr(err)
		}
		if other != nil && other.ID != candidateID {
			return conflictErr("This email is already registered with another candidate")
		}
		fields["email"] = req.Email
	}

	if len(fields) == 0 {
		return nil
	}
	fields["updated_at"] = c.now()

	if err := c.repo.UpdateFields(ctx, candidateID, fields); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return conflictErr("Email already exists in the system")
		}
		return unavailableErr(err)
	}
	return nil
}

// List returns candidates filtered by status and sorted by any field,
// defaulting to final score descending.
func (c *Candidates) List(ctx context.Context, status, sortBy, order string) ([]models.Candidate, error) {
	if sortBy == "" {
		sortBy = "final_score"
	}
	filter := ListFilter{
		Status:     status,
		SortBy:     sortBy,
		Descending: order != "asc",
	}
	candidates, err := c.repo.List(ctx, filter)
	if err != nil {
		return nil, unavailableErr(err)
	}
	return candidates, nil
}

// CandidateDetail is a candidate plus their session, if any.
type CandidateDetail struct {
	models.Candidate
	Session *models.InterviewSession `json:"session,omitempty"`
}

// Get returns one candidate with their interview session attached.
func (c *Candidates) Get(ctx context.Context, candidateID string) (*CandidateDetail, error) {
	cand, err := c.repo.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, ErrCandidateNotFound) {
			return nil, notFoundErr("Candidate not found")
		}
		return nil, unavailableErr(err)
	}

	detail := &CandidateDetail{Candidate: *cand}
	sess, err := c.sessions.GetByCandidate(ctx, candidateID)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		return nil, unavailableErr(err)
	}
	if sess != nil {
		detail.Session = sess
	}
	return detail, nil
}
