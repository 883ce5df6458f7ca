package interview

import (
	"context"
	"errors"
	"time"

	"talentflow/interview/internal/models"
)

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrDuplicateEmail    = errors.New("email already registered")
)

// ListFilter narrows and orders a candidate listing.
type ListFilter struct {
	Status     string
	SortBy     string
	Descending bool
}

// CandidateRepository captures the candidate persistence operations
// required by the interview services.
type CandidateRepository interface {
	Create(ctx context.Context, c *models.Candidate) error
	GetByID(ctx context.Context, id string) (*models.Candidate, error)
	GetByEmail(ctx context.Context, email string) (*models.Candidate, error)
	// UpdateFields applies one atomic field-set update to a candidate.
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	List(ctx context.Context, filter ListFilter) ([]models.Candidate, error)
}

// SessionRepository captures the session persistence operations required
// by the state machine. Every mutation is a single-document update.
type SessionRepository interface {
	Create(ctx context.Context, s *models.InterviewSession) error
	GetByID(ctx context.Context, id string) (*models.InterviewSession, error)
	GetByCandidate(ctx context.Context, candidateID string) (*models.InterviewSession, error)
	// AppendQuestion pushes a question and sets the pointer in one update.
	AppendQuestion(ctx context.Context, sessionID string, q models.Question, index int) error
	// SetAnswer records answer, score, feedback and end time on the
	// question at index as one atomic update.
	SetAnswer(ctx context.Context, sessionID string, index int, answer string, score float64, feedback string, endTime time.Time) error
	SetIndex(ctx context.Context, sessionID string, index int) error
	Complete(ctx context.Context, sessionID string, endTime time.Time) error
}
