package models

import "time"

// Candidate lifecycle statuses. Transitions are driven by the interview
// service; candidates are never deleted.
const (
	StatusCollectingInfo = "collecting-info"
	StatusReady          = "ready"
	StatusInProgress     = "in-progress"
	StatusCompleted      = "completed"
)

// Candidate is one interviewee record. Email is globally unique.
type Candidate struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Phone      string    `bson:"phone" json:"phone"`
	ResumeText string    `bson:"resume_text,omitempty" json:"resume_text,omitempty"`
	ResumeURL  string    `bson:"resume_url,omitempty" json:"resume_url,omitempty"`
	Status     string    `bson:"status" json:"status"`
	FinalScore *float64  `bson:"final_score,omitempty" json:"final_score,omitempty"`
	Summary    string    `bson:"summary,omitempty" json:"summary,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

// HasContactInfo reports whether every field required before an interview
// can start is present.
func (c *Candidate) HasContactInfo() bool {
	return c.Name != "" && c.Email != "" && c.Phone != ""
}
