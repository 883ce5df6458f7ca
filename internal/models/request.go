package models

import "strings"

// CreateOrCheckCandidateRequest creates a candidate record or looks up an
// existing one by email.
type CreateOrCheckCandidateRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ResumeText string `json:"resumeText"`
	ResumeURL  string `json:"resumeUrl"`
}

// implements the Validator interface
func (r *CreateOrCheckCandidateRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return &ErrorResponse{
			Code:    "missing_email",
			Message: "Email is required",
		}
	}
	if !strings.Contains(r.Email, "@") {
		return &ErrorResponse{
			Code:    "invalid_email",
			Message: "Email must be a valid address",
		}
	}
	return nil
}

// UpdateCandidateInfoRequest carries a partial field set. Empty fields are
// ignored; only currently-empty candidate fields are filled.
type UpdateCandidateInfoRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r *UpdateCandidateInfoRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	if r.Name == "" && r.Email == "" && r.Phone == "" {
		return &ErrorResponse{
			Code:    "empty_update",
			Message: "At least one field must be provided",
		}
	}
	if r.Email != "" && !strings.Contains(r.Email, "@") {
		return &ErrorResponse{
			Code:    "invalid_email",
			Message: "Email must be a valid address",
		}
	}
	return nil
}

// SubmitAnswerRequest carries one answer. An empty answer is legal: it is
// screened and scored zero without reaching the evaluator.
type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

func (r *SubmitAnswerRequest) Validate() error {
	return nil
}
