package models

// uniform error responses
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// implements the error interface so request validation can return it directly
func (e *ErrorResponse) Error() string {
	return e.Message
}

// ParsedResume is the contact data extracted from an uploaded résumé.
type ParsedResume struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ResumeText string `json:"resumeText"`
	ResumeURL  string `json:"resumeUrl"`
}

// UploadResumeResponse reports extracted fields plus the ones that could
// not be found and must be collected from the candidate directly.
type UploadResumeResponse struct {
	ParsedData    ParsedResume `json:"parsedData"`
	MissingFields []string     `json:"missingFields"`
}
