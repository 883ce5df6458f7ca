package interview

// Caller-visible error codes. External-model failures never appear here;
// the adapters absorb them.
const (
	CodeValidation   = "validation_error"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeInvalidState = "invalid_state"
	CodeUnavailable  = "unavailable"
)

// Error is a caller-visible failure carrying a taxonomy code the HTTP
// layer maps to a status.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationErr(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

func notFoundErr(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func conflictErr(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

func invalidStateErr(message string) *Error {
	return &Error{Code: CodeInvalidState, Message: message}
}

func unavailableErr(err error) *Error {
	return &Error{Code: CodeUnavailable, Message: "persistence layer unavailable", Err: err}
}
