package appointment

import "fmt"

// ValidationError reports a malformed or incomplete request. Surfaced as a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an unknown appointment ID. Surfaced as a 404.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("appointment %s not found", e.ID)
}

// AdmissionError reports a capacity or spacing rejection. It is an expected,
// user-facing outcome of the admission check, not an infrastructure failure,
// and is surfaced as a 400 with a distinct code.
type AdmissionError struct {
	Reason string
}

func (e *AdmissionError) Error() string {
	return e.Reason
}
