package pms

import "fmt"

// APIError is returned when the PMS answers with a non-retryable (or
// retried-and-failed) HTTP error. Payload carries the decoded response
// body for diagnostics, or nil when the body was not JSON.
type APIError struct {
	Status  int
	Code    string
	Payload interface{}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ezee api error: status %d, code %s", e.Status, e.Code)
}

// AuthError is returned when the login exchange itself fails. It is
// never retried.
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("ezee login failed: status %d: %s", e.Status, e.Body)
}

// ValidationError is returned when a PMS response does not match the
// expected shape. Field names the first violated constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid ezee response: %s", e.Message)
	}
	return fmt.Sprintf("invalid ezee response: %s: %s", e.Field, e.Message)
}
