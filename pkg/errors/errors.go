package errors

import "fmt"

// HTTPError is an error carrying the HTTP status it should be rendered with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
	Details    any
}

// NewHTTPError creates an HTTPError whose error code mirrors the status.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Code: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// WithDetails returns a copy of e carrying details in the response errors field.
func (e *HTTPError) WithDetails(details any) *HTTPError {
	cp := *e
	cp.Details = details
	return &cp
}
