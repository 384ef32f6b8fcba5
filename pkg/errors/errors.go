package errors

import "fmt"

// HTTPError is a domain error annotated with the status code it should
// surface as. Delivery layers build these in mapError; pkg/response unwraps
// them when writing the envelope.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}
