package tutor

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidRequest = errors.New("missing subject/topic or modification request")

// UpstreamError is returned when the completion API answered with an error.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Error while contacting Mistral: %d %s", e.StatusCode, e.Message)
}

// HTTPStatus is the status relayed to the caller: the remote one when it is
// an error code, 500 otherwise.
func (e *UpstreamError) HTTPStatus() int {
	if e.StatusCode >= 400 && e.StatusCode <= 599 {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

// InternalError wraps failures that are not the remote service's answer:
// transport, encoding or an unexpected response shape.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func internalError(op string, err error) error {
	return &InternalError{Op: op, Err: err}
}
