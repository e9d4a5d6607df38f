package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
)

// ServerError is a non-2xx response of the letters service. Message is the
// server's "error" field or, when absent, a generic text for the operation.
type ServerError struct {
	StatusCode int
	Message    string

	kind error
}

func (e *ServerError) Error() string {
	return e.Message
}

// Unwrap returns the sentinel matching the status code.
func (e *ServerError) Unwrap() error {
	return e.kind
}

// NetworkError is a failure to reach the server or read its response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s request: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err is or wraps a *NetworkError.
func IsNetworkError(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
