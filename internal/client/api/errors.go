package api

import (
	"errors"
	"fmt"
)

// ErrSessionExpired is returned when the server rejects the attached bearer
// credential. The session manager must observe it and clear the dead session.
var ErrSessionExpired = errors.New("session expired")

// ServerError represents a non-2xx response from the server.
// Message carries the server's own text verbatim when the error envelope
// decodes, so auth failures surface the real reason to the user.
type ServerError struct {
	Message string
	Status  int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// NetworkError represents a transport failure: timeout or unreachable server.
// It is a transient, retryable condition; callers keep their prior state.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
