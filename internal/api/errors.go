package api

import (
	"errors"
	"fmt"
)

// ErrUnreachable wraps transport failures: refused connections, DNS, timeouts.
var ErrUnreachable = errors.New("backend unreachable")

// Error is a request the backend answered with an unexpected status.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	// Message is the backend's {"error": "..."} text, empty if it sent none.
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s: request failed with status %d", e.Method, e.Path, e.StatusCode)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.StatusCode == 404
}
