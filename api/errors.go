package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the three failure classes screens care about. Anything
// else is treated as a network failure.
var (
	// ErrNotAuthenticated covers 401/403; screens redirect to login on it.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotFound covers 404.
	ErrNotFound = errors.New("not found")
	// ErrValidation covers 400/422 rejections of a submitted form.
	ErrValidation = errors.New("validation failed")
)

// ErrorResponse is the backend's error envelope.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error is a non-2xx API response.
type Error struct {
	Status  int
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Is maps status codes onto the sentinel classes so callers can use errors.Is.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotAuthenticated:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrValidation:
		return e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity
	}
	return false
}
