package client

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the requested video does not exist.
var ErrNotFound = errors.New("video not found")

// ErrUnauthorized is returned when a call requires a valid admin session and
// none (or an expired one) was supplied, or when login credentials are
// rejected.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is the decoded error body returned by the catalog API for
// failures that are neither not-found nor auth related.
type APIError struct {
	StatusCode int
	Detail     string `json:"detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("catalog API returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("catalog API returned status %d: %s", e.StatusCode, e.Detail)
}
