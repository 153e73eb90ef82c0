// Package generation - errors.go defines the typed failure taxonomy for the
// completion service boundary.
package generation

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// AuthError indicates a bad or rejected API credential.
type AuthError struct {
	Cause error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Cause)
}

func (e *AuthError) Unwrap() error { return e.Cause }

// RateLimitError indicates the completion service throttled the request.
type RateLimitError struct {
	Cause error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded: %v", e.Cause)
}

func (e *RateLimitError) Unwrap() error { return e.Cause }

// ServiceError indicates any other API-side failure, including timeouts.
type ServiceError struct {
	Cause error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("completion service error: %v", e.Cause)
}

func (e *ServiceError) Unwrap() error { return e.Cause }

// EmptyResponseError indicates the service returned blank content.
type EmptyResponseError struct{}

func (e *EmptyResponseError) Error() string {
	return "completion service returned empty content"
}

// classifyError maps a raw API error onto the failure taxonomy. Credential
// rejections and throttling are distinguished by HTTP status; everything
// else, including deadline expiry, is a service error.
func classifyError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &AuthError{Cause: err}
		case http.StatusTooManyRequests:
			return &RateLimitError{Cause: err}
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &ServiceError{Cause: fmt.Errorf("request timed out: %w", err)}
	}
	return &ServiceError{Cause: err}
}
