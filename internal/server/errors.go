package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/covercraft/internal/budget"
	"github.com/jonathan/covercraft/internal/fetch"
	"github.com/jonathan/covercraft/internal/generation"
	"github.com/jonathan/covercraft/internal/ingestion"
	"github.com/jonathan/covercraft/internal/tokenizer"
)

// ErrSessionNotFound indicates the request carried no valid session.
type ErrSessionNotFound struct{}

func (e *ErrSessionNotFound) Error() string {
	return "session not found or expired"
}

// ErrInputMissing indicates a generation step was requested before its
// inputs were supplied.
type ErrInputMissing struct {
	What string
}

func (e *ErrInputMissing) Error() string {
	return fmt.Sprintf("missing input: %s", e.What)
}

// ErrInvalidFileType indicates an upload with an unsupported extension.
type ErrInvalidFileType struct {
	Filename string
}

func (e *ErrInvalidFileType) Error() string {
	return fmt.Sprintf("unsupported file type: %s (only PDF files are accepted)", e.Filename)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ErrMissingCredential indicates the generation API key is not configured.
type ErrMissingCredential struct{}

func (e *ErrMissingCredential) Error() string {
	return "generation service credential is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		budgetErr     *budget.ExceededError
		extractionErr *ingestion.ExtractionError
		fetchErr      *fetch.Error
		authErr       *generation.AuthError
		rateErr       *generation.RateLimitError
		svcErr        *generation.ServiceError
		emptyErr      *generation.EmptyResponseError
	)

	switch {
	case errors.As(err, &budgetErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &extractionErr), errors.As(err, &fetchErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &authErr):
		return http.StatusBadGateway
	case errors.As(err, &rateErr):
		return http.StatusServiceUnavailable
	case errors.As(err, &svcErr), errors.As(err, &emptyErr):
		return http.StatusBadGateway
	case errors.Is(err, tokenizer.ErrUnavailable):
		return http.StatusServiceUnavailable
	}

	switch err.(type) {
	case *ErrSessionNotFound:
		return http.StatusNotFound
	case *ErrInputMissing, *ErrValidation, *ErrInvalidFileType:
		return http.StatusBadRequest
	case *ErrMissingCredential:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
