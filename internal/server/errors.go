// Package server provides the HTTP REST API for the gap analyzer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/gap-analyzer/internal/db"
	"github.com/jonathan/gap-analyzer/internal/ingestion"
)

// ErrEmptyResume indicates the uploaded resume contained no extractable text.
type ErrEmptyResume struct{}

func (e *ErrEmptyResume) Error() string {
	return "no text could be extracted from the resume"
}

// ErrNoJDSkills indicates no known skills could be detected in the job
// description, so no meaningful analysis is possible.
type ErrNoJDSkills struct{}

func (e *ErrNoJDSkills) Error() string {
	return "no recognizable skills found in the job description"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrFetch indicates the job description URL could not be fetched.
type ErrFetch struct {
	Cause error
}

func (e *ErrFetch) Error() string {
	return fmt.Sprintf("failed to fetch job description: %v", e.Cause)
}

func (e *ErrFetch) Unwrap() error { return e.Cause }

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var unsupported *ingestion.UnsupportedFormatError
	var parseErr *ingestion.ParseError

	switch {
	case errors.As(err, &unsupported):
		return http.StatusBadRequest
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, db.ErrAnalysisNotFound):
		return http.StatusNotFound
	}

	switch err.(type) {
	case *ErrEmptyResume, *ErrNoJDSkills:
		return http.StatusUnprocessableEntity
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrFetch:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
