// Package errors provides sentinel errors and custom error types for the review wizard.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for common conditions
var (
	// ErrNoQuestions indicates that the question source returned nothing to rate
	ErrNoQuestions = errors.New("no questions to review")

	// ErrSubmitDisabled indicates a submit attempt while the submit control is disabled
	ErrSubmitDisabled = errors.New("submit is disabled")

	// ErrTrackingFailed indicates that the completion tracker did not record the review
	ErrTrackingFailed = errors.New("review submission tracking failed")

	// ErrInvalidRating indicates a rating outside of the 1-5 range
	ErrInvalidRating = errors.New("invalid rating")

	// ErrInvalidPolicy indicates an unknown submit policy name
	ErrInvalidPolicy = errors.New("invalid submit policy")
)

// APIError represents a non-2xx response from the review backend
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Temporary reports whether repeating the request may succeed
func (e *APIError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// NewAPIError creates a new APIError
func NewAPIError(method, path string, statusCode int, message string) *APIError {
	return &APIError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Message:    message,
	}
}

// RatingError represents a rating value that cannot be accepted
type RatingError struct {
	Value int
}

func (e *RatingError) Error() string {
	return fmt.Sprintf("rating %d is out of range 1-5", e.Value)
}

// Is returns true if the target error is ErrInvalidRating
func (e *RatingError) Is(target error) bool {
	return target == ErrInvalidRating
}

// NewRatingError creates a new RatingError
func NewRatingError(value int) *RatingError {
	return &RatingError{Value: value}
}

// SubmitError wraps a failed rating submission for a single question
type SubmitError struct {
	QuestionID int
	Attempts   int
	Err        error
}

func (e *SubmitError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("submit rating for question %d failed after %d attempts: %v", e.QuestionID, e.Attempts, e.Err)
	}
	return fmt.Sprintf("submit rating for question %d: %v", e.QuestionID, e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// NewSubmitError creates a new SubmitError
func NewSubmitError(questionID, attempts int, err error) *SubmitError {
	return &SubmitError{
		QuestionID: questionID,
		Attempts:   attempts,
		Err:        err,
	}
}
