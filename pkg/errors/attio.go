// Package errors provides Attio-specific error definitions for goAttioMCP
// Every failure surfaced by the client maps to exactly one of these kinds.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Attio-specific error codes
const (
	// Validation errors (no request is made when these fire)
	ErrCodeInvalidDateRange = "ATTIO_INVALID_DATE_RANGE"
	ErrCodeInvalidLimit     = "ATTIO_INVALID_LIMIT"
	ErrCodeInvalidRecordID  = "ATTIO_INVALID_RECORD_ID"

	// Not-found errors (404 on detail lookups)
	ErrCodeCompanyNotFound = "ATTIO_COMPANY_NOT_FOUND"
	ErrCodePersonNotFound  = "ATTIO_PERSON_NOT_FOUND"
	ErrCodeMemberNotFound  = "ATTIO_MEMBER_NOT_FOUND"

	// Remote API errors (any other non-2xx)
	ErrCodeAPIError = "ATTIO_API_ERROR"
)

// AttioError represents an Attio operation error with HTTP status mapping
type AttioError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	// Body holds the raw response body for remote API errors
	Body string `json:"-"`
}

// Error implements the error interface
func (e *AttioError) Error() string {
	return e.Message
}

// GetHTTPStatus returns the remote HTTP status associated with the error
func (e *AttioError) GetHTTPStatus() int {
	return e.HTTPStatus
}

// NewValidationError creates validation errors (surfaced before any network call)
func NewValidationError(errCode, message string) *AttioError {
	return &AttioError{
		Code:       errCode,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewCompanyNotFoundError creates a not-found error for a company record lookup
func NewCompanyNotFoundError(companyID string) *AttioError {
	return &AttioError{
		Code:       ErrCodeCompanyNotFound,
		Message:    fmt.Sprintf("Company not found: %s", companyID),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewPersonNotFoundError creates a not-found error for a person record lookup
func NewPersonNotFoundError(personID string) *AttioError {
	return &AttioError{
		Code:       ErrCodePersonNotFound,
		Message:    fmt.Sprintf("Person not found: %s", personID),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewMemberNotFoundError creates a not-found error for a workspace member lookup
func NewMemberNotFoundError(memberID string) *AttioError {
	return &AttioError{
		Code:       ErrCodeMemberNotFound,
		Message:    fmt.Sprintf("Workspace member not found: %s", memberID),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewAPIError creates a remote API error carrying the numeric status and raw body
func NewAPIError(status int, body string) *AttioError {
	return &AttioError{
		Code:       ErrCodeAPIError,
		Message:    fmt.Sprintf("Attio API error: %d - %s", status, body),
		HTTPStatus: status,
		Body:       body,
	}
}

// IsAttioError checks if error is an AttioError
func IsAttioError(err error) bool {
	var attioErr *AttioError
	return errors.As(err, &attioErr)
}

// GetAttioError extracts an AttioError from an error chain
func GetAttioError(err error) (*AttioError, bool) {
	var attioErr *AttioError
	ok := errors.As(err, &attioErr)
	return attioErr, ok
}

// IsValidation reports whether err is a validation error (no request was made)
func IsValidation(err error) bool {
	attioErr, ok := GetAttioError(err)
	if !ok {
		return false
	}
	switch attioErr.Code {
	case ErrCodeInvalidDateRange, ErrCodeInvalidLimit, ErrCodeInvalidRecordID:
		return true
	}
	return false
}

// IsNotFound reports whether err is a not-found error from a detail lookup
func IsNotFound(err error) bool {
	attioErr, ok := GetAttioError(err)
	if !ok {
		return false
	}
	switch attioErr.Code {
	case ErrCodeCompanyNotFound, ErrCodePersonNotFound, ErrCodeMemberNotFound:
		return true
	}
	return false
}
