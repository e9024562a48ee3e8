// Package domain defines the core domain models for proofgate.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error
// code. Codes follow the format PG-<AREA>-<NNNN>.
//
// @design DS-0104
type DomainError struct {
	Code    string // Error code (e.g., "PG-CHAL-5020")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Configuration Errors (CONF)
// ============================================================================

var (
	// ErrApplicantNameMissing indicates APPLICANT_NAME is not set.
	ErrApplicantNameMissing = NewDomainError("PG-CONF-1001", "applicant name not configured")

	// ErrApplicantEmailMissing indicates APPLICANT_EMAIL is not set.
	ErrApplicantEmailMissing = NewDomainError("PG-CONF-1002", "applicant email not configured")

	// ErrInvalidConfig indicates the configuration failed validation.
	ErrInvalidConfig = NewDomainError("PG-CONF-1003", "invalid configuration")
)

// ============================================================================
// Challenge Errors (CHAL)
// ============================================================================

var (
	// ErrChallengeFetch indicates the challenge could not be retrieved.
	ErrChallengeFetch = NewDomainError("PG-CHAL-5020", "challenge fetch failed")

	// ErrChallengeMalformed indicates the challenge payload is unusable.
	ErrChallengeMalformed = NewDomainError("PG-CHAL-4000", "malformed challenge")
)

// ============================================================================
// Evaluation Errors (EVAL)
// ============================================================================

var (
	// ErrEvaluationSink indicates the transcoding sink rejected a write
	// or flush.
	ErrEvaluationSink = NewDomainError("PG-EVAL-5001", "evaluation sink failure")
)

// ============================================================================
// Submission Errors (SUBM)
// ============================================================================

var (
	// ErrSubmission indicates the solution could not be delivered.
	ErrSubmission = NewDomainError("PG-SUBM-5021", "solution submission failed")

	// ErrSolutionRejected indicates the service rejected the secret.
	ErrSolutionRejected = NewDomainError("PG-SUBM-4010", "solution rejected")
)

// ============================================================================
// Journal Errors (JRNL)
// ============================================================================

var (
	// ErrJournalWrite indicates the attempt journal rejected a record.
	ErrJournalWrite = NewDomainError("PG-JRNL-5001", "journal write failed")

	// ErrJournalRead indicates the attempt journal could not be read.
	ErrJournalRead = NewDomainError("PG-JRNL-5002", "journal read failed")

	// ErrAttemptNotFound indicates the requested attempt was not found.
	ErrAttemptNotFound = NewDomainError("PG-JRNL-4040", "attempt not found")
)

// ============================================================================
// System Errors (SYS)
// ============================================================================

var (
	// ErrInternalServer indicates an internal server error.
	ErrInternalServer = NewDomainError("PG-SYS-5000", "internal server error")

	// ErrRateLimited indicates too many requests.
	ErrRateLimited = NewDomainError("PG-SYS-4290", "too many requests")
)

// ============================================================================
// Argument Errors (ARG)
// ============================================================================

var (
	// ErrInvalidArgument indicates an invalid argument.
	ErrInvalidArgument = NewDomainError("PG-ARG-1001", "invalid argument")
)
