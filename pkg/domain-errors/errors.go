// Package domainerrors provides code-carrying errors so services can signal
// rejection reasons without transport concerns leaking into domain logic.
// Handlers translate codes to HTTP statuses at the edge.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a rejection. Every precondition failure maps to exactly one
// code so callers can branch without string matching.
type Code string

const (
	// Ambient codes shared by all endpoints.
	CodeBadRequest   Code = "bad_request"
	CodeUnauthorized Code = "unauthorized"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeInternal     Code = "internal"

	// Registry codes, one per rejection kind in the operation surface.
	CodeNotAuthorized     Code = "not_authorized"
	CodeDuplicateReportID Code = "duplicate_report_id"
	CodeInvalidRiskScore  Code = "invalid_risk_score"
	CodeEmptyField        Code = "empty_field"
	CodeInvalidIndex      Code = "invalid_index"
	CodeAlreadyVerified   Code = "already_verified"
	CodeSelfVerification  Code = "self_verification"
	CodeNotVerified       Code = "not_verified"
	CodeInvalidLimit      Code = "invalid_limit"
	CodeInvalidOwner      Code = "invalid_owner"
	CodeRegistryPaused    Code = "registry_paused"
)

// DomainError is the concrete error type carried across layers.
type DomainError struct {
	Code    Code
	Message string
	cause   error
}

func (e *DomainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error { return e.cause }

// New builds a DomainError with the given code and message.
func New(code Code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(err error, code Code, message string) *DomainError {
	return &DomainError{Code: code, Message: message, cause: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// Is is an alias of HasCode kept for call-site readability.
func Is(err error, code Code) bool { return HasCode(err, code) }

// CodeOf extracts the code from err, defaulting to CodeInternal for errors
// that did not originate in domain logic.
func CodeOf(err error) Code {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a domain code to the HTTP status handlers respond with.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeInvalidRiskScore, CodeEmptyField, CodeInvalidLimit, CodeInvalidOwner:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotAuthorized, CodeSelfVerification:
		return http.StatusForbidden
	case CodeNotFound, CodeInvalidIndex:
		return http.StatusNotFound
	case CodeConflict, CodeDuplicateReportID, CodeAlreadyVerified, CodeNotVerified:
		return http.StatusConflict
	case CodeRegistryPaused:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
