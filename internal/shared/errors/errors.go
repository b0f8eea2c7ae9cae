// Package errors provides application-level error types and utilities.
// It defines the error taxonomy surfaced to API callers: validation, not
// found, conflict, authorization, rate limiting, and abuse-gating kinds.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeInternal     ErrorType = "internal_error"
	ErrorTypeBadRequest   ErrorType = "bad_request"

	// Access-control and abuse-gating kinds.
	ErrorTypeCredentialInvalid    ErrorType = "credential_invalid"
	ErrorTypeCSRFInvalid          ErrorType = "csrf_invalid"
	ErrorTypeRateLimited          ErrorType = "rate_limited"
	ErrorTypeBlocked              ErrorType = "blocked"
	ErrorTypeThrottleExceeded     ErrorType = "throttle_exceeded"
	ErrorTypeVerificationRequired ErrorType = "verification_required"
	ErrorTypeVerificationFailed   ErrorType = "verification_failed"
	ErrorTypeSchemaUnavailable    ErrorType = "schema_unavailable"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
	// RetryAfter is the number of seconds after which the caller may retry.
	// Zero means no retry hint; permanent rejections never set it.
	RetryAfter int `json:"retry_after,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newError(errType ErrorType, code int, message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newError(ErrorTypeValidation, http.StatusBadRequest, message, details...)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newError(ErrorTypeNotFound, http.StatusNotFound, message, details...)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newError(ErrorTypeConflict, http.StatusConflict, message, details...)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details...)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newError(ErrorTypeForbidden, http.StatusForbidden, message, details...)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newError(ErrorTypeInternal, http.StatusInternalServerError, message, details...)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newError(ErrorTypeBadRequest, http.StatusBadRequest, message, details...)
}

// NewCredentialInvalidError reports a failed credential verification.
// It deliberately carries no detail that would distinguish a wrong password
// from an unknown identifier.
func NewCredentialInvalidError() *AppError {
	return newError(ErrorTypeCredentialInvalid, http.StatusUnauthorized, "invalid credentials")
}

// NewCSRFInvalidError reports a failed CSRF header/cookie/origin check.
func NewCSRFInvalidError(message string) *AppError {
	return newError(ErrorTypeCSRFInvalid, http.StatusForbidden, message)
}

// NewRateLimitedError reports an active login lockout with a retry hint.
func NewRateLimitedError(message string, retryAfter int) *AppError {
	err := newError(ErrorTypeRateLimited, http.StatusTooManyRequests, message)
	err.RetryAfter = retryAfter
	return err
}

// NewBlockedError reports a permanent commenter ban. No retry hint.
func NewBlockedError(message string) *AppError {
	return newError(ErrorTypeBlocked, http.StatusForbidden, message)
}

// NewThrottleExceededError reports a comment submission over the rolling ceiling.
func NewThrottleExceededError(message string, retryAfter int) *AppError {
	err := newError(ErrorTypeThrottleExceeded, http.StatusTooManyRequests, message)
	err.RetryAfter = retryAfter
	return err
}

// NewVerificationRequiredError reports a missing anti-automation token while
// verification is policy-enabled.
func NewVerificationRequiredError() *AppError {
	return newError(ErrorTypeVerificationRequired, http.StatusBadRequest, "captcha verification required")
}

// NewVerificationFailedError reports a rejected anti-automation token.
func NewVerificationFailedError() *AppError {
	return newError(ErrorTypeVerificationFailed, http.StatusBadRequest, "captcha verification failed")
}

// NewSchemaUnavailableError reports missing tables/columns in the store.
// This is a deployment misconfiguration, not something the caller can fix.
func NewSchemaUnavailableError(details ...string) *AppError {
	return newError(ErrorTypeSchemaUnavailable, http.StatusServiceUnavailable, "storage schema unavailable", details...)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsErrorType checks whether the error is an AppError of the given type.
func IsErrorType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return IsErrorType(err, ErrorTypeNotFound)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return IsErrorType(err, ErrorTypeConflict)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return IsErrorType(err, ErrorTypeValidation)
}

// IsDuplicateError checks if the error is a database duplicate key error.
// Concurrent bootstrap and provisioning paths rely on this to treat a lost
// race as success.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// PostgreSQL unique violation
	if strings.Contains(errStr, "unique constraint") || strings.Contains(errStr, "violates unique constraint") {
		return true
	}
	// SQLite unique violation
	if strings.Contains(errStr, "UNIQUE constraint failed") {
		return true
	}
	return false
}

// IsDuplicateSchemaError checks for "already exists" errors raised when two
// instances provision the same table or column concurrently.
func IsDuplicateSchemaError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "already exists") ||
		strings.Contains(errStr, "duplicate column name") ||
		strings.Contains(errStr, "duplicate column")
}
