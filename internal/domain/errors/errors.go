package errors

import (
	"net/http"

	"placebook/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError with the same error code
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Location-related errors
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"Location not found",
		"",
	)

	ErrLocationLimitExceeded = NewBaseError(
		http.StatusConflict,
		"LOCATION_LIMIT_EXCEEDED",
		"The collection has reached its location limit",
		"",
	)

	ErrTransientLocation = NewBaseError(
		http.StatusBadRequest,
		"TRANSIENT_LOCATION",
		"This location must be saved into a collection first",
		"",
	)

	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"Latitude or longitude is out of range",
		"",
	)

	ErrPlaceNotFound = NewBaseError(
		http.StatusNotFound,
		"PLACE_NOT_FOUND",
		"No place could be found for this suggestion",
		"",
	)

	// Collection-related errors
	ErrCollectionNotFound = NewBaseError(
		http.StatusNotFound,
		"COLLECTION_NOT_FOUND",
		"Collection not found",
		"",
	)

	ErrCollectionLimitExceeded = NewBaseError(
		http.StatusConflict,
		"COLLECTION_LIMIT_EXCEEDED",
		"You have reached the maximum number of collections",
		"",
	)

	ErrDefaultCollectionLocked = NewBaseError(
		http.StatusConflict,
		"DEFAULT_COLLECTION_LOCKED",
		"The default collection cannot be deleted",
		"",
	)

	ErrShareNotFound = NewBaseError(
		http.StatusNotFound,
		"SHARE_NOT_FOUND",
		"Shared collection not found",
		"",
	)

	ErrQRCodeGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"QRCODE_GENERATION_FAILED",
		"Failed to generate QR code",
		"",
	)

	// Authentication-related errors
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired access token",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// ErrGeocodingFailed matches every GeocodingFailedError through errors.Is.
var ErrGeocodingFailed = &GeocodingFailedError{}

// GeocodingFailedError is returned when a tapped coordinate could not be
// resolved by either nearby search or reverse geocoding.
type GeocodingFailedError struct {
	Reason string
}

// NewGeocodingFailedError creates a geocoding failure with a human-readable reason
func NewGeocodingFailedError(reason string) *GeocodingFailedError {
	return &GeocodingFailedError{Reason: reason}
}

// Error implements the error interface
func (e *GeocodingFailedError) Error() string {
	return "geocoding failed: " + e.Reason
}

// Is makes every GeocodingFailedError match ErrGeocodingFailed regardless of reason
func (e *GeocodingFailedError) Is(target error) bool {
	_, ok := target.(*GeocodingFailedError)

	return ok
}

// HTTPCode returns the HTTP status code
func (e *GeocodingFailedError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *GeocodingFailedError) ErrorCode() string {
	return "GEOCODING_FAILED"
}

// Message returns the user-friendly error message
func (e *GeocodingFailedError) Message() string {
	return "Could not determine a place for this location"
}

// Details returns the failure reason
func (e *GeocodingFailedError) Details() string {
	return e.Reason
}
