package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain errors - errors related to business rules and validation
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeNoCachedData
	ErrorTypeDisplay

	// Infrastructure Errors - errors related to external systems and services
	ErrorTypeDatabase
	ErrorTypeExternalAPI

	// Transport Errors - classified outcomes of a single forecast fetch attempt
	ErrorTypeNoConnectivity
	ErrorTypeTimeout
	ErrorTypeServerUnavailable
	ErrorTypeInvalidResponse
	ErrorTypeInvalidRequest
	ErrorTypeDecoding
	ErrorTypeRequestInProgress

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeNoCachedData:
		return "NO_CACHED_DATA_ERROR"
	case ErrorTypeDisplay:
		return "DISPLAY_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeNoConnectivity:
		return "NO_CONNECTIVITY_ERROR"
	case ErrorTypeTimeout:
		return "TIMEOUT_ERROR"
	case ErrorTypeServerUnavailable:
		return "SERVER_UNAVAILABLE_ERROR"
	case ErrorTypeInvalidResponse:
		return "INVALID_RESPONSE_ERROR"
	case ErrorTypeInvalidRequest:
		return "INVALID_REQUEST_ERROR"
	case ErrorTypeDecoding:
		return "DECODING_ERROR"
	case ErrorTypeRequestInProgress:
		return "REQUEST_IN_PROGRESS_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across adapters and tests
const (
	ValidationError        = ErrorTypeValidation
	NotFoundError          = ErrorTypeNotFound
	NoCachedDataError      = ErrorTypeNoCachedData
	DisplayError           = ErrorTypeDisplay
	DatabaseError          = ErrorTypeDatabase
	ExternalAPIError       = ErrorTypeExternalAPI
	NoConnectivityError    = ErrorTypeNoConnectivity
	TimeoutError           = ErrorTypeTimeout
	ServerUnavailableError = ErrorTypeServerUnavailable
	InvalidResponseError   = ErrorTypeInvalidResponse
	InvalidRequestError    = ErrorTypeInvalidRequest
	DecodingError          = ErrorTypeDecoding
	RequestInProgressError = ErrorTypeRequestInProgress
	ConfigurationError     = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewNoCachedDataError(message string, cause error) *AppError {
	return Wrap(NoCachedDataError, message, cause)
}

func NewDisplayError(message string, cause error) *AppError {
	return Wrap(DisplayError, message, cause)
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

// Transport Error Constructors
func NewNoConnectivityError(message string, cause error) *AppError {
	return Wrap(NoConnectivityError, message, cause)
}

func NewTimeoutError(message string, cause error) *AppError {
	return Wrap(TimeoutError, message, cause)
}

func NewServerUnavailableError(message string, cause error) *AppError {
	return Wrap(ServerUnavailableError, message, cause)
}

func NewInvalidResponseError(message string, cause error) *AppError {
	return Wrap(InvalidResponseError, message, cause)
}

func NewInvalidRequestError(message string, cause error) *AppError {
	return Wrap(InvalidRequestError, message, cause)
}

func NewDecodingError(message string, cause error) *AppError {
	return Wrap(DecodingError, message, cause)
}

func NewRequestInProgressError(message string) *AppError {
	return New(RequestInProgressError, message)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in the chain, or ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return err != nil && TypeOf(err) == NotFoundError
}

func IsNoCachedDataError(err error) bool {
	return err != nil && TypeOf(err) == NoCachedDataError
}

func IsDisplayError(err error) bool {
	return err != nil && TypeOf(err) == DisplayError
}

func IsValidationError(err error) bool {
	return err != nil && TypeOf(err) == ValidationError
}

func IsDatabaseError(err error) bool {
	return err != nil && TypeOf(err) == DatabaseError
}

func IsConfigurationError(err error) bool {
	return err != nil && TypeOf(err) == ConfigurationError
}

func IsRequestInProgressError(err error) bool {
	return err != nil && TypeOf(err) == RequestInProgressError
}
