package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")

	ErrAccessDenied       = errors.New("access denied")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrProviderIneligible = errors.New("provider not eligible for requests")
	ErrInvalidQuery       = errors.New("invalid location query")
	ErrServiceUnavailable = errors.New("service not available")
	ErrNoVehicle          = errors.New("customer has no registered vehicle")
)

// AppError represents application error with HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func AlreadyExists(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrAlreadyExists)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func AccessDenied(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrAccessDenied)
}

func InvalidTransition(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrInvalidTransition)
}

// ProviderIneligible is distinct from AccessDenied so callers can render
// a "clear your dues" message instead of a generic permission error.
func ProviderIneligible(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrProviderIneligible)
}

func InvalidQuery(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidQuery)
}

func NoVehicle(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrNoVehicle)
}

func ServiceUnavailable(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrServiceUnavailable)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// Kind maps an error to its taxonomy sentinel so the presentation layer
// can choose copy without string matching. Returns nil for unexpected
// internal errors.
func Kind(err error) error {
	for _, sentinel := range []error{
		ErrNotFound, ErrAlreadyExists, ErrInvalidInput, ErrUnauthorized,
		ErrInvalidCredentials, ErrTokenExpired, ErrAccessDenied,
		ErrInvalidTransition, ErrProviderIneligible, ErrInvalidQuery,
		ErrServiceUnavailable, ErrNoVehicle,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return nil
}
