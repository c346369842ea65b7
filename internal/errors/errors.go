package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAvatarNotFound is returned when no avatar has the requested id.
	ErrAvatarNotFound = errors.New("avatar not found")
	// ErrFormClosed is returned when a form is submitted while it is not open.
	ErrFormClosed = errors.New("form is not open")
	// ErrImageTooLarge is returned when an uploaded image exceeds the configured limit.
	ErrImageTooLarge = errors.New("image too large")
	// ErrImageNotFound is returned when an image reference does not resolve.
	ErrImageNotFound = errors.New("image not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are unwrapped.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrAvatarNotFound):
		return NewHTTPError(http.StatusNotFound, ErrAvatarNotFound.Error(), "AVATAR_NOT_FOUND")
	case errors.Is(err, ErrImageNotFound):
		return NewHTTPError(http.StatusNotFound, ErrImageNotFound.Error(), "IMAGE_NOT_FOUND")
	case errors.Is(err, ErrFormClosed):
		return NewHTTPError(http.StatusConflict, ErrFormClosed.Error(), "FORM_CLOSED")
	case errors.Is(err, ErrImageTooLarge):
		return NewHTTPError(http.StatusRequestEntityTooLarge, ErrImageTooLarge.Error(), "IMAGE_TOO_LARGE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
