package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Internal wraps an unexpected downstream failure. The underlying message is
// kept in the user-facing text on purpose: this service has no separate
// alerting layer, so the response body is the operational signal.
func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal server error: "+err.Error(), err)
}

// Unavailable reports that the relational store could not be reached or was
// never configured. Surfaced per-request, never as a startup crash.
func Unavailable(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal server error: "+err.Error(), err)
}
