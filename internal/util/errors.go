package util

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failure for the response envelope and status code.
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindNotFound           ErrorKind = "not_found"
	KindInvalidReference   ErrorKind = "invalid_reference"
	KindUpstreamFailure    ErrorKind = "upstream_failure"
	KindStatusUpdateFailed ErrorKind = "status_update_failed"
	KindStoreFailure       ErrorKind = "store_failure"
	KindInternal           ErrorKind = "internal"
)

var (
	ErrQuizNotFound    = errors.New("quiz not found")
	ErrAttemptNotFound = errors.New("attempt not found")
	ErrOptionNotFound  = errors.New("option not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrUserNotFound    = errors.New("instructor not found")
)

type AppError struct {
	Kind    ErrorKind
	Message string
	Details interface{}
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the kind to a status code unless one was set explicitly.
func (e *AppError) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Kind {
	case KindValidation, KindNotFound, KindInvalidReference:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WithStatus overrides the status derived from the kind.
func (e *AppError) WithStatus(status int) *AppError {
	e.Status = status
	return e
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewStoreError(message string, err error) *AppError {
	return &AppError{Kind: KindStoreFailure, Message: message, Err: err, Details: errText(err)}
}

func NewUpstreamError(message string, err error) *AppError {
	return &AppError{Kind: KindUpstreamFailure, Message: message, Err: err, Details: errText(err)}
}

// NewStatusUpdateError reports a failed workflow notification. Everything
// before it has already been persisted.
func NewStatusUpdateError(details interface{}, err error) *AppError {
	return &AppError{Kind: KindStatusUpdateFailed, Message: "Failed to update exam status", Err: err, Details: details}
}

func NewInternalError(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "An unexpected error occurred.", Err: err, Details: errText(err)}
}

// AsAppError returns err as an *AppError, wrapping unknown errors as internal.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternalError(err)
}

func errText(err error) interface{} {
	if err == nil {
		return nil
	}
	return err.Error()
}
