package app

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrConflict     ErrorCode = "CONFLICT"
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
)

// PlanError is the coded error returned by every use case. Message is safe to
// show to the caller; Err carries the internal cause and is never rendered.
type PlanError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *PlanError) Unwrap() error {
	return e.Err
}

func InvalidInput(format string, args ...any) *PlanError {
	return &PlanError{Code: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func NotFound(entity string, err error) *PlanError {
	return &PlanError{Code: ErrNotFound, Message: entity + " not found", Err: err}
}

func Conflict(format string, args ...any) *PlanError {
	return &PlanError{Code: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func Internal(message string, err error) *PlanError {
	return &PlanError{Code: ErrInternal, Message: message, Err: err}
}

// CodeOf returns the code of the first PlanError in err's chain, or
// ErrInternal for anything else.
func CodeOf(err error) ErrorCode {
	var pe *PlanError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ErrInternal
}
