package llm

import "errors"

var (
	// ErrNotConfigured indicates no API key was supplied.
	ErrNotConfigured = errors.New("text generation not configured")

	// ErrUnavailable indicates the text-generation service is unreachable.
	ErrUnavailable = errors.New("text generation service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrBadStatus indicates the service answered with a non-2xx status.
	ErrBadStatus = errors.New("llm returned non-success status")

	// ErrInvalidOutput indicates the response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all attempts failed.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
