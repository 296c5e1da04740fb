package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the generation endpoint is unreachable.
	ErrUnavailable = errors.New("generation service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrCanceled indicates the caller abandoned the request.
	ErrCanceled = errors.New("generation request canceled")

	// ErrHTTPStatus indicates a non-2xx response.
	ErrHTTPStatus = errors.New("unexpected http status")

	// ErrInvalidOutput indicates a response body that could not be decoded.
	ErrInvalidOutput = errors.New("invalid generation output")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("generation retry attempts exhausted")
)

// GenerationError is returned for every failed generation call.
type GenerationError struct {
	Provider   Provider
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// statusError carries the status and body of a non-2xx response.
type statusError struct {
	Code int
	Body string
}

func (e *statusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status %d", e.Code)
	}
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

func (e *statusError) Is(target error) bool { return target == ErrHTTPStatus }
