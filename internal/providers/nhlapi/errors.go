package nhlapi

import (
	"errors"
	"fmt"
)

// ErrInvalidJSON marks a 200 response whose body could not be parsed.
var ErrInvalidJSON = errors.New("nhlapi: invalid json response")

// StatusError captures a non-200 upstream response.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("nhlapi: unexpected status %d for %s: %s", e.StatusCode, e.URL, e.Body)
	}
	return fmt.Sprintf("nhlapi: unexpected status %d for %s", e.StatusCode, e.URL)
}

// Retryable reports whether the status is one the client retries.
func (e *StatusError) Retryable() bool {
	return retryableStatus[e.StatusCode]
}

// RetryExhaustedError is returned when every attempt failed transiently.
type RetryExhaustedError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("nhlapi: giving up on %s after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *RetryExhaustedError) Unwrap() error {
	return e.Err
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// AsRetryExhaustedError attempts to unwrap an error into a RetryExhaustedError.
func AsRetryExhaustedError(err error) (*RetryExhaustedError, bool) {
	var exhausted *RetryExhaustedError
	if errors.As(err, &exhausted) {
		return exhausted, true
	}
	return nil, false
}

// IsNotFound reports whether the upstream answered 404.
func IsNotFound(err error) bool {
	statusErr, ok := AsStatusError(err)
	return ok && statusErr.StatusCode == 404
}

// IsTransient reports whether err came from retryable conditions that never cleared.
func IsTransient(err error) bool {
	_, ok := AsRetryExhaustedError(err)
	return ok
}
