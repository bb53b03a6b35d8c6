// Package common provides shared utilities and types used across the engine.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Storage errors.
	ErrNotFound = errors.New("not found")

	// Precedent lookup errors.
	ErrLookupUnavailable = errors.New("precedent lookup unavailable")
	ErrLookupTimeout     = errors.New("precedent lookup timed out")

	// Region and document errors.
	ErrUnknownRegion = errors.New("unknown region")
	ErrEmptyDocument = errors.New("document text is empty")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, ErrLookupUnavailable) ||
		errors.Is(err, ErrLookupTimeout) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
