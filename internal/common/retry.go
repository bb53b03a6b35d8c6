package common

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/aduana/internal/service"
)

// ErrMaxRetries indicates that all retry attempts have been exhausted.
var ErrMaxRetries = errors.New("max retries exceeded")

// RetryableError wraps an error with retry-specific metadata.
type RetryableError struct {
	Err       error
	Retryable bool
}

func (e *RetryableError) Error() string {
	return e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// WithRetry executes an operation with configurable retry behavior.
// Errors that are not retryable are returned immediately.
func WithRetry(ctx context.Context, operation func(context.Context) error, opts service.RetryOptions) error {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}
	if opts.InitialDelay <= 0 {
		opts.InitialDelay = 100 * time.Millisecond
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = 5 * time.Second
	}
	if opts.Multiplier <= 0 {
		opts.Multiplier = 2.0
	}

	delay := opts.InitialDelay

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		attemptCtx := ctx
		cancel := func() {}
		if opts.AttemptTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, opts.AttemptTimeout)
		}
		err := operation(attemptCtx)
		cancel()
		if err == nil {
			return nil
		}

		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			err = fmt.Errorf("%w: %w", ErrLookupTimeout, err)
		}

		if !IsRetryable(err) {
			return err
		}

		if attempt == opts.MaxAttempts {
			return fmt.Errorf("%w after %d attempts: %w", ErrMaxRetries, opts.MaxAttempts, err)
		}

		slog.Warn("Operation failed, retrying",
			"attempt", attempt,
			"max_attempts", opts.MaxAttempts,
			"delay", delay,
			"error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay = time.Duration(float64(delay) * opts.Multiplier)
			if delay > opts.MaxDelay {
				delay = opts.MaxDelay
			}
		}
	}

	return ErrMaxRetries
}
