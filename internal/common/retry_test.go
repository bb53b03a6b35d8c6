package common

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/aduana/internal/service"
)

func fastRetry(attempts int) service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Multiplier:   2,
	}
}

func TestWithRetry(t *testing.T) {
	tests := []struct {
		opErr     func(call int) error
		wantErr   error
		name      string
		attempts  int
		wantCalls int
	}{
		{
			name:      "succeeds first time",
			attempts:  3,
			opErr:     func(int) error { return nil },
			wantCalls: 1,
		},
		{
			name:     "succeeds after a transient failure",
			attempts: 3,
			opErr: func(call int) error {
				if call == 1 {
					return fmt.Errorf("%w: reset", ErrLookupUnavailable)
				}
				return nil
			},
			wantCalls: 2,
		},
		{
			name:      "gives up after max attempts",
			attempts:  2,
			opErr:     func(int) error { return fmt.Errorf("%w: refused", ErrLookupUnavailable) },
			wantErr:   ErrMaxRetries,
			wantCalls: 2,
		},
		{
			name:      "non retryable error returns at once",
			attempts:  3,
			opErr:     func(int) error { return ErrInvalidConfig },
			wantErr:   ErrInvalidConfig,
			wantCalls: 1,
		},
		{
			name:      "explicitly retryable error",
			attempts:  2,
			opErr:     func(int) error { return &RetryableError{Err: errors.New("busy"), Retryable: true} },
			wantErr:   ErrMaxRetries,
			wantCalls: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := WithRetry(context.Background(), func(context.Context) error {
				calls++
				return tt.opErr(calls)
			}, fastRetry(tt.attempts))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, calls)
		})
	}
}

func TestWithRetry_AttemptTimeout(t *testing.T) {
	opts := fastRetry(2)
	opts.AttemptTimeout = 5 * time.Millisecond

	calls := 0
	err := WithRetry(context.Background(), func(ctx context.Context) error {
		calls++
		<-ctx.Done()
		return ctx.Err()
	}, opts)

	require.ErrorIs(t, err, ErrLookupTimeout)
	require.ErrorIs(t, err, ErrMaxRetries)
	assert.Equal(t, 2, calls)
}

func TestWithRetry_ParentCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetry(ctx, func(ctx context.Context) error {
		return ctx.Err()
	}, fastRetry(3))

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsRetryable(err))
}
