// Package service defines the persistence ports the engine depends on.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/aduana/internal/model"
)

// MemoryStore persists learned extraction corrections between runs.
type MemoryStore interface {
	LoadMemory(ctx context.Context) ([]model.MemoryEntry, error)
	SaveMemory(ctx context.Context, entries []model.MemoryEntry) error
}

// PrecedentSource is a read-only precedent store queried by region and active flag.
type PrecedentSource interface {
	ActivePrecedents(ctx context.Context, region model.Region) ([]model.Precedent, error)
}

// HistoryStore records validation results so the hash chain survives restarts.
type HistoryStore interface {
	AppendValidation(ctx context.Context, result model.ValidationResult) error
	LastValidationHash(ctx context.Context) (string, error)
	RecentValidations(ctx context.Context, limit int) ([]model.ValidationResult, error)
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts    int
	InitialDelay   time.Duration
	MaxDelay       time.Duration
	AttemptTimeout time.Duration
	Multiplier     float64
}
