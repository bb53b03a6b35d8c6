// Package storage provides the SQLite persistence layer for the compliance engine.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/aduana/internal/model"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrInvalidLimit     = errors.New("limit must be positive")
	ErrInvalidMemory    = errors.New("invalid memory entry")
	ErrInvalidPrecedent = errors.New("invalid precedent")
	ErrInvalidResult    = errors.New("invalid validation result")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateMemoryEntry(e model.MemoryEntry) error {
	if strings.TrimSpace(e.Pattern) == "" {
		return fmt.Errorf("%w: missing pattern", ErrInvalidMemory)
	}
	if e.Occurrences < 0 {
		return fmt.Errorf("%w: negative occurrences", ErrInvalidMemory)
	}
	return nil
}

func validatePrecedent(p model.Precedent) error {
	if strings.TrimSpace(p.RulingID) == "" {
		return fmt.Errorf("%w: missing ruling ID", ErrInvalidPrecedent)
	}
	if !p.Region.Valid() {
		return fmt.Errorf("%w: region %q", ErrInvalidPrecedent, p.Region)
	}
	if strings.TrimSpace(p.HSCode) == "" {
		return fmt.Errorf("%w: missing HS code", ErrInvalidPrecedent)
	}
	return nil
}

func validateResult(r model.ValidationResult) error {
	if strings.TrimSpace(r.DocumentID) == "" {
		return fmt.Errorf("%w: missing document ID", ErrInvalidResult)
	}
	if strings.TrimSpace(r.Hash) == "" {
		return fmt.Errorf("%w: missing hash", ErrInvalidResult)
	}
	if r.Timestamp.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrInvalidResult)
	}
	return nil
}
