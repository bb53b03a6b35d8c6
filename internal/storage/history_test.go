package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
)

func makeResult(i int, previous *string) model.ValidationResult {
	expected := 1115.0
	return model.ValidationResult{
		DocumentID:   fmt.Sprintf("doc-%d", i),
		Hash:         fmt.Sprintf("%064d", i),
		PreviousHash: previous,
		Region:       model.RegionPanama,
		Score:        100 - i,
		IsValid:      i%2 == 0,
		Timestamp:    time.Date(2024, 1, 1, 0, i, 0, 0, time.UTC),
		Findings: []model.Finding{{
			ID:       fmt.Sprintf("f-%d", i),
			RuleCode: "CIF_MISMATCH",
			Severity: model.SeverityCritical,
			Message:  "CIF no coincide",
			Region:   model.RegionPanama,
			Expected: &expected,
		}},
		BlockingIssues: 0,
	}
}

func TestHistory_EmptyChain(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	_, err := store.LastValidationHash(ctx)
	require.ErrorIs(t, err, common.ErrNotFound)

	recent, err := store.RecentValidations(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestHistory_AppendAndRead(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	var previous *string
	for i := 1; i <= 5; i++ {
		r := makeResult(i, previous)
		require.NoError(t, store.AppendValidation(ctx, r))
		h := r.Hash
		previous = &h
	}

	last, err := store.LastValidationHash(ctx)
	require.NoError(t, err)
	assert.Equal(t, makeResult(5, nil).Hash, last)

	recent, err := store.RecentValidations(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)

	// Oldest of the window first.
	assert.Equal(t, "doc-3", recent[0].DocumentID)
	assert.Equal(t, "doc-5", recent[2].DocumentID)

	third := recent[0]
	require.NotNil(t, third.PreviousHash)
	assert.Equal(t, makeResult(2, nil).Hash, *third.PreviousHash)
	assert.Equal(t, 97, third.Score)
	assert.False(t, third.IsValid)
	assert.True(t, third.Timestamp.Equal(time.Date(2024, 1, 1, 0, 3, 0, 0, time.UTC)))
	require.Len(t, third.Findings, 1)
	assert.Equal(t, "CIF_MISMATCH", third.Findings[0].RuleCode)
	require.NotNil(t, third.Findings[0].Expected)
	assert.InDelta(t, 1115.0, *third.Findings[0].Expected, 0.001)

	all, err := store.RecentValidations(ctx, 100)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Nil(t, all[0].PreviousHash, "genesis has no previous hash")
}

func TestHistory_Validation(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*model.ValidationResult)
	}{
		{name: "missing document", mutate: func(r *model.ValidationResult) { r.DocumentID = "" }},
		{name: "missing hash", mutate: func(r *model.ValidationResult) { r.Hash = "" }},
		{name: "missing timestamp", mutate: func(r *model.ValidationResult) { r.Timestamp = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := makeResult(1, nil)
			tt.mutate(&r)
			require.ErrorIs(t, store.AppendValidation(ctx, r), ErrInvalidResult)
		})
	}

	_, err := store.RecentValidations(ctx, 0)
	require.ErrorIs(t, err, ErrInvalidLimit)
}
