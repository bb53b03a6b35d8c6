package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/aduana/internal/common"
	"github.com/Veraticus/aduana/internal/model"
)

type fakeHistory struct {
	appendErr error
	last      string
	results   []model.ValidationResult
}

func (h *fakeHistory) AppendValidation(_ context.Context, r model.ValidationResult) error {
	if h.appendErr != nil {
		return h.appendErr
	}
	h.results = append(h.results, r)
	h.last = r.Hash
	return nil
}

func (h *fakeHistory) LastValidationHash(context.Context) (string, error) {
	if h.last == "" {
		return "", common.ErrNotFound
	}
	return h.last, nil
}

func (h *fakeHistory) RecentValidations(_ context.Context, limit int) ([]model.ValidationResult, error) {
	if len(h.results) > limit {
		return h.results[len(h.results)-limit:], nil
	}
	return h.results, nil
}

func findings(sevs ...model.Severity) []model.Finding {
	out := make([]model.Finding, 0, len(sevs))
	for _, s := range sevs {
		out = append(out, model.Finding{Severity: s})
	}
	return out
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		sevs []model.Severity
		want int
	}{
		{"clean", nil, 100},
		{"one blocking", []model.Severity{model.SeverityBlocking}, 50},
		{"blocking and critical", []model.Severity{model.SeverityBlocking, model.SeverityCritical}, 30},
		{"warning and info", []model.Severity{model.SeverityWarning, model.SeverityInfo}, 94},
		{"floored", []model.Severity{model.SeverityBlocking, model.SeverityBlocking, model.SeverityCritical}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(findings(tt.sevs...)))
		})
	}
}

func TestScore_MonotonicallyDecreasing(t *testing.T) {
	all := []model.Severity{model.SeverityInfo, model.SeverityWarning, model.SeverityCritical, model.SeverityBlocking}
	var acc []model.Finding
	prev := Score(acc)
	for i := 0; i < 12; i++ {
		acc = append(acc, model.Finding{Severity: all[i%len(all)]})
		s := Score(acc)
		assert.LessOrEqual(t, s, prev)
		assert.GreaterOrEqual(t, s, 0)
		prev = s
	}
}

func TestLedger_Chain(t *testing.T) {
	ctx := context.Background()
	l := New(WithClock(func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }))

	data := map[string]any{"fob": 1000.0, "cif": 1115.0}

	first, err := l.Record(ctx, Entry{DocumentID: "doc-1", Data: data, Region: model.RegionPanama})
	require.NoError(t, err)
	second, err := l.Record(ctx, Entry{DocumentID: "doc-2", Data: data, Region: model.RegionPanama})
	require.NoError(t, err)

	assert.Nil(t, first.PreviousHash)
	require.NotNil(t, second.PreviousHash)
	assert.Equal(t, first.Hash, *second.PreviousHash)
	assert.Equal(t, first.Hash, second.Hash)
	assert.NoError(t, VerifyChain(l.History()))

	last, ok := l.LastHash()
	assert.True(t, ok)
	assert.Equal(t, second.Hash, last)
}

func TestLedger_Validity(t *testing.T) {
	l := New()

	blocked, err := l.Record(context.Background(), Entry{
		DocumentID: "doc-1",
		Data:       map[string]any{"a": 1},
		Findings:   findings(model.SeverityBlocking, model.SeverityCritical),
	})
	require.NoError(t, err)
	assert.False(t, blocked.IsValid)
	assert.Equal(t, 1, blocked.BlockingIssues)
	assert.Equal(t, 30, blocked.Score)

	clean, err := l.Record(context.Background(), Entry{DocumentID: "doc-2", Data: map[string]any{"a": 2}})
	require.NoError(t, err)
	assert.True(t, clean.IsValid)
	assert.Equal(t, 100, clean.Score)
	assert.NotNil(t, clean.Findings)
}

func TestLedger_HistoryCap(t *testing.T) {
	l := New(WithHistoryCap(3))

	for i := 0; i < 5; i++ {
		_, err := l.Record(context.Background(), Entry{DocumentID: string(rune('a' + i)), Data: i})
		require.NoError(t, err)
	}

	history := l.History()
	require.Len(t, history, 3)
	assert.Equal(t, "c", history[0].DocumentID)
	assert.Equal(t, "e", history[2].DocumentID)
	assert.NoError(t, VerifyChain(history))
}

func TestLedger_PersistAndRestore(t *testing.T) {
	ctx := context.Background()
	store := &fakeHistory{}

	l := New(WithHistoryStore(store))
	require.NoError(t, l.Restore(ctx))
	_, ok := l.LastHash()
	assert.False(t, ok)

	r, err := l.Record(ctx, Entry{DocumentID: "doc-1", Data: "x"})
	require.NoError(t, err)

	restored := New(WithHistoryStore(store))
	require.NoError(t, restored.Restore(ctx))
	last, ok := restored.LastHash()
	require.True(t, ok)
	assert.Equal(t, r.Hash, last)
	assert.Len(t, restored.History(), 1)

	next, err := restored.Record(ctx, Entry{DocumentID: "doc-2", Data: "y"})
	require.NoError(t, err)
	require.NotNil(t, next.PreviousHash)
	assert.Equal(t, r.Hash, *next.PreviousHash)
}

func TestLedger_PersistFailureStillAdvancesChain(t *testing.T) {
	store := &fakeHistory{appendErr: errors.New("disk full")}
	l := New(WithHistoryStore(store))

	r, err := l.Record(context.Background(), Entry{DocumentID: "doc-1", Data: "x"})
	assert.Error(t, err)
	assert.NotEmpty(t, r.Hash)

	last, ok := l.LastHash()
	assert.True(t, ok)
	assert.Equal(t, r.Hash, last)
}

func TestVerifyChain_Broken(t *testing.T) {
	bogus := "deadbeef"
	results := []model.ValidationResult{
		{DocumentID: "a", Hash: "h1"},
		{DocumentID: "b", Hash: "h2", PreviousHash: &bogus},
	}
	assert.ErrorIs(t, VerifyChain(results), ErrChainBroken)
}
