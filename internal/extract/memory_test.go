package extract

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/aduana/internal/model"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

type fakeMemoryStore struct {
	loadErr error
	saved   []model.MemoryEntry
	entries []model.MemoryEntry
}

func (s *fakeMemoryStore) LoadMemory(context.Context) ([]model.MemoryEntry, error) {
	return s.entries, s.loadErr
}

func (s *fakeMemoryStore) SaveMemory(_ context.Context, entries []model.MemoryEntry) error {
	s.saved = entries
	return nil
}

func TestMemory_ConfidenceNeverExceedsCap(t *testing.T) {
	mem := NewMemory()
	_, err := mem.Record("acme", "ACME Corporation", "revisor", model.DocInvoice)
	require.NoError(t, err)

	tests := []struct {
		start int
		want  int
	}{
		{50, 60},
		{88, 98},
		{90, 98},
		{98, 98},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("start %d", tt.start), func(t *testing.T) {
			fields := []model.ExtractionField{
				{Name: "shipper", Value: "acme inc", Confidence: tt.start, Provenance: model.ProvenancePattern},
			}
			assert.Equal(t, 1, mem.Apply(fields))
			assert.Equal(t, tt.want, fields[0].Confidence)
			assert.Equal(t, "ACME Corporation", fields[0].Value)
			assert.Equal(t, model.ProvenanceInference, fields[0].Provenance)
		})
	}
}

func TestMemory_IgnoresNumericFields(t *testing.T) {
	mem := NewMemory()
	_, err := mem.Record("100", "200", "revisor", model.DocInvoice)
	require.NoError(t, err)

	fields := []model.ExtractionField{{Name: "fob", Value: 100.0, Confidence: 90}}
	assert.Zero(t, mem.Apply(fields))
	assert.InDelta(t, 100, fields[0].Value, 0.0001)
}

func TestMemory_RecordUpdatesExisting(t *testing.T) {
	mem := NewMemory()

	_, err := mem.Record("acme", "ACME Corp", "ana", model.DocInvoice)
	require.NoError(t, err)
	entry, err := mem.Record("ACME", "ACME Corporation", "luis", model.DocInvoice)
	require.NoError(t, err)

	assert.Equal(t, 1, mem.Len())
	assert.Equal(t, "ACME Corporation", entry.Correction)
	assert.Equal(t, "luis", entry.CorrectedBy)

	_, err = mem.Record("acme", "ACME Ltd", "ana", model.DocBillOfLading)
	require.NoError(t, err)
	assert.Equal(t, 2, mem.Len())

	_, err = mem.Record("  ", "x", "ana", model.DocInvoice)
	assert.Error(t, err)
}

func TestMemory_EvictsLeastRecentlySeen(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	mem := NewMemory(WithMemoryCap(3), WithClock(clock.Now))

	for _, p := range []string{"uno", "dos", "tres"} {
		_, err := mem.Record(p, p+"!", "ana", model.DocInvoice)
		require.NoError(t, err)
	}

	// Applying "uno" refreshes it so "dos" becomes the oldest.
	mem.Apply([]model.ExtractionField{{Name: "x", Value: "uno"}})

	_, err := mem.Record("cuatro", "cuatro!", "ana", model.DocInvoice)
	require.NoError(t, err)

	var patterns []string
	for _, e := range mem.Entries() {
		patterns = append(patterns, e.Pattern)
	}
	assert.Equal(t, []string{"cuatro", "uno", "tres"}, patterns)
}

func TestMemory_LoadAndSave(t *testing.T) {
	ctx := context.Background()
	store := &fakeMemoryStore{entries: []model.MemoryEntry{
		{Pattern: "acme", Correction: "ACME", LastSeen: time.Now()},
	}}
	mem := NewMemory(WithMemoryStore(store))

	require.NoError(t, mem.Load(ctx))
	assert.Equal(t, 1, mem.Len())

	_, err := mem.Record("globex", "Globex", "ana", model.DocInvoice)
	require.NoError(t, err)
	require.NoError(t, mem.Save(ctx))
	assert.Len(t, store.saved, 2)

	store.loadErr = errors.New("disk gone")
	assert.Error(t, mem.Load(ctx))
	assert.Equal(t, 2, mem.Len())
}

func TestMemory_NoStoreIsNoop(t *testing.T) {
	mem := NewMemory()
	assert.NoError(t, mem.Load(context.Background()))
	assert.NoError(t, mem.Save(context.Background()))
}
