package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/aduana/internal/model"
)

func TestClassifyManifest_RoutesRows(t *testing.T) {
	e := newTestEngine(t)

	rows := []model.ManifestRow{
		{Description: "Amoxicillin 500mg capsules", Recipient: "Farmacia Central", Weight: 0.5, Value: 40},
		{Description: "Samsung Galaxy smartphone", Recipient: "Ana Pérez", Weight: 0.4, Value: 2500},
		{Description: "Documentos legales", Recipient: "Bufete Ríos", Weight: 0.1, Value: 0},
		{Description: "widget thing", Recipient: "Luis Gómez", Weight: 1, Value: 10},
		{Description: "Cotton t-shirts", Recipient: "Tienda Sol", Weight: 2, Value: 15},
		{Description: "Cocaine powder", Recipient: "Unknown", Weight: 1, Value: 5},
	}

	summary, err := e.ClassifyManifest(context.Background(), rows)
	require.NoError(t, err)
	require.Len(t, summary.Lines, len(rows))

	want := []Queue{QueuePermit, QueueBroker, QueueDocuments, QueueManual, QueueStandard, QueueProhibited}
	for i, line := range summary.Lines {
		assert.Equal(t, want[i], line.Queue, "row %d (%s)", i, line.Row.Description)
	}

	for _, q := range want {
		assert.Equal(t, 1, summary.Queues[q], "queue %s", q)
	}
	assert.InDelta(t, 2570.0, summary.TotalValue, 1e-9)
	assert.InDelta(t, 5.0, summary.TotalWeight, 1e-9)
	assert.Equal(t, "antibioticos", summary.Lines[0].Classification.Subcategory)
}

func TestClassifyManifest_Empty(t *testing.T) {
	e := newTestEngine(t)

	summary, err := e.ClassifyManifest(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, summary.Lines)
	assert.Empty(t, summary.Queues)
}

func TestClassifyManifest_Canceled(t *testing.T) {
	e := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.ClassifyManifest(ctx, []model.ManifestRow{{Description: "Cotton t-shirts", Value: 15}})
	require.ErrorIs(t, err, context.Canceled)
}
