package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	require.ErrorIs(t, err, ErrEmptyString)
}

func TestNewSQLiteStorage_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "aduana.db")
	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	assert.Equal(t, dbPath, store.Path())
	require.NoError(t, store.Migrate(context.Background()))
}

func TestNewSQLiteStorage_InMemory(t *testing.T) {
	store, err := NewSQLiteStorage(InMemory)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))

	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestMigrate_Idempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, store.Migrate(ctx))

	for _, table := range []string{"memory_entries", "precedents", "validation_history"} {
		var count int
		err := store.db.QueryRow(`
			SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?
		`, table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s", table)
	}

	var indexCount int
	err := store.db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='index' AND name='idx_memory_entries_last_seen'
	`).Scan(&indexCount)
	require.NoError(t, err)
	assert.Equal(t, 1, indexCount)
}

func TestMigrate_NilContext(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	//nolint:staticcheck // nil context is the case under test
	err := store.Migrate(nil)
	assert.ErrorIs(t, err, ErrNilContext)
}
