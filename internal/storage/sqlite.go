package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Veraticus/aduana/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// InMemory opens a private in-memory database, mainly for tests.
const InMemory = ":memory:"

var (
	_ service.MemoryStore     = (*SQLiteStorage)(nil)
	_ service.PrecedentSource = (*SQLiteStorage)(nil)
	_ service.HistoryStore    = (*SQLiteStorage)(nil)
)

// SQLiteStorage persists correction memory, precedents and validation
// history in a single SQLite database.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// queryable is satisfied by both *sql.DB and *sql.Tx.
type queryable interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	dsn := dbPath
	if dbPath != InMemory {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = dbPath + "?_journal_mode=WAL&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection also keeps an in-memory database alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Path returns the database location.
func (s *SQLiteStorage) Path() string {
	return s.dbPath
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
