// Package sqlite implements the SQLite record backend for satchel.
//
// SQLite is the query engine; records.jsonl in the data directory is the
// source of truth. Attach rebuilds the database from the JSONL file and every
// write (or Detach, under the on_close strategy) rewrites the file
// atomically.
package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// File names inside the data directory.
const (
	dbFile      = "satchel.db"
	recordsFile = "records.jsonl"
)

// Backend implements types.Vault over SQLite and a JSONL file.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	dataDir  string
	db       *sql.DB
	records  *recordTable
	logger   *slog.Logger

	// syncStrategy is the effective strategy; dirty is set when a write has
	// not reached records.jsonl yet.
	syncStrategy string
	dirty        bool
}

var _ types.Vault = (*Backend)(nil)

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the backend logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Backend) {
		b.logger = logger
	}
}

// NewBackend creates a detached backend. Call Attach before use.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// Attach validates config, creates DataDir if needed, builds a fresh
// database, and loads records.jsonl into it.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	// The JSONL file is authoritative, so the database always starts empty.
	dbPath := filepath.Join(dataDir, dbFile)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	jsonlPath := filepath.Join(dataDir, recordsFile)
	if err := ensureJSONL(jsonlPath); err != nil {
		db.Close()
		return err
	}
	loaded, err := loadRecordsJSONL(db, jsonlPath)
	if err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.db = db
	b.config = config
	b.dataDir = dataDir
	b.syncStrategy = config.SQLiteConfig.GetSyncStrategy()
	b.dirty = false
	b.records = &recordTable{backend: b}
	b.attached = true

	b.logger.Debug("backend attached",
		"data_dir", dataDir,
		"sync_strategy", b.syncStrategy,
		"records", loaded,
	)
	return nil
}

// Detach flushes pending writes and closes the database. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.dirty {
		if err := b.persistLocked(); err != nil {
			return fmt.Errorf("flush pending writes: %w", err)
		}
	}

	if err := b.db.Close(); err != nil {
		return err
	}
	b.db = nil
	b.records = nil
	b.attached = false
	b.logger.Debug("backend detached", "data_dir", b.dataDir)
	return nil
}

// Records returns the record table.
// Returns ErrVaultDetached if the backend is not attached.
func (b *Backend) Records() (types.RecordTable, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrVaultDetached
	}
	return b.records, nil
}

// written records that a mutation happened. The caller must hold b.mu.
func (b *Backend) written() error {
	if b.syncStrategy == types.SyncOnClose {
		b.dirty = true
		return nil
	}
	return b.persistLocked()
}

// persistLocked rewrites records.jsonl from the database. The caller must
// hold b.mu.
func (b *Backend) persistLocked() error {
	rows, err := b.db.Query(selectRecords + " ORDER BY record_id")
	if err != nil {
		return fmt.Errorf("reading records for JSONL: %w", err)
	}
	defer rows.Close()

	var lines [][]byte
	for rows.Next() {
		var rec recordJSON
		if err := rows.Scan(&rec.RecordID, &rec.Data, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return fmt.Errorf("scanning record for JSONL: %w", err)
		}
		line, err := rec.marshal()
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if err := writeJSONL(filepath.Join(b.dataDir, recordsFile), lines); err != nil {
		return err
	}
	b.dirty = false
	return nil
}

// newRecordID generates a UUID v7, falling back to v4.
func newRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
