// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package snapshot persists a normalized ranking snapshot in SQLite so a
// session can load it without decoding CSV. A snapshot is replaced as a
// whole on import; sessions only read it.
package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/conference-rank/pkg/types"
)

// Store manages one snapshot database file.
type Store struct {
	db   *sql.DB
	path string
}

// Meta describes the import that produced the snapshot.
type Meta struct {
	Source     string    `json:"source" yaml:"source"`
	ImportedAt time.Time `json:"imported_at" yaml:"imported_at"`
	Records    int       `json:"records" yaml:"records"`
}

// ErrNotSnapshot reports a database file without the snapshot schema.
var ErrNotSnapshot = errors.New("not a confrank snapshot")

// Open opens or creates the snapshot database at path for import and
// ensures the schema exists. It uses the default rollback journal, so no
// sidecar files outlive the connection.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// OpenReadOnly opens an existing snapshot without creating or changing
// anything. A missing file fails, and a database lacking the conferences
// table fails with ErrNotSnapshot.
func OpenReadOnly(ctx context.Context, path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	var n int
	err = db.QueryRowContext(ctx,
		`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'conferences'`).Scan(&n)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	if n == 0 {
		db.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrNotSnapshot)
	}
	return &Store{db: db, path: path}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conferences (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			acronym TEXT NOT NULL,
			year TEXT NOT NULL,
			category TEXT NOT NULL,
			paper_count INTEGER NOT NULL CHECK (paper_count >= 0),
			citation_count INTEGER NOT NULL CHECK (citation_count >= 0),
			h5_index INTEGER NOT NULL CHECK (h5_index >= 0),
			h5_source TEXT NOT NULL,
			classification TEXT NOT NULL,
			external_ids TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conferences_acronym ON conferences(acronym)`,
		`CREATE TABLE IF NOT EXISTS snapshot_meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Import replaces the snapshot contents with records, preserving their
// order, and records where they came from.
func (s *Store) Import(ctx context.Context, records []types.ConferenceRecord, source string) (Meta, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Meta{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM conferences`); err != nil {
		return Meta{}, fmt.Errorf("clearing snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO conferences (position, name, acronym, year, category, paper_count,
			citation_count, h5_index, h5_source, classification, external_ids)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Meta{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		ids := r.ExternalIDs
		if ids == nil {
			ids = map[string]string{}
		}
		idsJSON, err := json.Marshal(ids)
		if err != nil {
			return Meta{}, fmt.Errorf("encoding external ids for %s: %w", r.Acronym, err)
		}
		if _, err := stmt.ExecContext(ctx,
			i, r.Name, r.Acronym, r.Year, r.Category, r.PaperCount,
			r.CitationCount, r.H5Index, r.H5Source, r.Classification, string(idsJSON),
		); err != nil {
			return Meta{}, fmt.Errorf("inserting record %d (%s): %w", i, r.Acronym, err)
		}
	}

	meta := Meta{Source: source, ImportedAt: time.Now().UTC(), Records: len(records)}
	for key, value := range map[string]string{
		"source":      meta.Source,
		"imported_at": meta.ImportedAt.Format(time.RFC3339Nano),
	} {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snapshot_meta (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value=excluded.value`, key, value,
		); err != nil {
			return Meta{}, fmt.Errorf("writing snapshot metadata: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Meta{}, fmt.Errorf("committing snapshot: %w", err)
	}
	return meta, nil
}

// Records returns the snapshot's records in import order.
func (s *Store) Records(ctx context.Context) ([]types.ConferenceRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, acronym, year, category, paper_count, citation_count,
			h5_index, h5_source, classification, external_ids
		 FROM conferences ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying snapshot: %w", err)
	}
	defer rows.Close()

	records := []types.ConferenceRecord{}
	for rows.Next() {
		var (
			r       types.ConferenceRecord
			idsJSON string
		)
		if err := rows.Scan(
			&r.Name, &r.Acronym, &r.Year, &r.Category, &r.PaperCount, &r.CitationCount,
			&r.H5Index, &r.H5Source, &r.Classification, &idsJSON,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.ExternalIDs = map[string]string{}
		if idsJSON != "" {
			if err := json.Unmarshal([]byte(idsJSON), &r.ExternalIDs); err != nil {
				return nil, fmt.Errorf("decoding external ids for %s: %w", r.Acronym, err)
			}
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Meta returns the import metadata. A snapshot that was never imported has
// a zero ImportedAt.
func (s *Store) Meta(ctx context.Context) (Meta, error) {
	var meta Meta
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM conferences`).Scan(&meta.Records); err != nil {
		return Meta{}, fmt.Errorf("counting records: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM snapshot_meta`)
	if err != nil {
		return Meta{}, fmt.Errorf("querying snapshot metadata: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Meta{}, fmt.Errorf("scanning metadata: %w", err)
		}
		switch key {
		case "source":
			meta.Source = value
		case "imported_at":
			if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
				meta.ImportedAt = t
			}
		}
	}
	return meta, rows.Err()
}
