package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/ecc/pkg/ontology/internalerr"
	"github.com/cognicore/ecc/pkg/ontology/store"
)

// timeLayout is fixed width so that text order in created_at is time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	source TEXT,
	extension TEXT NOT NULL,
	created_at TEXT NOT NULL,
	nodes INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
	run_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	parent TEXT NOT NULL,
	code TEXT,
	path TEXT NOT NULL,
	depth INTEGER NOT NULL,
	PRIMARY KEY(run_id, name),
	UNIQUE(run_id, position),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS entries_parent ON entries(run_id, parent);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun stores a run and all of its entries in one transaction
func (s *sqliteStore) SaveRun(ctx context.Context, run store.Run, entries []store.Entry) error {
	if run.ID == "" {
		return fmt.Errorf("%w: run without id", internalerr.ErrInvalidInput)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?`, run.ID).Scan(&exists)
	if err == nil {
		return fmt.Errorf("%w: run %s", internalerr.ErrDuplicate, run.ID)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, source, extension, created_at, nodes) VALUES (?, ?, ?, ?, ?)`,
		run.ID,
		run.Source,
		run.Extension,
		run.CreatedAt.UTC().Format(timeLayout),
		run.Nodes,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO entries (run_id, position, name, parent, code, path, depth)
VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		var code sql.NullString
		if e.Code != "" {
			code = sql.NullString{String: e.Code, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, run.ID, e.Position, e.Name, e.Parent, code, e.Path, e.Depth); err != nil {
			return fmt.Errorf("insert %q: %w", e.Name, err)
		}
	}

	return tx.Commit()
}

// LatestRun returns the most recently created run
func (s *sqliteStore) LatestRun(ctx context.Context) (store.Run, bool, error) {
	var (
		run     store.Run
		source  sql.NullString
		created string
	)
	// ULIDs sort by creation time, so the id breaks timestamp ties.
	err := s.db.QueryRowContext(ctx, `
SELECT id, source, extension, created_at, nodes
FROM runs
ORDER BY created_at DESC, id DESC
LIMIT 1`).Scan(&run.ID, &source, &run.Extension, &created, &run.Nodes)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Run{}, false, nil
	}
	if err != nil {
		return store.Run{}, false, err
	}

	run.Source = source.String
	run.CreatedAt, err = time.Parse(timeLayout, created)
	if err != nil {
		return store.Run{}, false, fmt.Errorf("parse created_at: %w", err)
	}
	return run, true, nil
}

// GetEntry retrieves a single entry by node name
func (s *sqliteStore) GetEntry(ctx context.Context, runID, name string) (store.Entry, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT run_id, position, name, parent, code, path, depth
FROM entries
WHERE run_id = ? AND name = ?`, runID, name)

	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Entry{}, false, nil
	}
	if err != nil {
		return store.Entry{}, false, err
	}
	return e, true, nil
}

// Children returns the direct children of a node in breadth-first order
func (s *sqliteStore) Children(ctx context.Context, runID, name string) ([]store.Entry, error) {
	return s.queryEntries(ctx, `
SELECT run_id, position, name, parent, code, path, depth
FROM entries
WHERE run_id = ? AND parent = ? AND parent <> ''
ORDER BY position`, runID, name)
}

// Entries returns every entry of a run in breadth-first order
func (s *sqliteStore) Entries(ctx context.Context, runID string) ([]store.Entry, error) {
	return s.queryEntries(ctx, `
SELECT run_id, position, name, parent, code, path, depth
FROM entries
WHERE run_id = ?
ORDER BY position`, runID)
}

func (s *sqliteStore) queryEntries(ctx context.Context, query string, args ...interface{}) ([]store.Entry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(sc scanner) (store.Entry, error) {
	var (
		e    store.Entry
		code sql.NullString
	)
	if err := sc.Scan(&e.RunID, &e.Position, &e.Name, &e.Parent, &code, &e.Path, &e.Depth); err != nil {
		return store.Entry{}, err
	}
	e.Code = code.String
	return e, nil
}
