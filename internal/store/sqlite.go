package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

// SQLite keeps gob-encoded snapshots in a single key/value table.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database file at path.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	s, err := NewSQLite(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func NewSQLite(ctx context.Context, db *sql.DB) (*SQLite, error) {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS saved_game (
	name		TEXT PRIMARY KEY,
	snapshot	BLOB NOT NULL,
	saved_at	TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	if err != nil {
		return nil, fmt.Errorf("failed to create saved_game table: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Load returns [ErrNotFound] if name is not present.
func (s *SQLite) Load(ctx context.Context, name string) (*mines.Snapshot, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	var v []uint8
	if err := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM saved_game WHERE name = ?;`,
		name).Scan(&v); errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	snapshot, err := mines.DecodeSnapshot(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return snapshot, nil
}

// Save inserts a new snapshot, or replaces an existing one when overwrite is
// set. Without overwrite an existing name yields [ErrExists].
func (s *SQLite) Save(ctx context.Context, name string, snapshot *mines.Snapshot, overwrite bool) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	b, err := snapshot.Bytes()
	if err != nil {
		return err
	}

	query := `INSERT INTO saved_game (name, snapshot) VALUES (?, ?);`
	if overwrite {
		query = `
INSERT INTO saved_game (name, snapshot)
VALUES (?, ?)
ON CONFLICT(name)
DO UPDATE SET snapshot = excluded.snapshot, saved_at = CURRENT_TIMESTAMP;`
	}
	_, err = s.db.ExecContext(ctx, query, name, b)

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return ErrExists
	}
	return err
}

func (s *SQLite) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM saved_game ORDER BY name;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
