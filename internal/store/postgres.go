package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vancomm/minesweeper-console/internal/mines"
)

type SavedGame struct {
	Name      string
	Width     int
	Height    int
	Snapshot  []byte
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

// Postgres keeps snapshots in the saved_game table created by the
// database migrations.
type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Save(ctx context.Context, name string, snapshot *mines.Snapshot, overwrite bool) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	b, err := snapshot.Bytes()
	if err != nil {
		return err
	}

	args := pgx.NamedArgs{
		"name":     name,
		"width":    snapshot.Width,
		"height":   snapshot.Height,
		"snapshot": b,
	}
	query := `INSERT INTO saved_game (name, width, height, snapshot)
		VALUES (@name, @width, @height, @snapshot)`
	if overwrite {
		query += `
		ON CONFLICT (name) DO UPDATE SET
			width = EXCLUDED.width,
			height = EXCLUDED.height,
			snapshot = EXCLUDED.snapshot,
			updated_at = now()`
	}

	_, err = p.db.Exec(ctx, query, args)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrExists
	}
	return err
}

func (p *Postgres) Fetch(ctx context.Context, name string) (*SavedGame, error) {
	rows, _ := p.db.Query(
		ctx, "SELECT * FROM saved_game WHERE name = $1", name,
	)
	game, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SavedGame])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return game, err
}

func (p *Postgres) Load(ctx context.Context, name string) (*mines.Snapshot, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	game, err := p.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	snapshot, err := mines.DecodeSnapshot(game.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return snapshot, nil
}

func (p *Postgres) List(ctx context.Context) ([]string, error) {
	rows, _ := p.db.Query(ctx, "SELECT name FROM saved_game ORDER BY name")
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (p *Postgres) Close() error {
	p.db.Close()
	return nil
}
