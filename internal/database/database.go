package database

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/minesweeper-console/internal/config"
)

//go:embed migrations/*.sql
var migrations embed.FS

func Connect(ctx context.Context) (*pgxpool.Pool, error) {
	config, err := config.NewPgxpoolConfig()
	if err != nil {
		return nil, err
	}
	return pgxpool.NewWithConfig(ctx, config)
}

// Migrate brings the schema at url up to date. It returns the applied
// version.
func Migrate(url string) (version uint, err error) {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return 0, fmt.Errorf("unable to create migrations iofs: %w", err)
	}
	migrator, err := migrate.NewWithSourceInstance("iofs", source, url)
	if err != nil {
		return 0, fmt.Errorf("unable to create migrator: %w", err)
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("failed to migrate database: %w", err)
	}
	version, _, err = migrator.Version()
	if err != nil {
		return 0, fmt.Errorf("failed to check migration version: %w", err)
	}
	return version, nil
}

func ConnectAndMigrate(ctx context.Context) (*pgxpool.Pool, uint, error) {
	url, err := config.DbURL()
	if err != nil {
		return nil, 0, err
	}
	version, err := Migrate(url)
	if err != nil {
		return nil, 0, err
	}
	conn, err := Connect(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("unable to connect to db: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, 0, fmt.Errorf("unable to ping db: %w", err)
	}
	return conn, version, nil
}
