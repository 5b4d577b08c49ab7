package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-console/internal/config"
	"github.com/vancomm/minesweeper-console/internal/database"
	"github.com/vancomm/minesweeper-console/internal/game"
	"github.com/vancomm/minesweeper-console/internal/store"
)

type gameStore interface {
	game.Store
	Close() error
}

func openStore(ctx context.Context, cfg *config.Store, log logrus.FieldLogger) (gameStore, error) {
	switch cfg.Kind {
	case config.SQLiteStore:
		log.WithField("path", cfg.SQLitePath).Info("using sqlite store")
		return store.OpenSQLite(ctx, cfg.SQLitePath)
	case config.PostgresStore:
		db, version, err := database.ConnectAndMigrate(ctx)
		if err != nil {
			return nil, err
		}
		log.WithField("migration", version).Info("using postgres store")
		return store.NewPostgres(db), nil
	default:
		log.WithField("dir", cfg.SaveDir).Info("using file store")
		return store.NewFile(cfg.SaveDir)
	}
}
