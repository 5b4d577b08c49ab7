package config

import (
	"fmt"
	"strings"
)

type StoreKind string

const (
	FileStore     StoreKind = "file"
	SQLiteStore   StoreKind = "sqlite"
	PostgresStore StoreKind = "postgres"
)

type Store struct {
	Kind       StoreKind
	SaveDir    string
	SQLitePath string
}

func NewStore() (*Store, error) {
	kind := StoreKind(strings.ToLower(lookupString("MINES_STORE", string(FileStore))))
	switch kind {
	case FileStore, SQLiteStore, PostgresStore:
	default:
		return nil, fmt.Errorf("unknown MINES_STORE %q", kind)
	}

	store := &Store{
		Kind:       kind,
		SaveDir:    lookupString("MINES_SAVE_DIR", "."),
		SQLitePath: lookupString("MINES_SQLITE_PATH", "minesweeper.db"),
	}

	return store, nil
}
