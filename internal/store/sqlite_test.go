package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestSQLite() (*SQLite, func(), error) {
	f, err := os.CreateTemp("", "sqlite-storage-")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create temp file: %v", err)
	}

	s, err := OpenSQLite(context.Background(), f.Name())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open sqlite store: %v", err)
	}

	teardown := func() {
		s.Close()
		f.Close()
		os.Remove(f.Name())
	}

	return s, teardown, nil
}

func TestSQLite(t *testing.T) {
	s, teardown, err := setupTestSQLite()
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	testStore(t, s)
}

func TestSQLiteMalformed(t *testing.T) {
	s, teardown, err := setupTestSQLite()
	if err != nil {
		t.Fatal(err)
	}
	defer teardown()

	_, err = s.db.Exec(`INSERT INTO saved_game (name, snapshot) VALUES (?, ?);`,
		"garbage", []byte{0xde, 0xad, 0xbe, 0xef})
	require.NoError(t, err)

	_, err = s.Load(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestSQLiteReopen(t *testing.T) {
	f, err := os.CreateTemp("", "sqlite-storage-")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	f.Close()

	ctx := context.Background()
	db, err := sql.Open("sqlite3", f.Name())
	require.NoError(t, err)
	s, err := NewSQLite(ctx, db)
	require.NoError(t, err)

	snapshot := midGameBoard(t, 7).Snapshot()
	require.NoError(t, s.Save(ctx, "kept", snapshot, false))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, f.Name())
	require.NoError(t, err)
	defer s.Close()

	loaded, err := s.Load(ctx, "kept")
	require.NoError(t, err)
	assert.Equal(t, snapshot, loaded)
}
