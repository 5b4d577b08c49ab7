package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper-console/internal/database"
)

func TestPostgres(t *testing.T) {
	if _, ok := os.LookupEnv("DATABASE_URL"); !ok || testing.Short() {
		t.Skip("DATABASE_URL is not set")
	}

	ctx := context.Background()
	db, _, err := database.ConnectAndMigrate(ctx)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "TRUNCATE saved_game")
	require.NoError(t, err)

	s := NewPostgres(db)
	defer s.Close()

	testStore(t, s)
}
