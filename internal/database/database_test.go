package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/placelist/internal/database/repository"
	"github.com/jask/placelist/internal/place"
)

func openMigrated(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)
	require.NoError(t, RunMigrations(dbPath, migrations))
	// second run is a no-op
	require.NoError(t, RunMigrations(dbPath, migrations))

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db := openMigrated(t)

	require.NoError(t, SeedDefaults(ctx, db, place.DefaultSeed()))
	require.NoError(t, SeedDefaults(ctx, db, []place.Place{{Title: "ignored"}}))

	got, err := repository.NewPlaceRepo(db).List(ctx)
	require.NoError(t, err)
	require.Equal(t, place.DefaultSeed(), got)
}

func TestReplaceAllKeepsOrder(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db := openMigrated(t)
	repo := repository.NewPlaceRepo(db)

	s := place.New(place.DefaultSeed())
	require.NoError(t, s.Move(0, s.Len()-1))
	require.NoError(t, s.Insert(1, place.Place{Title: "Oslo", Description: "Fjord city"}))
	require.NoError(t, repo.ReplaceAll(ctx, s.Records()))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, s.Records(), got)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, s.Len(), n)
}

func TestEmbeddedMigrations(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := Open(filepath.Join(t.TempDir(), "embedded.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunEmbeddedMigrations(db))
	require.NoError(t, RunEmbeddedMigrations(db))
	// the caller's handle survives both runs
	require.NoError(t, db.PingContext(ctx))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM places").Scan(&count))
	require.Zero(t, count)
}

func TestWithTxRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := openMigrated(t)
	require.NoError(t, SeedDefaults(ctx, db, place.DefaultSeed()))

	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM places"); err != nil {
			return err
		}
		return sql.ErrTxDone
	})
	require.ErrorIs(t, err, sql.ErrTxDone)

	n, err := repository.NewPlaceRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, len(place.DefaultSeed()), n)
}
