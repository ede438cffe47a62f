package service

import (
	"context"
	"database/sql"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/placelist/internal/database"
	"github.com/jask/placelist/internal/database/repository"
	"github.com/jask/placelist/internal/place"
	"github.com/jask/placelist/internal/testdata"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLibraryInMemory(t *testing.T) {
	ctx := context.Background()
	lib := NewLibrary(place.New(place.DefaultSeed()), nil, nil, nil)

	require.NoError(t, lib.Load(ctx))
	require.NoError(t, lib.Move(ctx, 0, 1))
	item, err := lib.Payload(ctx, 0)
	require.NoError(t, err)
	text, _ := item.Text()
	require.Equal(t, "Rome\nEternal city", text)

	require.ErrorIs(t, lib.Move(ctx, 0, lib.Len()), place.ErrIndexOutOfRange)

	p, err := lib.Drop(ctx, place.TextItem("Oslo\nFjord city"), lib.Len())
	require.NoError(t, err)
	require.Equal(t, "Oslo", p.Title)
	require.Equal(t, len(place.DefaultSeed())+1, lib.Len())

	image := place.Item{Representations: []place.Representation{{Kind: "image/png", Data: []byte{1}}}}
	_, err = lib.Drop(ctx, image, 0)
	require.ErrorIs(t, err, place.ErrUnsupportedPayloadKind)

	require.NoError(t, lib.Save(ctx, lib.Snapshot()))
	require.NoError(t, lib.Reset(ctx))
	require.Equal(t, place.DefaultSeed(), lib.Records())
}

func TestLibraryPersistsOrder(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db := openDB(t)
	require.NoError(t, database.SeedDefaults(ctx, db, place.DefaultSeed()))

	repo := repository.NewPlaceRepo(db)
	lib := NewLibrary(place.New(place.DefaultSeed()), repo, &MaintenanceService{DB: db}, nil)
	require.NoError(t, lib.Load(ctx))
	require.NoError(t, lib.Move(ctx, 0, 3))
	require.NoError(t, lib.Save(ctx, lib.Snapshot()))

	// a fresh library over the same database sees the moved order
	again := NewLibrary(place.New(place.DefaultSeed()), repo, nil, nil)
	require.NoError(t, again.Load(ctx))
	require.Equal(t, lib.Records(), again.Records())
	moved, err := again.Store.At(3)
	require.NoError(t, err)
	require.Equal(t, "Paris", moved.Title)
}

func TestLibrarySkipsStaleSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewPlaceRepo(db)
	lib := NewLibrary(place.New(place.DefaultSeed()), repo, nil, nil)

	require.NoError(t, lib.Move(ctx, 0, 1))
	stale := lib.Snapshot()
	require.NoError(t, lib.Move(ctx, 0, 2))
	fresh := lib.Snapshot()

	require.NoError(t, lib.Save(ctx, fresh))
	require.NoError(t, lib.Save(ctx, stale))

	stored, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, fresh.Places, stored)
}

func TestLibraryResetWipesStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewPlaceRepo(db)
	lib := NewLibrary(place.New(place.DefaultSeed()), repo, &MaintenanceService{DB: db}, nil)

	require.NoError(t, lib.Move(ctx, 0, 4))
	require.NoError(t, lib.Save(ctx, lib.Snapshot()))
	require.NoError(t, lib.Reset(ctx))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Equal(t, place.DefaultSeed(), lib.Records())
}

func TestLibraryResetKeepsOrderWhenWipeFails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := openDB(t)
	repo := repository.NewPlaceRepo(db)
	lib := NewLibrary(place.New(place.DefaultSeed()), repo, &MaintenanceService{DB: db}, nil)

	require.NoError(t, lib.Move(ctx, 0, 4))
	require.NoError(t, lib.Save(ctx, lib.Snapshot()))
	moved := lib.Records()
	before := lib.Snapshot().Version

	require.NoError(t, db.Close())
	require.Error(t, lib.Reset(ctx))
	require.Equal(t, moved, lib.Records())
	require.Equal(t, before, lib.Snapshot().Version)
}

func TestLibrarySession(t *testing.T) {
	ctx := context.Background()
	lib := NewLibrary(place.New(place.DefaultSeed()), nil, nil, nil)
	sess := lib.Session(ctx)

	require.NoError(t, sess.Begin(1))
	require.NoError(t, sess.Hover(0))
	to, err := sess.End()
	require.NoError(t, err)
	require.Equal(t, 0, to)
	require.Equal(t, "Rome", lib.Records()[0].Title)

	require.NoError(t, sess.Drop(place.TextItem("Lima\nGarden city"), 2))
	require.Equal(t, "Lima", lib.Records()[2].Title)
}

func TestMaintenanceWithoutDB(t *testing.T) {
	require.Error(t, (&MaintenanceService{}).Wipe(context.Background()))
}

func TestLibraryRandomMovesKeepRecords(t *testing.T) {
	ctx := context.Background()
	r := rand.New(rand.NewSource(42))
	seed := testdata.Places(r, 12)
	lib := NewLibrary(place.New(seed), nil, nil, nil)

	for _, m := range testdata.Moves(r, len(seed), 200) {
		require.NoError(t, lib.Move(ctx, m.From, m.To))
		require.Len(t, lib.Records(), len(seed))
	}
	require.ElementsMatch(t, seed, lib.Records())
}
