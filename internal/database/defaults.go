package database

import (
	"context"
	"database/sql"

	"github.com/jask/placelist/internal/database/repository"
	"github.com/jask/placelist/internal/place"
)

// SeedDefaults stores seed when the places table is empty.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB, seed []place.Place) error {
	repo := repository.NewPlaceRepo(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return repo.ReplaceAll(ctx, seed)
}
