package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jask/placelist/internal/place"
)

// PlaceRepo stores a snapshot of the list order.
type PlaceRepo struct {
	db *sql.DB
}

func NewPlaceRepo(db *sql.DB) *PlaceRepo {
	return &PlaceRepo{db: db}
}

func (r *PlaceRepo) List(ctx context.Context) ([]place.Place, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT title, description, image_ref FROM places ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []place.Place
	for rows.Next() {
		var p place.Place
		if err := rows.Scan(&p.Title, &p.Description, &p.ImageRef); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PlaceRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM places`).Scan(&n)
	return n, err
}

// ReplaceAll rewrites the stored order with places in one transaction.
// Rows carry no identity across snapshots; ids are fresh each time.
func (r *PlaceRepo) ReplaceAll(ctx context.Context, places []place.Place) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM places`); err != nil {
		return fmt.Errorf("clear places: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO places(id, position, title, description, image_ref, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	now := time.Now().UTC().Truncate(time.Second)
	for i, p := range places {
		if _, err := stmt.ExecContext(ctx, uuid.NewString(), i, p.Title, p.Description, p.ImageRef, now); err != nil {
			return fmt.Errorf("insert place %d: %w", i, err)
		}
	}
	return tx.Commit()
}
