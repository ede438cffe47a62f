package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/placelist/internal/database"
)

// MaintenanceService houses destructive actions surfaced through the TUI.
type MaintenanceService struct {
	DB *sql.DB
}

// Wipe deletes the stored order. It keeps the schema intact so the app can continue running.
func (s *MaintenanceService) Wipe(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM places"); err != nil {
			return fmt.Errorf("wipe places: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return nil
}
