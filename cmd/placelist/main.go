package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/placelist/internal/clipboard"
	"github.com/jask/placelist/internal/config"
	"github.com/jask/placelist/internal/database"
	"github.com/jask/placelist/internal/database/repository"
	"github.com/jask/placelist/internal/logging"
	"github.com/jask/placelist/internal/place"
	"github.com/jask/placelist/internal/prefs"
	"github.com/jask/placelist/internal/service"
	"github.com/jask/placelist/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()

	seed, err := prefs.LoadPlaces(cfg.Seed.Path)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	var (
		places *repository.PlaceRepo
		maint  *service.MaintenanceService
	)
	if cfg.Database.Path != "" {
		db, err := openDB(ctx, cfg.Database.Path, seed)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer db.Close()
		places = repository.NewPlaceRepo(db)
		maint = &service.MaintenanceService{DB: db}
	}

	lib := service.NewLibrary(place.New(seed), places, maint, logger)
	if err := lib.Load(ctx); err != nil {
		log.Fatalf("load places: %v", err)
	}

	p := tea.NewProgram(tui.New(ctx, lib, tui.Options{
		Title:     cfg.UI.Title,
		SeedPath:  cfg.Seed.Path,
		Clipboard: &clipboard.OSC52{Out: os.Stderr, Tmux: os.Getenv("TMUX") != ""},
	}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func openDB(ctx context.Context, path string, seed []place.Place) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, err
	}
	if err := database.RunEmbeddedMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := database.SeedDefaults(ctx, db, seed); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return db, nil
}

// openLogger writes to a file because the terminal belongs to the UI.
func openLogger(cfg config.LogConfig) (*logging.Logger, func(), error) {
	if cfg.Path == "" {
		return logging.Noop(), func() {}, nil
	}
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(f, level, cfg.Format), func() { _ = f.Close() }, nil
}
