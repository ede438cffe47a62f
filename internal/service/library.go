package service

import (
	"context"
	"sync"

	"github.com/jask/placelist/internal/database/repository"
	"github.com/jask/placelist/internal/dragdrop"
	"github.com/jask/placelist/internal/logging"
	"github.com/jask/placelist/internal/place"
)

// Library is the single entry point the UI uses for the place list. Store
// mutations happen on the caller's goroutine; Save may run elsewhere and only
// sees snapshots.
type Library struct {
	Store       *place.Store
	Places      *repository.PlaceRepo // nil keeps the order in memory
	Maintenance *MaintenanceService
	Log         *logging.Logger

	version int

	saveMu    sync.Mutex
	lastSaved int
}

// Snapshot is the list order at a given mutation count.
type Snapshot struct {
	Version int
	Places  []place.Place
}

func NewLibrary(store *place.Store, places *repository.PlaceRepo, maint *MaintenanceService, log *logging.Logger) *Library {
	if log == nil {
		log = logging.Noop()
	}
	return &Library{Store: store, Places: places, Maintenance: maint, Log: log}
}

// Load replaces the seeded order with the stored one, if any.
func (l *Library) Load(ctx context.Context) error {
	if l.Places == nil {
		return nil
	}
	stored, err := l.Places.List(ctx)
	if err != nil {
		return err
	}
	if len(stored) > 0 {
		l.Store.Replace(stored)
	}
	l.Log.InfoContext(ctx, "places loaded", "count", l.Store.Len(), "stored", len(stored))
	return nil
}

func (l *Library) Records() []place.Place { return l.Store.Records() }

func (l *Library) Len() int { return l.Store.Len() }

// Move reorders one place.
func (l *Library) Move(ctx context.Context, from, to int) error {
	err := l.Store.Move(from, to)
	l.Log.LogMove(ctx, from, to, err)
	if err == nil && from != to {
		l.version++
	}
	return err
}

// Payload serializes the place at index for dragging out.
func (l *Library) Payload(ctx context.Context, index int) (place.Item, error) {
	item, err := l.Store.Serialize(index)
	size := 0
	if text, ok := item.Text(); ok {
		size = len(text)
	}
	l.Log.LogPayload(ctx, index, size, err)
	return item, err
}

// Drop validates an inbound item and inserts the decoded place at index.
func (l *Library) Drop(ctx context.Context, item place.Item, index int) (place.Place, error) {
	p, err := place.Accept(item)
	if err == nil {
		err = l.Store.Insert(index, p)
	}
	l.Log.LogDrop(ctx, index, p.Title, err)
	if err != nil {
		return place.Place{}, err
	}
	l.version++
	return p, nil
}

// Reset clears anything stored and then restores the seed order. When the
// wipe fails the current order is left alone so screen and database agree.
func (l *Library) Reset(ctx context.Context) error {
	if l.Maintenance != nil && l.Maintenance.DB != nil {
		if err := l.Maintenance.Wipe(ctx); err != nil {
			l.Log.ErrorContext(ctx, "order reset failed", "error", err)
			return err
		}
	}
	l.Store.Reset()
	l.version++
	l.Log.InfoContext(ctx, "order reset", "count", l.Store.Len())
	return nil
}

// Snapshot captures the current order for Save.
func (l *Library) Snapshot() Snapshot {
	return Snapshot{Version: l.version, Places: l.Store.Records()}
}

// Save persists snap unless a newer snapshot was already written. It is a
// no-op without a repository.
func (l *Library) Save(ctx context.Context, snap Snapshot) error {
	if l.Places == nil {
		return nil
	}
	l.saveMu.Lock()
	defer l.saveMu.Unlock()
	if snap.Version < l.lastSaved {
		l.Log.DebugContext(ctx, "stale snapshot skipped", "version", snap.Version, "saved", l.lastSaved)
		return nil
	}
	err := l.Places.ReplaceAll(ctx, snap.Places)
	l.Log.LogPersist(ctx, len(snap.Places), err)
	if err != nil {
		return err
	}
	l.lastSaved = snap.Version
	return nil
}

// Session wires a drag session to this library.
func (l *Library) Session(ctx context.Context) *dragdrop.Session {
	return &dragdrop.Session{
		Source: func(index int) (place.Item, error) {
			return l.Payload(ctx, index)
		},
		Reorder: func(from, to int) error {
			return l.Move(ctx, from, to)
		},
		Target: func(item place.Item, index int) error {
			_, err := l.Drop(ctx, item, index)
			return err
		},
	}
}
