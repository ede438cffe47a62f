package place

import "slices"

// Place is a single list record.
type Place struct {
	Title       string `toml:"title" json:"title"`
	Description string `toml:"description" json:"description"`
	ImageRef    string `toml:"image" json:"image"`
}

// Store holds the canonical order of places. It is owned by a single
// goroutine (the UI loop) and does no locking.
type Store struct {
	places []Place
	seed   []Place
}

// New returns a store populated with a copy of seed.
func New(seed []Place) *Store {
	return &Store{places: slices.Clone(seed), seed: slices.Clone(seed)}
}

// Len returns the number of places.
func (s *Store) Len() int { return len(s.places) }

// Records returns a copy of the current order for display.
func (s *Store) Records() []Place { return slices.Clone(s.places) }

// At returns the place at index i.
func (s *Store) At(i int) (Place, error) {
	if err := s.check("at", i, len(s.places)); err != nil {
		return Place{}, err
	}
	return s.places[i], nil
}

// Move removes the place at from and reinserts it at to. Every other place
// keeps its relative order. Nothing changes when either index is invalid.
func (s *Store) Move(from, to int) error {
	if err := s.check("move", from, len(s.places)); err != nil {
		return err
	}
	if err := s.check("move", to, len(s.places)); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	p := s.places[from]
	s.places = slices.Delete(s.places, from, from+1)
	s.places = slices.Insert(s.places, to, p)
	return nil
}

// Insert places p at index i; i == Len() appends.
func (s *Store) Insert(i int, p Place) error {
	if err := s.check("insert", i, len(s.places)+1); err != nil {
		return err
	}
	s.places = slices.Insert(s.places, i, p)
	return nil
}

// Remove deletes and returns the place at index i.
func (s *Store) Remove(i int) (Place, error) {
	if err := s.check("remove", i, len(s.places)); err != nil {
		return Place{}, err
	}
	p := s.places[i]
	s.places = slices.Delete(s.places, i, i+1)
	return p, nil
}

// Replace swaps the whole order, e.g. with a snapshot loaded from disk.
func (s *Store) Replace(places []Place) {
	s.places = slices.Clone(places)
}

// Reset restores the order the store was created with.
func (s *Store) Reset() {
	s.places = slices.Clone(s.seed)
}

func (s *Store) check(op string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexError{Op: op, Index: i, Len: n}
	}
	return nil
}
