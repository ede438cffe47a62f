// Package testdata builds random place lists for property tests.
package testdata

import (
	"fmt"
	"math/rand"

	"github.com/jask/placelist/internal/place"
)

var (
	names  = []string{"Lisbon", "Porto", "Oslo", "Bergen", "Lima", "Quito", "Hanoi", "Hue", "Perth", "Cairns"}
	blurbs = []string{"by the sea", "up in the hills", "old town", "river city", "island hop", ""}
)

// Places returns n places with distinct titles.
func Places(r *rand.Rand, n int) []place.Place {
	out := make([]place.Place, 0, n)
	for i := 0; i < n; i++ {
		name := names[r.Intn(len(names))]
		out = append(out, place.Place{
			Title:       fmt.Sprintf("%s %d", name, i),
			Description: blurbs[r.Intn(len(blurbs))],
			ImageRef:    fmt.Sprintf("img-%d", i),
		})
	}
	return out
}

// Move is a reorder step.
type Move struct {
	From, To int
}

// Moves returns count valid moves over a list of length n.
func Moves(r *rand.Rand, n, count int) []Move {
	out := make([]Move, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, Move{From: r.Intn(n), To: r.Intn(n)})
	}
	return out
}
