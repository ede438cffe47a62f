package place

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Find returns the index of the place whose title best matches query.
// Prefix matches win, then substring matches, then the smallest edit
// distance. The second result is false for an empty query or store.
func (s *Store) Find(query string) (int, bool) {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" || len(s.places) == 0 {
		return 0, false
	}
	for i, p := range s.places {
		if strings.HasPrefix(strings.ToUpper(p.Title), q) {
			return i, true
		}
	}
	for i, p := range s.places {
		if strings.Contains(strings.ToUpper(p.Title), q) {
			return i, true
		}
	}
	best, bestDist := 0, -1
	for i, p := range s.places {
		d := levenshtein.ComputeDistance(q, strings.ToUpper(p.Title))
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, true
}
