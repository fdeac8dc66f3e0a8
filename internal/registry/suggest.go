package registry

import (
	"slices"

	"github.com/agext/levenshtein"
)

const maxSuggestions = 3

// suggestLocked returns the registered identifiers closest to key by edit
// distance. Callers must hold r.mu.
func (r *Registry) suggestLocked(key string) []string {
	type candidate struct {
		id       string
		distance int
	}

	threshold := max(2, len(key)/3)
	var candidates []candidate
	for _, id := range r.order {
		d := levenshtein.Distance(key, id, nil)
		if d <= threshold {
			candidates = append(candidates, candidate{id: id, distance: d})
		}
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return a.distance - b.distance
	})

	var out []string
	for i := 0; i < len(candidates) && i < maxSuggestions; i++ {
		out = append(out, candidates[i].id)
	}
	return out
}
