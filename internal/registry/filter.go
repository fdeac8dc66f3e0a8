package registry

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter returns the entries, in registration order, whose directory matches
// the doublestar glob pattern (e.g. "examples/**").
func (r *Registry) Filter(pattern string) ([]Entry, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid directory pattern '%s': %w", pattern, doublestar.ErrBadPattern)
	}

	var out []Entry
	for _, entry := range r.Enumerate() {
		matched, err := doublestar.Match(pattern, entry.Directory)
		if err != nil {
			return nil, fmt.Errorf("matching '%s' against '%s': %w", entry.Directory, pattern, err)
		}
		if matched {
			out = append(out, entry)
		}
	}
	return out, nil
}
