// internal/projectid/id.go
package projectid

import (
	"slices"
	"strings"
)

// String serializes the ID into its canonical form, without a leading colon.
func (id *ID) String() string {
	if id == nil {
		return ""
	}
	return strings.Join(id.Segments, Separator)
}

// Absolute serializes the ID with a leading colon, as build scripts address projects.
func (id *ID) Absolute() string {
	if id == nil {
		return Separator
	}
	return Separator + id.String()
}

// Equal checks for equality between two ID pointers.
func (id *ID) Equal(other *ID) bool {
	if id == nil || other == nil {
		return id == other
	}
	return slices.Equal(id.Segments, other.Segments)
}

// IsAncestorOf reports whether other is nested, at any depth, under id.
func (id *ID) IsAncestorOf(other *ID) bool {
	if id.Depth() >= other.Depth() {
		return false
	}
	return slices.Equal(id.Segments, other.Segments[:len(id.Segments)])
}
