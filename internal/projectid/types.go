// internal/projectid/types.go
package projectid

// Separator delimits the segments of an identifier.
const Separator = ":"

// ID is the structured representation of a project identifier.
// It is modeled as a path from the top-level project down, broken into segments.
type ID struct {
	Segments []string
}

// Name returns the last segment of the identifier.
func (id *ID) Name() string {
	if id == nil || len(id.Segments) == 0 {
		return ""
	}
	return id.Segments[len(id.Segments)-1]
}

// Depth returns the number of segments.
func (id *ID) Depth() int {
	if id == nil {
		return 0
	}
	return len(id.Segments)
}

// Parent returns the enclosing identifier. Top-level identifiers have no parent.
func (id *ID) Parent() (*ID, bool) {
	if id.Depth() < 2 {
		return nil, false
	}
	segments := make([]string, len(id.Segments)-1)
	copy(segments, id.Segments)
	return &ID{Segments: segments}, true
}

// Ancestors returns every enclosing identifier, outermost first.
func (id *ID) Ancestors() []*ID {
	var out []*ID
	for i := 1; i < id.Depth(); i++ {
		segments := make([]string, i)
		copy(segments, id.Segments[:i])
		out = append(out, &ID{Segments: segments})
	}
	return out
}
