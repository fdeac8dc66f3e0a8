// internal/projectid/parser.go
package projectid

import (
	"fmt"
	"regexp"
	"strings"
)

// segmentRegex matches a single segment of an identifier, e.g. `simple-producer`.
var segmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// isValidSegmentName checks for undesirable but technically matching names.
func isValidSegmentName(name string) bool {
	if name == "." || name == ".." || name == "-" {
		return false
	}
	return true
}

// Parse creates a new ID by parsing its canonical string representation.
func Parse(raw string) (*ID, error) {
	trimmed := strings.TrimPrefix(raw, Separator)
	if trimmed == "" {
		return nil, fmt.Errorf("identifier cannot be empty")
	}

	id := &ID{}
	for _, segment := range strings.Split(trimmed, Separator) {
		if segment == "" {
			return nil, fmt.Errorf("identifier %q contains empty segment", raw)
		}
		if !segmentRegex.MatchString(segment) {
			return nil, fmt.Errorf("invalid segment %q in identifier %q", segment, raw)
		}
		if !isValidSegmentName(segment) {
			return nil, fmt.Errorf("invalid segment name %q in identifier %q", segment, raw)
		}
		id.Segments = append(id.Segments, segment)
	}

	return id, nil
}

// MustParse is like Parse but panics on error. Intended for literals in tests.
func MustParse(raw string) *ID {
	id, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return id
}
