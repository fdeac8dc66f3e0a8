package emit

import (
	"fmt"
	"io"
	"slices"

	"github.com/vk/projectgrid/internal/registry"
)

// Format names an output format.
type Format string

const (
	FormatTable  Format = "table"
	FormatYAML   Format = "yaml"
	FormatKTS    Format = "kts"
	FormatGoWork Format = "gowork"
)

// DefaultGoVersion is the go directive written to emitted workspaces.
const DefaultGoVersion = "1.24"

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatTable, FormatYAML, FormatKTS, FormatGoWork}
}

// Source is the read side of a registry.
type Source interface {
	RootName() string
	Enumerate() []registry.Entry
}

// Options tunes individual formats.
type Options struct {
	// GoVersion is the go directive of FormatGoWork. Defaults to DefaultGoVersion.
	GoVersion string
}

// Write renders src in the requested format.
func Write(w io.Writer, format Format, src Source, opts Options) error {
	switch format {
	case FormatTable:
		return writeTable(w, src.Enumerate())
	case FormatYAML:
		return writeYAML(w, src)
	case FormatKTS:
		return writeKTS(w, src)
	case FormatGoWork:
		return writeGoWork(w, src.Enumerate(), opts.GoVersion)
	default:
		return fmt.Errorf("unknown format '%s', expected one of %v", format, Formats())
	}
}

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !slices.Contains(Formats(), f) {
		return "", fmt.Errorf("unknown format '%s', expected one of %v", s, Formats())
	}
	return f, nil
}

// Snapshot is a fixed Source, e.g. a filtered view of a registry.
type Snapshot struct {
	Name    string
	Entries []registry.Entry
}

// RootName implements Source.
func (s Snapshot) RootName() string { return s.Name }

// Enumerate implements Source.
func (s Snapshot) Enumerate() []registry.Entry { return s.Entries }
