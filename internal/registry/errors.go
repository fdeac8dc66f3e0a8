package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateIdentifier is returned when an identifier is registered twice.
	ErrDuplicateIdentifier = errors.New("duplicate project identifier")
	// ErrMissingDirectory is returned when a registered directory does not exist.
	ErrMissingDirectory = errors.New("missing project directory")
	// ErrInvalidDirectory is returned for absolute directories or ones outside the root.
	ErrInvalidDirectory = errors.New("invalid project directory")
	// ErrNotFound is returned when an identifier was never registered.
	ErrNotFound = errors.New("project not found")
	// ErrSealed is returned when the registry is mutated after Seal.
	ErrSealed = errors.New("registry is sealed")
)

// DuplicateIdentifierError reports a second registration of the same identifier.
type DuplicateIdentifierError struct {
	ID                string
	ExistingDirectory string
	Directory         string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("project '%s' is already registered with directory '%s' (attempted '%s')", e.ID, e.ExistingDirectory, e.Directory)
}

func (e *DuplicateIdentifierError) Unwrap() error { return ErrDuplicateIdentifier }

// MissingDirectoryError reports a registered directory that is absent or not a directory.
type MissingDirectoryError struct {
	ID        string
	Directory string
	Err       error
}

func (e *MissingDirectoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("project '%s': directory '%s' does not exist: %v", e.ID, e.Directory, e.Err)
	}
	return fmt.Sprintf("project '%s': directory '%s' does not exist", e.ID, e.Directory)
}

func (e *MissingDirectoryError) Is(target error) bool { return target == ErrMissingDirectory }

func (e *MissingDirectoryError) Unwrap() error { return e.Err }

// NotFoundError reports a lookup of an identifier that has no registration.
type NotFoundError struct {
	ID string
	// Namespace is set when the identifier only exists as a container for nested projects.
	Namespace   bool
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "project '%s' is not registered", e.ID)
	if e.Namespace {
		sb.WriteString(" (it is only a namespace for nested projects)")
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&sb, "; did you mean %s?", quoteJoin(e.Suggestions))
	}
	return sb.String()
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func quoteJoin(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + item + "'"
	}
	return strings.Join(quoted, ", ")
}
