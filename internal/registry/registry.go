package registry

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"sync"

	"github.com/vk/projectgrid/internal/projectid"
)

// Entry is a single (identifier, directory) pair as seen by consumers.
type Entry struct {
	ID        string
	Directory string
	// Conventional is true when the directory was derived from the
	// identifier rather than set explicitly.
	Conventional bool
}

// registration is the stored form of an entry. An empty dir means the
// directory follows the convention and is computed on every read.
type registration struct {
	id  *projectid.ID
	dir string
}

// Registry holds the project registrations of a single settings file.
type Registry struct {
	mu         sync.RWMutex
	root       fs.FS
	rootName   string
	order      []string
	entries    map[string]*registration
	namespaces map[string]struct{}
	sealed     bool
}

// New creates an empty Registry whose directories are relative to root.
// A nil root is allowed; Validate then refuses to run.
func New(root fs.FS) *Registry {
	return &Registry{
		root:       root,
		entries:    make(map[string]*registration),
		namespaces: make(map[string]struct{}),
	}
}

// SetRootName sets the cosmetic display name of the registry.
func (r *Registry) SetRootName(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("cannot rename to '%s': %w", name, ErrSealed)
	}
	r.rootName = name
	return nil
}

// RootName returns the cosmetic display name of the registry.
func (r *Registry) RootName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rootName
}

// Register binds an identifier to a directory. An empty directory means the
// directory follows the naming convention. Registering an identifier twice
// fails with a *DuplicateIdentifierError and leaves the registry unchanged.
func (r *Registry) Register(rawID, directory string) error {
	id, err := projectid.Parse(rawID)
	if err != nil {
		return err
	}
	dir, err := cleanDirectory(directory)
	if err != nil {
		return fmt.Errorf("project '%s': %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if r.sealed {
		return fmt.Errorf("cannot register '%s': %w", key, ErrSealed)
	}
	if _, exists := r.entries[key]; exists {
		attempted := dir
		if attempted == "" {
			attempted = r.conventionLocked(id)
		}
		return &DuplicateIdentifierError{
			ID:                key,
			ExistingDirectory: r.directoryLocked(id),
			Directory:         attempted,
		}
	}

	for _, ancestor := range id.Ancestors() {
		if _, registered := r.entries[ancestor.String()]; !registered {
			r.namespaces[ancestor.String()] = struct{}{}
		}
	}
	delete(r.namespaces, key)

	r.entries[key] = &registration{id: id, dir: dir}
	r.order = append(r.order, key)
	return nil
}

// Include registers an identifier with its conventional directory.
func (r *Registry) Include(rawID string) error {
	return r.Register(rawID, "")
}

// SetDirectory overrides the directory of a previously registered identifier.
func (r *Registry) SetDirectory(rawID, directory string) error {
	id, err := projectid.Parse(rawID)
	if err != nil {
		return err
	}
	if directory == "" {
		return fmt.Errorf("directory for project '%s' cannot be empty", id)
	}
	dir, err := cleanDirectory(directory)
	if err != nil {
		return fmt.Errorf("project '%s': %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if r.sealed {
		return fmt.Errorf("cannot move '%s': %w", key, ErrSealed)
	}
	reg, ok := r.entries[key]
	if !ok {
		return r.notFoundLocked(key)
	}
	reg.dir = dir
	return nil
}

// Resolve returns the directory registered for an identifier.
func (r *Registry) Resolve(rawID string) (string, error) {
	id, err := projectid.Parse(rawID)
	if err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.entries[id.String()]; !ok {
		return "", r.notFoundLocked(id.String())
	}
	return r.directoryLocked(id), nil
}

// Enumerate returns every registration in registration order.
// Namespace containers are not included.
func (r *Registry) Enumerate() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.order))
	for _, key := range r.order {
		reg := r.entries[key]
		out = append(out, Entry{
			ID:           key,
			Directory:    r.directoryLocked(reg.id),
			Conventional: reg.dir == "",
		})
	}
	return out
}

// Namespaces returns the identifiers that only exist as containers for
// nested projects, sorted.
func (r *Registry) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.namespaces))
	for key := range r.namespaces {
		out = append(out, key)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of registrations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Seal ends the configuration phase. Every later mutation fails with ErrSealed.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// directoryLocked returns the effective directory of id, registered or not.
// Callers must hold r.mu.
func (r *Registry) directoryLocked(id *projectid.ID) string {
	if reg, ok := r.entries[id.String()]; ok && reg.dir != "" {
		return reg.dir
	}
	return r.conventionLocked(id)
}

// conventionLocked places a project under its parent's effective directory.
func (r *Registry) conventionLocked(id *projectid.ID) string {
	parent, ok := id.Parent()
	if !ok {
		return id.Name()
	}
	return path.Join(r.directoryLocked(parent), id.Name())
}

func (r *Registry) notFoundLocked(key string) *NotFoundError {
	_, isNamespace := r.namespaces[key]
	return &NotFoundError{
		ID:          key,
		Namespace:   isNamespace,
		Suggestions: r.suggestLocked(key),
	}
}

// cleanDirectory normalizes a user supplied directory to a slash separated,
// cleaned path. The empty string stays empty. Absolute paths and paths that
// climb out of the root are rejected.
func cleanDirectory(dir string) (string, error) {
	if dir == "" {
		return "", nil
	}
	cleaned := path.Clean(filepath.ToSlash(dir))
	if !fs.ValidPath(cleaned) {
		return "", fmt.Errorf("directory '%s' must be relative and stay inside the root: %w", dir, ErrInvalidDirectory)
	}
	return cleaned, nil
}
