package app

import (
	"fmt"
	"path/filepath"

	"github.com/vk/projectgrid/internal/emit"
)

// List writes the registered projects whose directory matches pattern. An
// empty pattern lists every project.
func (a *App) List(pattern string, format emit.Format) error {
	entries := a.registry.Enumerate()
	if pattern != "" {
		filtered, err := a.registry.Filter(pattern)
		if err != nil {
			return err
		}
		entries = filtered
		a.logger.Debug("Filtered projects by directory.", "pattern", pattern, "matched", len(entries))
	}

	return emit.Write(a.outW, format, emit.Snapshot{Name: a.registry.RootName(), Entries: entries}, emit.Options{})
}

// ListNamespaces writes the identifiers that only group nested projects.
func (a *App) ListNamespaces() error {
	for _, ns := range a.registry.Namespaces() {
		if _, err := fmt.Fprintln(a.outW, ns); err != nil {
			return err
		}
	}
	return nil
}

// Resolve writes the directory of one project, relative to the root unless
// absolute is set.
func (a *App) Resolve(id string, absolute bool) error {
	dir, err := a.registry.Resolve(id)
	if err != nil {
		return err
	}
	if absolute {
		dir, err = filepath.Abs(filepath.Join(a.config.RootDir, filepath.FromSlash(dir)))
		if err != nil {
			return fmt.Errorf("failed to make '%s' absolute: %w", dir, err)
		}
	}
	a.logger.Debug("Resolved project.", "project", id, "directory", dir)

	_, err = fmt.Fprintln(a.outW, dir)
	return err
}

// Emit writes the whole registry in the given format.
func (a *App) Emit(format emit.Format, opts emit.Options) error {
	a.logger.Debug("Emitting registry.", "format", string(format))
	return emit.Write(a.outW, format, a.registry, opts)
}

// Summary writes a one-line report of a successfully validated registry.
func (a *App) Summary() error {
	name := a.registry.RootName()
	if name == "" {
		name = "(unnamed)"
	}
	_, err := fmt.Fprintf(a.outW, "%s: %d projects, %d namespaces, all directories present (%s)\n",
		name, a.registry.Len(), len(a.registry.Namespaces()), a.settingsPath)
	return err
}
