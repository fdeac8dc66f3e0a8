// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FindFirstFile returns the path of the first candidate name that exists as a
// regular file directly inside dir. The returned error wraps fs.ErrNotExist
// when none of them does.
func FindFirstFile(dir string, candidates ...string) (string, error) {
	if len(candidates) == 0 {
		panic("candidates must not be empty")
	}

	for _, name := range candidates {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if info.Mode().IsRegular() {
			return path, nil
		}
	}

	return "", fmt.Errorf("none of %v found in %s: %w", candidates, dir, fs.ErrNotExist)
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
