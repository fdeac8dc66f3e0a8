package registry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/vk/projectgrid/internal/ctxlog"
)

// Validate checks that every registered directory exists under the registry
// root and is a directory. All failures are reported together as
// *MissingDirectoryError values inside a *multierror.Error.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.root == nil {
		return errors.New("registry has no root filesystem to validate against")
	}

	var result *multierror.Error
	for _, key := range r.order {
		if err := ctx.Err(); err != nil {
			return err
		}

		dir := r.directoryLocked(r.entries[key].id)
		info, err := fs.Stat(r.root, dir)
		switch {
		case err != nil:
			result = multierror.Append(result, &MissingDirectoryError{ID: key, Directory: dir, Err: err})
		case !info.IsDir():
			result = multierror.Append(result, &MissingDirectoryError{ID: key, Directory: dir, Err: fmt.Errorf("'%s' is not a directory", dir)})
		default:
			logger.Debug("Project directory verified.", "project", key, "directory", dir)
		}
	}

	if result != nil {
		result.ErrorFormat = formatValidationErrors
	}
	return result.ErrorOrNil()
}

func formatValidationErrors(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return fmt.Sprintf("registry validation failed:\n- %s", strings.Join(lines, "\n- "))
}
