package registry

import (
	"context"
	"fmt"

	"github.com/vk/projectgrid/internal/config"
	"github.com/vk/projectgrid/internal/ctxlog"
)

// Apply replays the statements of a loaded settings file, in order, against
// the registry. The first failing statement aborts with its source position.
func (r *Registry) Apply(ctx context.Context, settings *config.Settings) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Applying settings statements to registry...", "source", settings.Source, "statements", len(settings.Statements))

	for _, stmt := range settings.Statements {
		var err error
		switch stmt.Kind {
		case config.StatementRootName:
			err = r.SetRootName(stmt.Name)
		case config.StatementInclude:
			err = r.Include(stmt.Identifier)
		case config.StatementSetDirectory:
			err = r.SetDirectory(stmt.Identifier, stmt.Directory)
		default:
			err = fmt.Errorf("unsupported statement kind %s", stmt.Kind)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", stmt.Pos, err)
		}
		logger.Debug("Applied settings statement.", "kind", stmt.Kind.String(), "project", stmt.Identifier, "pos", stmt.Pos.String())
	}

	logger.Info("Registry loaded successfully.", "root_name", r.RootName(), "projects", r.Len(), "namespaces", len(r.Namespaces()))
	return nil
}
