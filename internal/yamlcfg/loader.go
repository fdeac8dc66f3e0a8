package yamlcfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/projectgrid/internal/config"
	"github.com/vk/projectgrid/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

const (
	keyRootName    = "rootName"
	keyProjects    = "projects"
	keyDirectories = "directories"
	keyInclude     = "include"
	keyDirectory   = "directory"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and translates the settings file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML settings %s: %w", path, err)
	}
	return l.Parse(ctx, src, path)
}

// Parse translates YAML source into the settings model.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "file", filename)

	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(src)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &config.Settings{Source: filename}, nil
		}
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", filename, err)
	}

	settings := &config.Settings{Source: filename}
	t := translator{filename: filename, settings: settings}
	if err := t.document(&doc); err != nil {
		return nil, err
	}

	logger.Debug("YAML loading complete.", "file", filename, "statements", len(settings.Statements))
	return settings, nil
}

type translator struct {
	filename string
	settings *config.Settings
}

func (t *translator) pos(n *yaml.Node) config.Position {
	return config.Position{File: t.filename, Line: n.Line}
}

func (t *translator) errorf(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%s: %s", t.pos(n), fmt.Sprintf(format, args...))
}

func (t *translator) document(doc *yaml.Node) error {
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return t.errorf(root, "settings document must be a mapping")
	}

	var directories *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case keyRootName:
			name, err := t.scalar(value, keyRootName)
			if err != nil {
				return err
			}
			t.settings.AddRootName(name, t.pos(key))
		case keyProjects:
			if err := t.projects(value); err != nil {
				return err
			}
		case keyDirectories:
			directories = value
		default:
			return t.errorf(key, "unsupported key '%s'", key.Value)
		}
	}

	if directories != nil {
		return t.directories(directories)
	}
	return nil
}

func (t *translator) projects(seq *yaml.Node) error {
	if seq.Kind != yaml.SequenceNode {
		return t.errorf(seq, "'%s' must be a list", keyProjects)
	}
	for _, item := range seq.Content {
		if item.Kind != yaml.MappingNode {
			return t.errorf(item, "project entry must be a mapping")
		}
		var id, dir string
		var hasDir bool
		for i := 0; i+1 < len(item.Content); i += 2 {
			key, value := item.Content[i], item.Content[i+1]
			str, err := t.scalar(value, key.Value)
			if err != nil {
				return err
			}
			switch key.Value {
			case keyInclude:
				id = str
			case keyDirectory:
				dir, hasDir = str, true
			default:
				return t.errorf(key, "unsupported project key '%s'", key.Value)
			}
		}
		if id == "" {
			return t.errorf(item, "project entry requires '%s'", keyInclude)
		}
		t.settings.AddInclude(id, t.pos(item))
		if hasDir {
			t.settings.AddSetDirectory(id, dir, t.pos(item))
		}
	}
	return nil
}

func (t *translator) directories(m *yaml.Node) error {
	if m.Kind != yaml.MappingNode {
		return t.errorf(m, "'%s' must be a mapping of identifier to directory", keyDirectories)
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, value := m.Content[i], m.Content[i+1]
		dir, err := t.scalar(value, key.Value)
		if err != nil {
			return err
		}
		t.settings.AddSetDirectory(key.Value, dir, t.pos(key))
	}
	return nil
}

func (t *translator) scalar(n *yaml.Node, name string) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", t.errorf(n, "'%s' must be a string", name)
	}
	return n.Value, nil
}
