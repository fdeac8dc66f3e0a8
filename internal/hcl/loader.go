package hcl

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/projectgrid/internal/config"
	"github.com/vk/projectgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

const (
	blockInclude  = "include"
	blockProject  = "project"
	attrDirectory = "directory"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and translates the settings file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read HCL settings %s: %w", path, err)
	}
	return l.Parse(ctx, src, path)
}

// Parse translates HCL source into the settings model. filename is only used
// for positions in errors and statements.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "file", filename)

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("failed to parse HCL file %s: unexpected body type %T", filename, file.Body)
	}

	settings := &config.Settings{Source: filename}

	rootName, err := l.translateAttributes(settings, body, filename)
	if err != nil {
		return nil, err
	}

	evalCtx := newEvalContext(rootName)
	for _, block := range body.Blocks {
		if err := l.translateBlock(settings, block, evalCtx, filename); err != nil {
			return nil, err
		}
	}

	logger.Debug("HCL loading complete.", "file", filename, "statements", len(settings.Statements))
	return settings, nil
}

// translateAttributes handles the top-level attributes; only root_name is known.
func (l *Loader) translateAttributes(settings *config.Settings, body *hclsyntax.Body, filename string) (string, error) {
	names := make([]string, 0, len(body.Attributes))
	for name := range body.Attributes {
		names = append(names, name)
	}
	slices.Sort(names)

	rootName := ""
	for _, name := range names {
		attr := body.Attributes[name]
		if name != rootNameVar {
			return "", fmt.Errorf("%s: unsupported top-level attribute '%s'", attr.SrcRange, name)
		}
		value, err := evalString(attr.Expr, newEvalContext(""), name)
		if err != nil {
			return "", err
		}
		rootName = value
		settings.AddRootName(value, position(filename, attr.SrcRange))
	}
	return rootName, nil
}

// translateBlock turns an `include` block into an include statement, plus a
// setDirectory statement when it carries a directory, and a `project` block
// into a setDirectory statement.
func (l *Loader) translateBlock(settings *config.Settings, block *hclsyntax.Block, evalCtx *hcl.EvalContext, filename string) error {
	if block.Type != blockInclude && block.Type != blockProject {
		return fmt.Errorf("%s: unsupported block type '%s'", block.TypeRange, block.Type)
	}
	if len(block.Labels) != 1 {
		return fmt.Errorf("%s: '%s' block needs exactly one label, the project identifier", block.TypeRange, block.Type)
	}
	if len(block.Body.Blocks) > 0 {
		nested := block.Body.Blocks[0]
		return fmt.Errorf("%s: '%s' block does not support nested '%s' blocks", nested.TypeRange, block.Type, nested.Type)
	}

	id := block.Labels[0]
	pos := position(filename, block.TypeRange)

	var directory string
	hasDirectory := false
	for name, attr := range block.Body.Attributes {
		if name != attrDirectory {
			return fmt.Errorf("%s: unsupported attribute '%s' in '%s' block", attr.SrcRange, name, block.Type)
		}
		value, err := evalString(attr.Expr, evalCtx, name)
		if err != nil {
			return err
		}
		directory, hasDirectory = value, true
	}

	switch block.Type {
	case blockInclude:
		settings.AddInclude(id, pos)
		if hasDirectory {
			settings.AddSetDirectory(id, directory, pos)
		}
	case blockProject:
		if !hasDirectory {
			return fmt.Errorf("%s: 'project' block for '%s' requires a '%s' attribute", block.TypeRange, id, attrDirectory)
		}
		settings.AddSetDirectory(id, directory, pos)
	}
	return nil
}

// evalString evaluates expr and converts the result to a known, non-null string.
func evalString(expr hcl.Expression, evalCtx *hcl.EvalContext, name string) (string, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() || !val.IsKnown() {
		return "", fmt.Errorf("%s: attribute '%s' must be a known string", expr.Range(), name)
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("%s: attribute '%s' must be a string: %w", expr.Range(), name, err)
	}
	return str.AsString(), nil
}

func position(filename string, rng hcl.Range) config.Position {
	return config.Position{File: filename, Line: rng.Start.Line}
}
