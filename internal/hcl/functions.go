package hcl

import (
	"path"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// FileFunc mirrors the `file("dir")` helper of build scripts: it cleans a
// directory path and rejects anything that is not local to the settings root.
var FileFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "path", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		raw := args[0].AsString()
		if !filepath.IsLocal(filepath.FromSlash(raw)) {
			return cty.UnknownVal(cty.String), function.NewArgErrorf(0, "path %q must be relative and stay inside the settings root", raw)
		}
		return cty.StringVal(path.Clean(filepath.ToSlash(raw))), nil
	},
})

// functions returns the function table available to settings expressions.
func functions() map[string]function.Function {
	return map[string]function.Function{
		"file":   FileFunc,
		"format": stdlib.FormatFunc,
		"join":   stdlib.JoinFunc,
		"lower":  stdlib.LowerFunc,
		"upper":  stdlib.UpperFunc,
	}
}

// rootNameVar is the variable settings expressions use to refer to root_name.
const rootNameVar = "root_name"

func newEvalContext(rootName string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			rootNameVar: cty.StringVal(rootName),
		},
		Functions: functions(),
	}
}
