package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vk/projectgrid/internal/app"
	"github.com/vk/projectgrid/internal/emit"
)

const (
	flagDir        = "dir"
	flagNamespaces = "namespaces"
	flagFormat     = "format"
	flagAbsolute   = "absolute"
	flagGoVersion  = "go-version"
)

// appFunc returns the App built by the root command's pre-run hook.
type appFunc func() *app.App

// loadsSettings is the annotation set of every command that reads the registry.
var loadsSettings = map[string]string{annotationLoadsSettings: "true"}

// usageArgs turns argument validation failures into usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// parseFormat reads --format (or PROJECTGRID_FORMAT) as an emit.Format.
func parseFormat(v *viper.Viper) (emit.Format, error) {
	f, err := emit.ParseFormat(v.GetString(flagFormat))
	if err != nil {
		return "", usageError(err)
	}
	return f, nil
}

func newListCommand(v *viper.Viper, current appFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "list",
		Short:       "List registered projects in registration order",
		Args:        usageArgs(cobra.NoArgs),
		Annotations: loadsSettings,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v.GetBool(flagNamespaces) {
				return current().ListNamespaces()
			}
			f, err := parseFormat(v)
			if err != nil {
				return err
			}
			return current().List(v.GetString(flagDir), f)
		},
	}
	cmd.Flags().String(flagDir, "", "Only list projects whose directory matches this glob, e.g. 'examples/**'.")
	cmd.Flags().Bool(flagNamespaces, false, "List identifiers that only group nested projects.")
	cmd.Flags().String(flagFormat, string(emit.FormatTable), "Output format: table, yaml, kts or gowork.")
	return cmd
}

func newResolveCommand(v *viper.Viper, current appFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "resolve IDENTIFIER",
		Short:       "Print the directory of a project",
		Args:        usageArgs(cobra.ExactArgs(1)),
		Annotations: loadsSettings,
		RunE: func(cmd *cobra.Command, args []string) error {
			return current().Resolve(args[0], v.GetBool(flagAbsolute))
		},
	}
	cmd.Flags().Bool(flagAbsolute, false, "Print an absolute path instead of one relative to the root.")
	return cmd
}

func newValidateCommand(current appFunc) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Check the settings file and that every project directory exists",
		Args:        usageArgs(cobra.NoArgs),
		Annotations: loadsSettings,
		RunE: func(cmd *cobra.Command, args []string) error {
			return current().Summary()
		},
	}
}

func newEmitCommand(v *viper.Viper, current appFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "emit",
		Short:       "Re-emit the registry as a table, YAML, Kotlin settings or a go.work file",
		Args:        usageArgs(cobra.NoArgs),
		Annotations: loadsSettings,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(v)
			if err != nil {
				return err
			}
			return current().Emit(f, emit.Options{GoVersion: v.GetString(flagGoVersion)})
		},
	}
	cmd.Flags().String(flagFormat, string(emit.FormatTable), "Output format: table, yaml, kts or gowork.")
	cmd.Flags().String(flagGoVersion, emit.DefaultGoVersion, "go directive for the gowork format.")
	return cmd
}
