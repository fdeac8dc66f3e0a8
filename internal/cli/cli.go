package cli

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vk/projectgrid/internal/app"
)

const (
	// ExitConfig is returned for every configuration error.
	ExitConfig = 1
	// ExitUsage is returned for invalid flags, arguments or commands.
	ExitUsage = 2

	envPrefix = "PROJECTGRID"

	flagRoot      = "root"
	flagSettings  = "settings"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"

	// annotationLoadsSettings marks commands that need a loaded registry.
	// Built-in commands such as help and completion run without one.
	annotationLoadsSettings = "projectgrid/loads-settings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

// Execute runs the projectgrid command line with args. Command output goes to
// outW; logs, help for errors and diagnostics go to errW. The returned error,
// if any, is always an *ExitError.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	cmd := NewRootCommand(outW, errW)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	if strings.HasPrefix(err.Error(), "unknown command") || strings.HasPrefix(err.Error(), "unknown flag") {
		return usageError(err)
	}
	return &ExitError{Code: ExitConfig, Message: err.Error()}
}

// NewRootCommand builds the command tree. Every subcommand gets a loaded and
// validated App through the persistent pre-run hook.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var application *app.App

	root := &cobra.Command{
		Use:   "projectgrid",
		Short: "Inspect the project registry of a multi-project settings file",
		Long: `projectgrid loads a multi-project settings file (settings.hcl,
settings.gradle.kts or settings.yaml), registers every declared project
identifier with its source directory, checks that all directories exist and
lets you list, resolve or re-emit the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := cmd.Annotations[annotationLoadsSettings]; !ok {
				return nil
			}
			// Only the executing command's flags are bound, so subcommands
			// may reuse flag names such as --format.
			if err := v.BindPFlags(cmd.LocalNonPersistentFlags()); err != nil {
				return err
			}

			cfg, err := app.NewConfig(app.Config{
				RootDir:      v.GetString(flagRoot),
				SettingsPath: v.GetString(flagSettings),
				LogLevel:     strings.ToLower(v.GetString(flagLogLevel)),
				LogFormat:    strings.ToLower(v.GetString(flagLogFormat)),
			})
			if err != nil {
				return usageError(err)
			}

			application, err = app.NewApp(cmd.Context(), outW, errW, cfg)
			return err
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := root.PersistentFlags()
	flags.String(flagRoot, ".", "Directory that project directories are relative to.")
	flags.String(flagSettings, "", "Settings file. Defaults to the first of "+strings.Join(app.SettingsFileNames, ", ")+" in the root.")
	flags.String(flagLogLevel, "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.String(flagLogFormat, "text", "Log output format. Options: 'text', 'json' or 'console'.")
	_ = v.BindPFlags(flags)

	current := func() *app.App { return application }
	root.AddCommand(
		newListCommand(v, current),
		newResolveCommand(v, current),
		newValidateCommand(current),
		newEmitCommand(v, current),
	)
	return root
}
