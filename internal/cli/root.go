// Package cli implements the cobra-based CLI commands for patterns.
//
// Each subcommand (list, run) is defined in its own file within this
// package. This file defines the root command that serves as the parent for
// all subcommands and handles global flags, settings loading, and logging.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shinji-kodama/gof-patterns/internal/catalog"
	"github.com/shinji-kodama/gof-patterns/internal/config"
	"github.com/shinji-kodama/gof-patterns/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	jsonOutput bool

	// verbose enables debug logging on stderr.
	verbose bool

	// configPath is the optional settings file given with --config.
	configPath string
)

// settings and logger are populated by the root command's
// PersistentPreRunE before any subcommand runs.
var (
	settings = config.Default()
	logger   = zap.NewNop()
)

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command with the
// built-in catalog of demonstrations.
func NewRootCommand() *cobra.Command {
	return newRootCommand(catalog.Default())
}

func newRootCommand(cat *catalog.Catalog) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "patterns",
		Short: "Runnable demonstrations of the 23 Gang-of-Four design patterns",
		Long: `patterns lists and runs small, self-contained demonstrations of the
creational, structural, and behavioral design patterns.

Each demonstration prints a fixed transcript. A few driver inputs (the UI
platform, the Bridge random seed, and the Facade movie) can be changed with
a YAML or JSONC settings file passed via --config.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors lets Execute format errors as text or JSON.
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = newLogger(cmd.ErrOrStderr(), verbose)

			settings = config.Default()
			if configPath == "" {
				VerboseLog("No settings file given, using defaults")
				return nil
			}
			loaded, err := config.Load(configPath)
			if err != nil {
				return err // Load already returns CLIError with ExitConfigError
			}
			settings = loaded
			logger.Debug("settings loaded",
				zap.String("path", configPath),
				zap.String("platform", settings.Platform),
				zap.Int64("seed", settings.Seed),
				zap.String("movie", settings.Movie),
			)
			return nil
		},

		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a settings file (.yaml, .yml, .json, .jsonc)")

	rootCmd.AddCommand(NewListCommand(cat))
	rootCmd.AddCommand(NewRunCommand(cat))

	return rootCmd
}

// newLogger builds the diagnostic logger. Without verbose mode it is a
// no-op, so demo output on stdout is never interleaved with log lines.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(int(ExitCodeFor(err)))
	}
}

// ExitCodeFor translates an error returned by a command into a process
// exit code. CLIError values carry their own codes; anything else maps to
// ExitGeneralError.
func ExitCodeFor(err error) model.ExitCode {
	if err == nil {
		return model.ExitSuccess
	}
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitGeneralError
}

// printError writes err to w in the format selected by the --json flag.
func printError(w io.Writer, err error) {
	message, underlying := err.Error(), error(nil)
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		message, underlying = cliErr.Message, cliErr.Err
	}

	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// Errors go to stderr even in JSON mode; stdout is reserved for
		// successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	if underlying != nil {
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// VerboseLog records a debug message. It is only emitted when verbose
// mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	logger.Debug(fmt.Sprintf(format, args...))
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
