// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the sigcalc command line, a small calculator whose
// subcommands are declared with the bind engine.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/invowk/sigcli/internal/config"
	"github.com/invowk/sigcli/internal/issue"
	"github.com/invowk/sigcli/pkg/bind"
)

// ConfigPathEnv names an explicit config file, bypassing the config directory.
const ConfigPathEnv = config.EnvPrefix + "_CONFIG"

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs sigcalc with the process arguments and exits with its code.
// This is called by main.main().
func Execute() {
	os.Exit(Main())
}

// Main runs sigcalc with the process arguments and returns the exit code.
func Main() int {
	err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	return exitCode(err)
}

// run loads the configuration, declares the calculator and dispatches args.
// Failures are reported on stderr and returned as *ExitError.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.NewProvider().Load(ctx, config.LoadOptions{
		ConfigFilePath: os.Getenv(ConfigPathEnv),
	})
	if err != nil {
		renderError(stderr, err, false, config.ColorSchemeAuto)
		renderIssue(stderr, issue.ConfigLoadFailedId, config.ColorSchemeAuto)
		return &ExitError{Code: ExitFailure, Err: err}
	}

	logger := newLogger(stderr, cfg)

	calc := newCalculator(stdout)
	reg, err := calc.registry(cfg.UI.Verbose)
	if err != nil {
		renderError(stderr, err, cfg.UI.Verbose, cfg.UI.ColorScheme)
		return &ExitError{Code: ExitFailure, Err: err}
	}

	version := getVersionString()
	err = bind.Run(ctx, reg, args,
		bind.WithProgramName(config.AppName),
		bind.WithOutput(stdout, stderr),
		bind.WithLogger(logger.WithPrefix("bind")),
		bind.WithVersion(version),
		bind.WithExecutor(fangExecutor(version)),
	)
	if err != nil {
		logger.Debug("command failed", "error", err)
		renderError(stderr, err, calc.verbose || cfg.UI.Verbose, cfg.UI.ColorScheme)
		return &ExitError{Code: classify(err), Err: err}
	}
	return nil
}

// newLogger creates the stderr logger at the configured level; verbose
// configuration raises it to debug.
func newLogger(w io.Writer, cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(string(cfg.Log.Level))
	if err != nil {
		level = log.WarnLevel
	}
	if cfg.UI.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}

// fangExecutor runs the bound command tree through fang for styled help and
// signal handling. Errors are rendered by sigcalc itself once the engine has
// classified them, so fang's own error output is disabled.
func fangExecutor(version string) bind.ExecuteFunc {
	return func(ctx context.Context, root *cobra.Command) error {
		return fang.Execute(ctx, root,
			fang.WithVersion(version),
			fang.WithoutManpage(),
			fang.WithoutCompletions(),
			fang.WithErrorHandler(func(io.Writer, fang.Styles, error) {}),
			fang.WithNotifySignal(os.Interrupt),
		)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
