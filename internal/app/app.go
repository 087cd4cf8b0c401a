// Package app wires configuration, the benchmark runner and the presentation
// layers into the sumbench command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/google/gops/agent"

	"github.com/agbru/sumbench/internal/cli"
	"github.com/agbru/sumbench/internal/config"
	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/internal/logging"
	"github.com/agbru/sumbench/internal/summation"
	"github.com/agbru/sumbench/internal/ui"
)

// Application represents the sumbench application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *summation.Registry
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets a custom strategy registry for the application.
func WithRegistry(r *summation.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Registry == nil {
		app.Registry = summation.NewDefaultRegistry()
	}

	programName := "sumbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Registry.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor)
	logger := a.newLogger()

	if a.Config.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			logger.Error("gops agent did not start", err)
		} else {
			defer agent.Close()
			logger.Debug("gops agent listening")
		}
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.TUI {
		return a.runTUI(ctx, out, logger)
	}
	return a.runReport(ctx, out, logger)
}

// newLogger returns the logger for the run. Logs go to the error writer so
// that stdout carries nothing but the report.
func (a *Application) newLogger() logging.Logger {
	if a.Config.Quiet || a.Config.TUI {
		return logging.NopLogger{}
	}
	return logging.NewConsoleLogger(a.ErrWriter, "sumbench", a.Config.Verbose)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Registry.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
