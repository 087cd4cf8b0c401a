package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/agbru/sumbench/internal/cli"
	"github.com/agbru/sumbench/internal/config"
	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/internal/logging"
	"github.com/agbru/sumbench/internal/metrics"
	"github.com/agbru/sumbench/internal/orchestration"
	"github.com/agbru/sumbench/internal/tui"
	"github.com/agbru/sumbench/internal/ui"
)

// buildRunner resolves the selected strategies and assembles a Runner that
// feeds recorder.
func (a *Application) buildRunner(logger logging.Logger, recorder orchestration.MetricsRecorder, opts ...orchestration.RunnerOption) (*orchestration.Runner, error) {
	strategies, err := orchestration.StrategiesToRun(a.Config, a.Registry)
	if err != nil {
		return nil, err
	}
	comparator, err := orchestration.NewComparator(strategies, orchestration.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	gcMode, err := metrics.ParseGCMode(a.Config.GCMode)
	if err != nil {
		return nil, apperrors.NewConfigError("%v", err)
	}

	opts = append([]orchestration.RunnerOption{
		orchestration.WithMetricsRecorder(recorder),
		orchestration.WithGCMode(gcMode),
		orchestration.WithRunnerLogger(logger),
	}, opts...)
	return orchestration.NewRunner(comparator, a.Config.Sizes, opts...)
}

// presenter returns the renderer selected by --format.
func (a *Application) presenter() orchestration.ResultPresenter {
	if a.Config.Format == config.FormatJSON {
		return cli.JSONReportPresenter{}
	}
	return cli.NewTableReportPresenter(a.Config.Verbose)
}

// filePresenter renders the copy written to --output, without ANSI styling.
func (a *Application) filePresenter() orchestration.ResultPresenter {
	if a.Config.Format == config.FormatJSON {
		return cli.JSONReportPresenter{}
	}
	return cli.TableReportPresenter{Theme: ui.NoColorTheme, Verbose: a.Config.Verbose}
}

// runReport benchmarks every size and prints the report. On any failure it
// prints a diagnostic to the error writer and no table at all.
func (a *Application) runReport(ctx context.Context, out io.Writer, logger logging.Logger) int {
	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	if a.Config.Quiet || a.Config.Format == config.FormatJSON {
		reporter = orchestration.NullProgressReporter{}
	}

	recorder := metrics.NewRecorder()
	runner, err := a.buildRunner(logger, recorder, orchestration.WithProgressReporter(reporter))
	if err != nil {
		return a.fail(err)
	}

	report, err := runner.Run(ctx, a.ErrWriter)
	a.writeMetrics(recorder, logger)
	if err != nil {
		return a.fail(err)
	}

	if err := a.presenter().PresentReport(report, out); err != nil {
		return a.fail(apperrors.WrapError(err, "writing report"))
	}
	return a.finish(report, logger)
}

// runTUI launches the interactive dashboard. After a successful run the
// report is printed once more on the regular screen.
func (a *Application) runTUI(ctx context.Context, out io.Writer, logger logging.Logger) int {
	recorder := metrics.NewRecorder()
	runner, err := a.buildRunner(logger, recorder)
	if err != nil {
		return a.fail(err)
	}

	report, code := tui.Run(ctx, runner, Version)
	a.writeMetrics(recorder, logger)
	if code != apperrors.ExitSuccess {
		return code
	}

	if err := a.presenter().PresentReport(report, out); err != nil {
		return a.fail(apperrors.WrapError(err, "writing report"))
	}
	return a.finish(report, logger)
}

// finish writes the --output copy of a validated report.
func (a *Application) finish(report orchestration.Report, logger logging.Logger) int {
	if a.Config.OutputFile == "" {
		return apperrors.ExitSuccess
	}
	if err := cli.WriteReportToFile(report, a.filePresenter(), a.Config.OutputFile); err != nil {
		return a.fail(apperrors.WrapError(err, "saving report"))
	}
	logger.Info("report saved", logging.String("path", a.Config.OutputFile))
	return apperrors.ExitSuccess
}

// writeMetrics exports the recorded metrics when --metrics-file is set. A
// failed export is logged and does not change the exit code.
func (a *Application) writeMetrics(recorder *metrics.Recorder, logger logging.Logger) {
	if a.Config.MetricsFile == "" {
		return
	}
	if err := recorder.WriteTextfile(a.Config.MetricsFile); err != nil {
		logger.Error("metrics export failed", err, logging.String("path", a.Config.MetricsFile))
		return
	}
	logger.Debug("metrics written", logging.String("path", a.Config.MetricsFile))
}

// fail reports err and maps it to an exit code.
func (a *Application) fail(err error) int {
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(a.ErrWriter, "Run canceled.")
		return apperrors.ExitErrorCanceled
	}
	cli.DisplayError(err, a.ErrWriter)
	return apperrors.ExitCodeFor(err)
}
