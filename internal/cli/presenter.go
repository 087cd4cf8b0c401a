package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/briandowns/spinner"
	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/internal/format"
	"github.com/agbru/sumbench/internal/orchestration"
	"github.com/agbru/sumbench/internal/sysmon"
	"github.com/agbru/sumbench/internal/ui"
)

// SizeHeader is the header of the first report column.
const SizeHeader = "int[]"

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner and a progress bar written to the given writer.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar while the runs finish.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, totalRuns int, out io.Writer) {
	DisplayProgress(wg, progressChan, totalRuns, out)
}

// DisplayProgress consumes progressChan until it is closed, updating a
// spinner line with the overall progress, the last finished run and an ETA.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, totalRuns int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(totalRuns)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(" " + progressBar(0, ProgressBarWidth) + "   0%")
	s.Start()
	defer s.Stop()

	for update := range progressChan {
		s.UpdateSuffix(FormatProgressLine(agg.Update(update)))
	}
}

// FormatProgressLine renders one spinner suffix.
func FormatProgressLine(p orchestration.AggregatedProgress) string {
	return fmt.Sprintf(" %s %3.0f%%  %s @ %s: %s  ETA %s",
		progressBar(p.Fraction, ProgressBarWidth),
		p.Fraction*100,
		p.Strategy,
		format.FormatSize(p.Size),
		format.FormatExecutionDuration(p.Elapsed),
		format.FormatETA(p.ETA),
	)
}

// TableReportPresenter renders a Report as a bordered text table with one
// row per input size and one "<n> ms" cell per strategy.
type TableReportPresenter struct {
	// Theme colors the table; NoColorTheme yields plain text.
	Theme ui.Theme
	// Verbose appends a description of the environment below the table.
	Verbose bool
}

// NewTableReportPresenter returns a presenter using the current theme.
func NewTableReportPresenter(verbose bool) TableReportPresenter {
	return TableReportPresenter{Theme: ui.GetCurrentTheme(), Verbose: verbose}
}

var _ orchestration.ResultPresenter = TableReportPresenter{}

// PresentReport writes the table, and the environment footer when verbose.
func (p TableReportPresenter) PresentReport(report orchestration.Report, out io.Writer) error {
	if _, err := fmt.Fprintln(out, RenderTable(report, p.Theme)); err != nil {
		return err
	}
	if p.Verbose {
		if _, err := fmt.Fprintln(out, p.Theme.Foreground(p.Theme.Dim).Render(FormatEnvironment(report.Environment))); err != nil {
			return err
		}
	}
	return nil
}

// TableRows returns the header and the cell text of a report, without styling.
func TableRows(report orchestration.Report) (header []string, rows [][]string) {
	header = append([]string{SizeHeader}, report.Strategies...)
	rows = make([][]string, len(report.Rows))
	for i, row := range report.Rows {
		cells := make([]string, 0, len(row.Timings)+1)
		cells = append(cells, format.FormatSize(row.Size))
		for _, rec := range row.Timings {
			cells = append(cells, format.FormatMillis(rec.Millis()))
		}
		rows[i] = cells
	}
	return header, rows
}

// RenderTable renders report as a lipgloss table. Within each row the
// fastest cell is drawn in the success color and the slowest in the warning
// color.
func RenderTable(report orchestration.Report, theme ui.Theme) string {
	header, rows := TableRows(report)
	fastest, slowest := extremes(report)

	base := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.Foreground(theme.Border)).
		Headers(header...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return base.Inherit(theme.Strong(theme.Accent))
			case col == 0:
				return base.Align(lipgloss.Right).Foreground(theme.Text)
			case col-1 == fastest[row] && fastest[row] != slowest[row]:
				return base.Align(lipgloss.Right).Foreground(theme.Success)
			case col-1 == slowest[row] && fastest[row] != slowest[row]:
				return base.Align(lipgloss.Right).Foreground(theme.Warning)
			default:
				return base.Align(lipgloss.Right).Foreground(theme.Text)
			}
		})
	return t.Render()
}

// extremes returns, per row, the index of the fastest and slowest strategy.
func extremes(report orchestration.Report) (fastest, slowest []int) {
	fastest = make([]int, len(report.Rows))
	slowest = make([]int, len(report.Rows))
	for i, row := range report.Rows {
		for j, rec := range row.Timings {
			if rec.Elapsed < row.Timings[fastest[i]].Elapsed {
				fastest[i] = j
			}
			if rec.Elapsed > row.Timings[slowest[i]].Elapsed {
				slowest[i] = j
			}
		}
	}
	return fastest, slowest
}

// FormatEnvironment describes the machine a report was produced on.
func FormatEnvironment(env sysmon.Environment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s/%s, %d CPUs, GOMAXPROCS=%d", env.GoVersion, env.OS, env.Arch, env.NumCPU, env.GOMAXPROCS)
	if env.CPUModel != "" {
		fmt.Fprintf(&b, "\n%s", env.CPUModel)
	}
	if env.Platform != "" {
		fmt.Fprintf(&b, "\n%s", env.Platform)
	}
	if env.TotalMemory > 0 {
		fmt.Fprintf(&b, "\nmemory %d MiB, %.0f%% used, cpu %.0f%% busy at start",
			env.TotalMemory>>20, env.Load.MemPercent, env.Load.CPUPercent)
	}
	return b.String()
}

// JSONReportPresenter renders a Report as indented JSON.
type JSONReportPresenter struct{}

var _ orchestration.ResultPresenter = JSONReportPresenter{}

type jsonTiming struct {
	Strategy  string `json:"strategy"`
	ElapsedMs int64  `json:"elapsed_ms"`
	ElapsedNs int64  `json:"elapsed_ns"`
}

type jsonRow struct {
	Size    int          `json:"size"`
	Timings []jsonTiming `json:"timings"`
}

type jsonReport struct {
	Strategies  []string           `json:"strategies"`
	Rows        []jsonRow          `json:"rows"`
	Environment sysmon.Environment `json:"environment"`
}

// PresentReport writes the report as a single JSON document.
func (JSONReportPresenter) PresentReport(report orchestration.Report, out io.Writer) error {
	doc := jsonReport{
		Strategies:  report.Strategies,
		Rows:        make([]jsonRow, len(report.Rows)),
		Environment: report.Environment,
	}
	for i, row := range report.Rows {
		timings := make([]jsonTiming, len(row.Timings))
		for j, rec := range row.Timings {
			timings[j] = jsonTiming{Strategy: rec.Strategy, ElapsedMs: rec.Millis(), ElapsedNs: rec.Elapsed.Nanoseconds()}
		}
		doc.Rows[i] = jsonRow{Size: row.Size, Timings: timings}
	}

	data, err := sonic.ConfigStd.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}

// DisplayError writes a diagnostic for err. A data-integrity fault lists
// every strategy's sum so the disagreeing one is visible.
func DisplayError(err error, out io.Writer) {
	theme := ui.GetCurrentTheme()
	errStyle := theme.Strong(theme.Error)

	var mismatch apperrors.MismatchError
	if errors.As(err, &mismatch) {
		fmt.Fprintln(out, errStyle.Render(fmt.Sprintf("FATAL: data integrity fault on %s elements: strategies disagree", format.FormatSize(mismatch.Size))))
		for _, s := range mismatch.Sums {
			fmt.Fprintf(out, "  %-18s %d\n", s.Strategy, s.Sum)
		}
		return
	}
	fmt.Fprintln(out, errStyle.Render("Error: "+err.Error()))
}
