package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/sumbench/internal/metrics"
)

// ProgressUpdate is sent once for every finished (size, strategy) run.
type ProgressUpdate struct {
	// SizeIndex is the position of the input size in the run.
	SizeIndex int
	// Size is the length of the input sequence.
	Size int
	// StrategyIndex is the position of the strategy in the lineup.
	StrategyIndex int
	// Strategy is the display name of the strategy that finished.
	Strategy string
	// Elapsed is the measured wall-clock time of the run.
	Elapsed time.Duration
}

// ProgressReporter defines the interface for displaying benchmark progress.
// This interface decouples the orchestration layer from the presentation
// layer: implementations handle the visual representation (spinners, TUI)
// while the runner focuses on measuring.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed and then
	// calls wg.Done.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving one update per finished run.
	//   - totalRuns: The number of (size, strategy) runs that will be reported.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, totalRuns int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, totalRuns int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, totalRuns int, out io.Writer) {
	f(wg, progressChan, totalRuns, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders a completed Report. Implementations exist for the
// text table and for JSON.
type ResultPresenter interface {
	PresentReport(report Report, out io.Writer) error
}

// MetricsRecorder receives observations while the benchmark runs.
// metrics.Recorder is the Prometheus-backed implementation.
type MetricsRecorder interface {
	ObserveTiming(strategy string, size int, elapsed time.Duration)
	ObserveMismatch(size int)
	ObserveGC(size int, stats metrics.GCStats)
}

// NullRecorder discards every observation.
type NullRecorder struct{}

func (NullRecorder) ObserveTiming(string, int, time.Duration) {}
func (NullRecorder) ObserveMismatch(int)                     {}
func (NullRecorder) ObserveGC(int, metrics.GCStats)          {}
