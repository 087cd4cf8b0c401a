package orchestration

import (
	"context"
	"errors"
	"io"
	"sync"

	apperrors "github.com/agbru/sumbench/internal/errors"
	"github.com/agbru/sumbench/internal/logging"
	"github.com/agbru/sumbench/internal/metrics"
	"github.com/agbru/sumbench/internal/sysmon"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel, relative to the number of strategies. A larger buffer reduces the
// likelihood of blocking the runner between two timed runs when the UI is
// slow to consume updates.
const ProgressBufferMultiplier = 5

// Report is the outcome of a complete run: one Comparison per input size, in
// the order the sizes were given.
type Report struct {
	// Strategies are the column names, in run order.
	Strategies []string
	// Rows holds one validated comparison per input size.
	Rows []Comparison
	// Environment describes the machine the run happened on.
	Environment sysmon.Environment
}

// Runner drives a Comparator over a list of input sizes.
type Runner struct {
	comparator *Comparator
	sizes      []int
	gcMode     metrics.GCMode
	reporter   ProgressReporter
	recorder   MetricsRecorder
	logger     logging.Logger
	describe   func() sysmon.Environment
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithProgressReporter sets the reporter fed with one update per run.
func WithProgressReporter(p ProgressReporter) RunnerOption {
	return func(r *Runner) {
		if p != nil {
			r.reporter = p
		}
	}
}

// WithMetricsRecorder sets the recorder receiving timings and GC activity.
func WithMetricsRecorder(m MetricsRecorder) RunnerOption {
	return func(r *Runner) {
		if m != nil {
			r.recorder = m
		}
	}
}

// WithRunnerLogger sets the logger for per-size events.
func WithRunnerLogger(l logging.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithGCMode sets how the garbage collector is handled around each size.
func WithGCMode(mode metrics.GCMode) RunnerOption {
	return func(r *Runner) { r.gcMode = mode }
}

// WithEnvironment replaces the function that describes the host.
func WithEnvironment(describe func() sysmon.Environment) RunnerOption {
	return func(r *Runner) {
		if describe != nil {
			r.describe = describe
		}
	}
}

// NewRunner returns a Runner that benchmarks comparator on every size.
func NewRunner(comparator *Comparator, sizes []int, opts ...RunnerOption) (*Runner, error) {
	if comparator == nil {
		return nil, apperrors.ValidationError{Field: "comparator", Message: "is required"}
	}
	if err := ValidateSizes(sizes); err != nil {
		return nil, err
	}
	r := &Runner{
		comparator: comparator,
		sizes:      append([]int(nil), sizes...),
		gcMode:     metrics.GCModeAuto,
		reporter:   NullProgressReporter{},
		recorder:   NullRecorder{},
		logger:     logging.NopLogger{},
		describe:   sysmon.Describe,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Sizes returns the input sizes in run order.
func (r *Runner) Sizes() []int {
	return append([]int(nil), r.sizes...)
}

// Strategies returns the strategy names in run order.
func (r *Runner) Strategies() []string {
	return r.comparator.Strategies()
}

// WithReporter returns a copy of r that sends its progress to p.
func (r *Runner) WithReporter(p ProgressReporter) *Runner {
	clone := *r
	WithProgressReporter(p)(&clone)
	return &clone
}

// Run benchmarks every size in order and returns the complete Report.
//
// Sizes run one after another and strategies within a size run one after
// another, so that no two timed runs compete for CPUs. The first error stops
// the run and no Report is returned: a mismatch on any size invalidates the
// whole table. ctx is checked between sizes only; a strategy in flight is
// never interrupted.
//
// Parameters:
//   - ctx: The context for aborting between sizes.
//   - out: The io.Writer handed to the progress reporter.
//
// Returns:
//   - Report: The complete report, zero on error.
//   - error: The first error encountered.
func (r *Runner) Run(ctx context.Context, out io.Writer) (Report, error) {
	strategies := r.comparator.Strategies()
	progressChan := make(chan ProgressUpdate, len(strategies)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go r.reporter.DisplayProgress(&displayWg, progressChan, len(r.sizes)*len(strategies), out)

	rows, err := r.runSizes(ctx, progressChan)
	close(progressChan)
	displayWg.Wait()
	if err != nil {
		return Report{}, err
	}

	return Report{
		Strategies:  strategies,
		Rows:        rows,
		Environment: r.describe(),
	}, nil
}

func (r *Runner) runSizes(ctx context.Context, progressChan chan<- ProgressUpdate) ([]Comparison, error) {
	rows := make([]Comparison, 0, len(r.sizes))
	for sizeIdx, size := range r.sizes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		values := Sequence(size)

		gc := metrics.NewGCController(r.gcMode, size)
		gc.SetLogger(r.logger)
		gc.Begin()
		cmp, err := r.comparator.Compare(ctx, values, func(strategyIdx int, rec TimingRecord) {
			r.recorder.ObserveTiming(rec.Strategy, rec.Size, rec.Elapsed)
			progressChan <- ProgressUpdate{
				SizeIndex:     sizeIdx,
				Size:          size,
				StrategyIndex: strategyIdx,
				Strategy:      rec.Strategy,
				Elapsed:       rec.Elapsed,
			}
		})
		gc.End()
		r.recorder.ObserveGC(size, gc.Stats())

		if err != nil {
			if errors.Is(err, apperrors.ErrDataIntegrity) {
				r.recorder.ObserveMismatch(size)
			}
			return nil, err
		}
		r.logger.Info("size benchmarked",
			logging.Int("size", size),
			logging.Int("strategies", len(cmp.Timings)),
		)
		rows = append(rows, cmp)
	}
	return rows, nil
}
