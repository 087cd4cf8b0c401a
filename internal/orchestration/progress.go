package orchestration

import "time"

// ProgressAggregator turns the stream of per-run updates into overall
// progress and a naive ETA. Both the CLI spinner and the TUI use it.
type ProgressAggregator struct {
	total int
	done  int
	start time.Time
	now   func() time.Time
}

// NewProgressAggregator creates an aggregator for totalRuns runs.
// Returns nil if totalRuns <= 0.
func NewProgressAggregator(totalRuns int) *ProgressAggregator {
	if totalRuns <= 0 {
		return nil
	}
	return &ProgressAggregator{total: totalRuns, start: time.Now(), now: time.Now}
}

// AggregatedProgress holds the result of processing a single update.
type AggregatedProgress struct {
	ProgressUpdate
	// Done is the number of runs finished so far.
	Done int
	// Total is the number of runs expected.
	Total int
	// Fraction is Done/Total, between 0 and 1.
	Fraction float64
	// ETA extrapolates the average time per run over the remaining runs.
	ETA time.Duration
}

// Update accounts for one finished run.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	if a.done < a.total {
		a.done++
	}
	return AggregatedProgress{
		ProgressUpdate: update,
		Done:           a.done,
		Total:          a.total,
		Fraction:       a.Fraction(),
		ETA:            a.ETA(),
	}
}

// Fraction returns the share of runs finished.
func (a *ProgressAggregator) Fraction() float64 {
	return float64(a.done) / float64(a.total)
}

// ETA returns the estimated remaining time, or 0 before the first update.
func (a *ProgressAggregator) ETA() time.Duration {
	if a.done == 0 {
		return 0
	}
	perRun := a.now().Sub(a.start) / time.Duration(a.done)
	return perRun * time.Duration(a.total-a.done)
}

// Total returns the number of runs being tracked.
func (a *ProgressAggregator) Total() int { return a.total }

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
