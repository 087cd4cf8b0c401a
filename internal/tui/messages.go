package tui

import (
	"time"

	"github.com/agbru/sumbench/internal/orchestration"
)

// ProgressMsg carries one finished strategy run.
type ProgressMsg struct {
	orchestration.AggregatedProgress
	Generation uint64
}

// ProgressDoneMsg signals the progress channel was closed.
type ProgressDoneMsg struct {
	Generation uint64
}

// RunCompleteMsg carries the outcome of a whole benchmark run.
type RunCompleteMsg struct {
	Report     orchestration.Report
	Err        error
	Generation uint64
}

// TickMsg drives periodic sampling.
type TickMsg time.Time

// MemStatsMsg holds a runtime memory sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapSys      uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg holds a system-wide CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// ContextCancelledMsg is sent when the run context is cancelled from outside
// the TUI, for example by SIGINT.
type ContextCancelledMsg struct {
	Generation uint64
}
