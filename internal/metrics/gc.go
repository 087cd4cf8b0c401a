package metrics

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/agbru/sumbench/internal/logging"
)

// GCMode controls the garbage collector while one input size is benchmarked.
type GCMode string

const (
	GCModeAuto       GCMode = "auto"
	GCModeAggressive GCMode = "aggressive"
	GCModeDisabled   GCMode = "disabled"
)

// GCAutoThreshold is the minimum input length for auto GC control to
// activate. Below it a collection during a strategy is unlikely to matter.
const GCAutoThreshold = 1_000_000

// ParseGCMode validates s and returns it as a GCMode.
func ParseGCMode(s string) (GCMode, error) {
	switch m := GCMode(s); m {
	case GCModeAuto, GCModeAggressive, GCModeDisabled:
		return m, nil
	default:
		return "", fmt.Errorf("unknown gc mode %q (want auto, aggressive or disabled)", s)
	}
}

// GCController switches the collector off while a size is being measured so
// that a collection triggered by one strategy's allocations is not charged to
// the next strategy's timing. End restores the previous settings.
type GCController struct {
	mode              GCMode
	originalGCPercent int
	originalMemLimit  int64
	active            bool
	logger            logging.Logger
	collector         *MemoryCollector
	start             MemorySnapshot
	end               MemorySnapshot
}

// GCStats holds GC statistics for one benchmarked size.
type GCStats struct {
	HeapAlloc    uint64
	TotalAlloc   uint64
	NumGC        uint32
	PauseTotalNs uint64
}

// NewGCController creates a GC controller for the given mode and input length.
func NewGCController(mode GCMode, size int) *GCController {
	gc := &GCController{mode: mode, logger: logging.NopLogger{}, collector: NewMemoryCollector()}
	switch gc.mode {
	case GCModeAggressive:
		gc.active = true
	case GCModeAuto:
		gc.active = size >= GCAutoThreshold
	default:
		gc.active = false
	}
	return gc
}

// SetLogger configures the logger for GC control events.
func (gc *GCController) SetLogger(l logging.Logger) {
	if l != nil {
		gc.logger = l
	}
}

// Active reports whether Begin will disable the collector.
func (gc *GCController) Active() bool { return gc.active }

// Begin records a memory snapshot and disables GC if the controller is active.
func (gc *GCController) Begin() {
	gc.start = gc.collector.Snapshot()
	if !gc.active {
		return
	}
	gc.originalGCPercent = debug.SetGCPercent(-1)
	gc.originalMemLimit = debug.SetMemoryLimit(-1)
	// Soft memory limit as OOM safety net while the collector is off.
	if gc.start.Sys > 0 {
		limit := int64(float64(gc.start.Sys) * 3)
		if limit > 0 {
			debug.SetMemoryLimit(limit)
		}
	}
	gc.logger.Debug("gc disabled",
		logging.String("mode", string(gc.mode)),
		logging.Uint64("heap_alloc_bytes", gc.start.HeapAlloc),
	)
}

// End records a second snapshot and, if active, restores the original GC
// settings and triggers a collection.
func (gc *GCController) End() {
	gc.end = gc.collector.Snapshot()
	if !gc.active {
		return
	}
	debug.SetGCPercent(gc.originalGCPercent)
	debug.SetMemoryLimit(gc.originalMemLimit)
	runtime.GC()
	stats := gc.Stats()
	gc.logger.Debug("gc re-enabled",
		logging.String("mode", string(gc.mode)),
		logging.Uint64("heap_alloc_bytes", stats.HeapAlloc),
		logging.Uint64("total_alloc_bytes", stats.TotalAlloc),
		logging.Int("gc_cycles", int(stats.NumGC)),
	)
}

// Stats returns the statistics delta between Begin and End.
func (gc *GCController) Stats() GCStats {
	return gc.end.Since(gc.start)
}
