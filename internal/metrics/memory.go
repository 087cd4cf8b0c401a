package metrics

import "runtime"

// MemorySnapshot is the part of runtime.MemStats the benchmark tracks around
// each input size.
type MemorySnapshot struct {
	HeapAlloc    uint64
	Sys          uint64 // sizes the soft memory limit while the GC is off
	TotalAlloc   uint64
	NumGC        uint32
	PauseTotalNs uint64
}

// Since returns the growth of the cumulative counters between earlier and s.
// HeapAlloc is taken from s as is, since it is a level rather than a counter.
func (s MemorySnapshot) Since(earlier MemorySnapshot) GCStats {
	return GCStats{
		HeapAlloc:    s.HeapAlloc,
		TotalAlloc:   s.TotalAlloc - earlier.TotalAlloc,
		NumGC:        s.NumGC - earlier.NumGC,
		PauseTotalNs: s.PauseTotalNs - earlier.PauseTotalNs,
	}
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot stops the world briefly; call it outside timed regions.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		Sys:          m.Sys,
		TotalAlloc:   m.TotalAlloc,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
	}
}
