package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder exports benchmark observations as Prometheus metrics. Each
// Recorder owns its registry, so several can coexist in one process (tests,
// repeated runs) without colliding on the default registerer.
type Recorder struct {
	registry   *prometheus.Registry
	durations  *prometheus.GaugeVec
	runs       *prometheus.CounterVec
	mismatches prometheus.Counter
	allocated  *prometheus.GaugeVec
	gcCycles   *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		durations: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sumbench_strategy_duration_seconds",
				Help: "Wall-clock time of one strategy run on one input size",
			},
			[]string{"strategy", "size"},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sumbench_strategy_runs_total",
				Help: "Number of timed strategy runs",
			},
			[]string{"strategy"},
		),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sumbench_mismatches_total",
			Help: "Number of input sizes on which strategies disagreed",
		}),
		allocated: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sumbench_allocated_bytes",
				Help: "Bytes allocated while benchmarking one input size",
			},
			[]string{"size"},
		),
		gcCycles: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sumbench_gc_cycles",
				Help: "Garbage collections completed while benchmarking one input size",
			},
			[]string{"size"},
		),
	}
	r.registry.MustRegister(r.durations, r.runs, r.mismatches, r.allocated, r.gcCycles)
	return r
}

// Registry returns the registry holding the recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveTiming records the elapsed time of one strategy on one size.
func (r *Recorder) ObserveTiming(strategy string, size int, elapsed time.Duration) {
	r.durations.WithLabelValues(strategy, strconv.Itoa(size)).Set(elapsed.Seconds())
	r.runs.WithLabelValues(strategy).Inc()
}

// ObserveMismatch counts a size on which the strategies disagreed.
func (r *Recorder) ObserveMismatch(int) {
	r.mismatches.Inc()
}

// ObserveGC records the memory activity of one benchmarked size.
func (r *Recorder) ObserveGC(size int, stats GCStats) {
	label := strconv.Itoa(size)
	r.allocated.WithLabelValues(label).Set(float64(stats.TotalAlloc))
	r.gcCycles.WithLabelValues(label).Set(float64(stats.NumGC))
}

// WriteTextfile writes the current metric values to path in the Prometheus
// text exposition format, for pickup by a node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
