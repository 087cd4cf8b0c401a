// Package metrics collects runtime memory readings, controls the garbage
// collector around a benchmark size and exports per-strategy timings as
// Prometheus metrics.
package metrics
