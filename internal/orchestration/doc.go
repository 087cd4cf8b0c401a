// Package orchestration times every summation strategy on the same input,
// cross-checks their sums and drives the comparison across input sizes. It
// decouples the benchmark from presentation via the ProgressReporter and
// ResultPresenter interfaces.
package orchestration
