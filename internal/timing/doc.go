// Package timing runs a single computation once and reports how long it took.
//
// It is the only place the benchmark reads the clock, so every strategy is
// measured the same way: one invocation, wall-clock elapsed time, no warm-up
// and no repetition.
package timing
