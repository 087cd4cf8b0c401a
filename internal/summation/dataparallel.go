package summation

import "github.com/agbru/sumbench/internal/parallel"

// DataParallel expresses the sum as a parallel map (widen to int64) followed
// by a reduce (addition), leaving partitioning and merging to
// parallel.MapReduce.
type DataParallel struct{}

func (DataParallel) Name() string { return "Data-Parallel" }

func (DataParallel) Sum(values []int32) int64 {
	return parallel.MapReduce(values, int64(0), widen, add)
}

func widen(v int32) int64 { return int64(v) }

func add(a, b int64) int64 { return a + b }
