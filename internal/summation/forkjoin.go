package summation

import (
	"sync/atomic"

	"github.com/agbru/sumbench/internal/parallel"
)

// ForkJoinFor delegates partitioning and scheduling to parallel.For. Every
// partition folds its indices into a local accumulator seeded at zero, and the
// local is merged into the shared total with one atomic add per partition.
type ForkJoinFor struct{}

func (ForkJoinFor) Name() string { return "Fork-Join-For" }

func (ForkJoinFor) Sum(values []int32) int64 {
	var total atomic.Int64
	parallel.For(len(values),
		func() int64 { return 0 },
		func(i int, local int64) int64 { return local + int64(values[i]) },
		func(local int64) { total.Add(local) },
	)
	return total.Load()
}
