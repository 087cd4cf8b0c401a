package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// PartitionsPerWorker is how many partitions For creates per worker. More
// partitions than workers lets a worker that finishes early pick up work left
// by a slower one.
const PartitionsPerWorker = 4

// Workers returns the worker count used by For and MapReduce.
func Workers() int {
	return runtime.GOMAXPROCS(0)
}

// For runs body over every index of [0, n) on a fixed set of Workers()
// goroutines.
//
// The range is split into Workers()*PartitionsPerWorker partitions fed through
// a channel. For each partition a worker obtains a fresh local accumulator
// from init, folds every index of the partition into it in order with body,
// and then calls merge exactly once with the result. merge is called
// concurrently from different workers and must synchronise its own writes.
//
// For returns after every partition has been merged.
func For[L any](n int, init func() L, body func(i int, local L) L, merge func(local L)) {
	ranges := Partition(n, Workers()*PartitionsPerWorker)
	if len(ranges) == 0 {
		return
	}
	workers := min(Workers(), len(ranges))

	work := make(chan Range, len(ranges))
	for _, r := range ranges {
		work <- r
	}
	close(work)

	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			for r := range work {
				local := init()
				for i := r.Start; i < r.End; i++ {
					local = body(i, local)
				}
				merge(local)
			}
			return nil
		})
	}
	_ = g.Wait()
}
