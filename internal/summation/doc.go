// Package summation implements the summation strategies compared by the
// benchmark. Every strategy computes the same value, the sum of a []int32
// widened to an int64 accumulator, using a different concurrency model:
//
//   - Sequential: a plain loop on the calling goroutine.
//   - SingleOffload: the same loop on one spawned goroutine, joined through a
//     completion channel.
//   - ChunkedThreads: DefaultChunkCount goroutines over contiguous chunks,
//     merged with atomic adds and released by a completion counter.
//   - ForkJoinFor: parallel.For with one local accumulator per partition and
//     one atomic merge per partition.
//   - DataParallel: parallel.MapReduce over GOMAXPROCS contiguous slices.
//
// A nil slice is the empty sequence and sums to 0 under every strategy.
package summation
