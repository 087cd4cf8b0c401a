// Package parallel provides the range-splitting and fork-join primitives the
// summation strategies are built on.
//
// Partition splits an index range into contiguous, non-overlapping ranges
// whose union is the whole range. For runs a parallel-for with one local
// accumulator per partition and a single merge per partition. MapReduce folds
// a slice in GOMAXPROCS contiguous slices and combines the partial results
// sequentially.
//
// None of the functions here time out or observe a context: a worker that
// never finishes blocks the caller, which is how hangs are surfaced.
package parallel
