package summation

import (
	"sync/atomic"

	"github.com/agbru/sumbench/internal/parallel"
)

// DefaultChunkCount is the fixed number of chunks ChunkedThreads splits its
// input into.
const DefaultChunkCount = 8

// ChunkedThreads partitions the input into DefaultChunkCount contiguous chunks
// and sums each on its own goroutine.
//
// Each worker receives its chunk by value, sums it locally, adds the local sum
// to a shared atomic total and then increments a shared atomic completion
// counter. The worker whose increment reaches the chunk count closes the
// completion channel; the caller waits on that channel before reading the
// total. The total and the counter are the only shared mutable state.
type ChunkedThreads struct {
	chunks int
}

// NewChunkedThreads returns the strategy with DefaultChunkCount chunks.
func NewChunkedThreads() ChunkedThreads {
	return ChunkedThreads{chunks: DefaultChunkCount}
}

func (ChunkedThreads) Name() string { return "Chunked Threads" }

func (c ChunkedThreads) Sum(values []int32) int64 {
	chunks := parallel.Partition(len(values), c.chunkCount())
	if len(chunks) == 0 {
		return 0
	}

	var total, completed atomic.Int64
	done := make(chan struct{})
	want := int64(len(chunks))

	for _, chunk := range chunks {
		go func(r parallel.Range) {
			local := sumSlice(values[r.Start:r.End])
			total.Add(local)
			if completed.Add(1) == want {
				close(done)
			}
		}(chunk)
	}

	<-done
	return total.Load()
}

func (c ChunkedThreads) chunkCount() int {
	if c.chunks <= 0 {
		return DefaultChunkCount
	}
	return c.chunks
}
