package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

// TestFor_VisitsEveryIndexOnce records every visited index and checks none is
// skipped or repeated.
func TestFor_VisitsEveryIndexOnce(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, 1, 7, 13, 1000, 100_003} {
		visits := make([]atomic.Int32, n)
		For(n,
			func() struct{} { return struct{}{} },
			func(i int, local struct{}) struct{} {
				visits[i].Add(1)
				return local
			},
			func(struct{}) {},
		)
		for i := range visits {
			if got := visits[i].Load(); got != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, got)
			}
		}
	}
}

// TestFor_MergeOncePerPartition verifies the local-fold-then-merge discipline:
// merge runs once per partition, never per element, and the merged locals add
// up to the sequential sum.
func TestFor_MergeOncePerPartition(t *testing.T) {
	t.Parallel()
	const n = 50_000
	wantPartitions := len(Partition(n, Workers()*PartitionsPerWorker))

	var merges atomic.Int64
	var total atomic.Int64
	For(n,
		func() int64 { return 0 },
		func(i int, local int64) int64 { return local + int64(i) },
		func(local int64) {
			merges.Add(1)
			total.Add(local)
		},
	)

	if got := merges.Load(); got != int64(wantPartitions) {
		t.Errorf("merge called %d times, want %d", got, wantPartitions)
	}
	if want := int64(n) * (n - 1) / 2; total.Load() != want {
		t.Errorf("total = %d, want %d", total.Load(), want)
	}
}

// TestFor_LocalsSeededPerPartition ensures init is called for each partition
// so one partition's local never leaks into another.
func TestFor_LocalsSeededPerPartition(t *testing.T) {
	t.Parallel()
	const n = 10_000
	var inits atomic.Int64
	var mu sync.Mutex
	var counts []int

	For(n,
		func() int { inits.Add(1); return 0 },
		func(_ int, local int) int { return local + 1 },
		func(local int) {
			mu.Lock()
			counts = append(counts, local)
			mu.Unlock()
		},
	)

	if int(inits.Load()) != len(counts) {
		t.Errorf("init called %d times for %d merges", inits.Load(), len(counts))
	}
	sum := 0
	for _, c := range counts {
		sum += c
	}
	if sum != n {
		t.Errorf("partition sizes add up to %d, want %d", sum, n)
	}
}

// TestFor_ConcurrentCallers runs many For calls at once; under -race this
// checks the work channel and errgroup join are the only shared state.
func TestFor_ConcurrentCallers(t *testing.T) {
	t.Parallel()
	const callers = 16
	const n = 20_000
	want := int64(n) * (n - 1) / 2

	barrier := make(chan struct{})
	var wg sync.WaitGroup
	results := make([]int64, callers)
	wg.Add(callers)
	for c := 0; c < callers; c++ {
		go func(c int) {
			defer wg.Done()
			<-barrier
			var total atomic.Int64
			For(n,
				func() int64 { return 0 },
				func(i int, local int64) int64 { return local + int64(i) },
				func(local int64) { total.Add(local) },
			)
			results[c] = total.Load()
		}(c)
	}
	close(barrier)
	wg.Wait()

	for c, got := range results {
		if got != want {
			t.Errorf("caller %d: total = %d, want %d", c, got, want)
		}
	}
}
