package summation

import (
	"math"
	"sync"
	"testing"
	"time"
)

// allStrategies returns one instance of every built-in strategy.
func allStrategies() []Strategy {
	return NewDefaultRegistry().Lineup()
}

// rangeInput returns the sequence 1..n.
func rangeInput(n int) []int32 {
	values := make([]int32, n)
	for i := range values {
		values[i] = int32(i + 1)
	}
	return values
}

// sumWithin runs s.Sum and fails the test if it does not return in time.
func sumWithin(t *testing.T, s Strategy, values []int32, limit time.Duration) int64 {
	t.Helper()
	result := make(chan int64, 1)
	go func() { result <- s.Sum(values) }()
	select {
	case got := <-result:
		return got
	case <-time.After(limit):
		t.Fatalf("%s: Sum(%d elements) did not return within %s", s.Name(), len(values), limit)
		return 0
	}
}

// TestStrategies_Equivalence checks every strategy against the closed form or
// a known value for a spread of sizes and value patterns.
func TestStrategies_Equivalence(t *testing.T) {
	t.Parallel()
	maxes := make([]int32, 1000)
	mins := make([]int32, 1000)
	for i := range maxes {
		maxes[i] = math.MaxInt32
		mins[i] = math.MinInt32
	}

	tests := []struct {
		name   string
		values []int32
		want   int64
	}{
		{"nil", nil, 0},
		{"empty", []int32{}, 0},
		{"single", []int32{7}, 7},
		{"fewer than chunk count", []int32{1, 2, 3}, 6},
		{"length 13", rangeInput(13), 91},
		{"length 10", rangeInput(10), 55},
		{"mixed signs", []int32{-4, 9, -2, 0, 11, -20}, -6},
		{"max int32 overflow int32", maxes, 1000 * int64(math.MaxInt32)},
		{"min int32", mins, 1000 * int64(math.MinInt32)},
		{"range 100_003", rangeInput(100_003), 100_003 * 100_004 / 2},
		{"range 1_000_000", rangeInput(1_000_000), 1_000_000 * 1_000_001 / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, s := range allStrategies() {
				if got := sumWithin(t, s, tt.values, 10*time.Second); got != tt.want {
					t.Errorf("%s: Sum() = %d, want %d", s.Name(), got, tt.want)
				}
			}
		})
	}
}

// TestStrategies_EmptyInputDoesNotBlock covers the zero-length edge case for
// the chunk-size computation and the completion signal.
func TestStrategies_EmptyInputDoesNotBlock(t *testing.T) {
	t.Parallel()
	for _, s := range allStrategies() {
		if got := sumWithin(t, s, []int32{}, time.Second); got != 0 {
			t.Errorf("%s: Sum(empty) = %d, want 0", s.Name(), got)
		}
	}
}

// TestStrategies_Idempotent runs each strategy repeatedly on the same input;
// scheduling order must not change the result.
func TestStrategies_Idempotent(t *testing.T) {
	t.Parallel()
	values := rangeInput(250_001)
	for _, s := range allStrategies() {
		first := s.Sum(values)
		for run := 0; run < 20; run++ {
			if got := s.Sum(values); got != first {
				t.Fatalf("%s: run %d returned %d, first run returned %d", s.Name(), run, got, first)
			}
		}
	}
}

// TestStrategies_DoNotMutateInput verifies the input is treated as read-only.
func TestStrategies_DoNotMutateInput(t *testing.T) {
	t.Parallel()
	values := rangeInput(10_000)
	snapshot := append([]int32(nil), values...)
	for _, s := range allStrategies() {
		s.Sum(values)
	}
	for i := range values {
		if values[i] != snapshot[i] {
			t.Fatalf("input modified at index %d: %d != %d", i, values[i], snapshot[i])
		}
	}
}

// TestStrategies_ConcurrentUse runs all strategies at the same time on a
// shared input. Under -race this exercises the atomic total, the completion
// counter and the completion channels.
func TestStrategies_ConcurrentUse(t *testing.T) {
	t.Parallel()
	values := rangeInput(200_000)
	want := Sequential{}.Sum(values)

	barrier := make(chan struct{})
	var wg sync.WaitGroup
	strategies := allStrategies()
	errs := make(chan string, len(strategies)*4)
	for round := 0; round < 4; round++ {
		for _, s := range strategies {
			wg.Add(1)
			go func(s Strategy) {
				defer wg.Done()
				<-barrier
				if got := s.Sum(values); got != want {
					errs <- s.Name()
				}
			}(s)
		}
	}
	close(barrier)
	wg.Wait()
	close(errs)

	for name := range errs {
		t.Errorf("%s returned a wrong sum under concurrent use", name)
	}
}

// TestChunkedThreads_ChunkCounts sums with chunk counts around the input
// length, including counts that leave a remainder.
func TestChunkedThreads_ChunkCounts(t *testing.T) {
	t.Parallel()
	values := rangeInput(13)
	for _, chunks := range []int{0, 1, 2, 3, 5, 8, 12, 13, 14, 64} {
		s := ChunkedThreads{chunks: chunks}
		if got := s.Sum(values); got != 91 {
			t.Errorf("chunks=%d: Sum() = %d, want 91", chunks, got)
		}
	}
}

func TestChunkedThreads_DefaultChunkCount(t *testing.T) {
	t.Parallel()
	if got := NewChunkedThreads().chunkCount(); got != DefaultChunkCount {
		t.Errorf("chunkCount() = %d, want %d", got, DefaultChunkCount)
	}
	if got := (ChunkedThreads{}).chunkCount(); got != DefaultChunkCount {
		t.Errorf("zero value chunkCount() = %d, want %d", got, DefaultChunkCount)
	}
}

func TestStrategyNames(t *testing.T) {
	t.Parallel()
	want := []string{"Simple", "Separated Thread", "Data-Parallel", "Fork-Join-For", "Chunked Threads"}
	lineup := allStrategies()
	if len(lineup) != len(want) {
		t.Fatalf("lineup has %d strategies, want %d", len(lineup), len(want))
	}
	for i, s := range lineup {
		if s.Name() != want[i] {
			t.Errorf("lineup[%d] = %q, want %q", i, s.Name(), want[i])
		}
	}
}

func TestNewFunc(t *testing.T) {
	t.Parallel()
	s := NewFunc("Constant", func([]int32) int64 { return 42 })
	if s.Name() != "Constant" {
		t.Errorf("Name() = %q, want %q", s.Name(), "Constant")
	}
	if got := s.Sum(rangeInput(3)); got != 42 {
		t.Errorf("Sum() = %d, want 42", got)
	}
}
