package summation_test

import (
	"fmt"

	"github.com/agbru/sumbench/internal/summation"
)

func ExampleChunkedThreads() {
	values := []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}
	s := summation.NewChunkedThreads()
	fmt.Println(s.Name(), s.Sum(values))
	// Output: Chunked Threads 91
}

func ExampleRegistry_Select() {
	r := summation.NewDefaultRegistry()
	strategies, err := r.Select([]string{"for", "simple"})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range strategies {
		fmt.Println(s.Name())
	}
	// Output:
	// Simple
	// Fork-Join-For
}
