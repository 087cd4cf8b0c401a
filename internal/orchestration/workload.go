package orchestration

import (
	"fmt"
	"math"

	apperrors "github.com/agbru/sumbench/internal/errors"
)

// DefaultSizes are the input lengths benchmarked when none are configured.
var DefaultSizes = []int{100_000, 1_000_000, 10_000_000}

// MaxSize is the largest input length whose 1..N sequence fits in int32.
const MaxSize = math.MaxInt32

// Sequence returns the input 1, 2, ..., n. A non-positive n yields an empty,
// non-nil slice.
func Sequence(n int) []int32 {
	if n <= 0 {
		return []int32{}
	}
	values := make([]int32, n)
	for i := range values {
		values[i] = int32(i + 1)
	}
	return values
}

// ValidateSizes checks that every size can be generated by Sequence.
func ValidateSizes(sizes []int) error {
	if len(sizes) == 0 {
		return apperrors.ValidationError{Field: "sizes", Message: "at least one input size is required"}
	}
	for i, n := range sizes {
		if n < 0 || n > MaxSize {
			return apperrors.ValidationError{
				Field:   fmt.Sprintf("sizes[%d]", i),
				Message: fmt.Sprintf("%d is outside [0, %d]", n, MaxSize),
			}
		}
	}
	return nil
}
