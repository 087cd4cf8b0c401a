package timing

import (
	"time"

	apperrors "github.com/agbru/sumbench/internal/errors"
)

// Execute runs computation(input) once and returns its result together with
// the wall-clock time the call took. A nil computation is rejected with a
// ValidationError before anything runs.
func Execute[In, Out any](input In, computation func(In) Out) (Out, time.Duration, error) {
	var zero Out
	if computation == nil {
		return zero, 0, apperrors.ValidationError{Field: "computation", Message: "is required"}
	}

	start := time.Now()
	result := computation(input)
	return result, time.Since(start), nil
}

// Millis truncates d to whole milliseconds, the unit of a report cell.
func Millis(d time.Duration) int64 {
	return d.Milliseconds()
}
