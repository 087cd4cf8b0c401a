package timing

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/agbru/sumbench/internal/errors"
)

func TestExecute(t *testing.T) {
	t.Parallel()
	calls := 0
	got, elapsed, err := Execute([]int32{1, 2, 3}, func(values []int32) int64 {
		calls++
		var s int64
		for _, v := range values {
			s += int64(v)
		}
		return s
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got != 6 {
		t.Errorf("Execute() result = %d, want 6", got)
	}
	if elapsed < 0 {
		t.Errorf("Execute() elapsed = %v, want >= 0", elapsed)
	}
	if calls != 1 {
		t.Errorf("computation called %d times, want 1", calls)
	}
}

func TestExecute_MeasuresElapsed(t *testing.T) {
	t.Parallel()
	const pause = 20 * time.Millisecond
	_, elapsed, err := Execute(pause, func(d time.Duration) struct{} {
		time.Sleep(d)
		return struct{}{}
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if elapsed < pause {
		t.Errorf("elapsed = %v, want at least %v", elapsed, pause)
	}
}

func TestExecute_NilComputation(t *testing.T) {
	t.Parallel()
	got, elapsed, err := Execute[[]int32, int64]([]int32{1}, nil)
	if err == nil {
		t.Fatal("Execute() with nil computation should fail")
	}
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("error %v should match ErrInvalidArgument", err)
	}
	var ve apperrors.ValidationError
	if !errors.As(err, &ve) || ve.Field != "computation" {
		t.Errorf("error %v should be a ValidationError on field computation", err)
	}
	if got != 0 || elapsed != 0 {
		t.Errorf("Execute() = (%d, %v), want zero values", got, elapsed)
	}
}

func TestMillis(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   time.Duration
		want int64
	}{
		{0, 0},
		{999 * time.Microsecond, 0},
		{time.Millisecond, 1},
		{1500 * time.Microsecond, 1},
		{2 * time.Second, 2000},
	}
	for _, tt := range tests {
		if got := Millis(tt.in); got != tt.want {
			t.Errorf("Millis(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
